package addSong

import (
	"bordero/internal/lib/api/request"
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/models"
	"bordero/internal/storage"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type SongRequest struct {
	Title     string `json:"title" validate:"required"`
	Artist    string `json:"artist"`
	Composer  string `json:"composer"`
	Execution bool   `json:"execution"`
}

type SongResponse struct {
	response.Response
	Song models.Song `json:"song"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SongAdder
type SongAdder interface {
	AddSong(id string, song models.Song) (models.Song, error)
}

// New appends a song to the ledger. The song ID is assigned by storage.
func New(log *slog.Logger, songs SongAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.addSong.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := request.BorderoID(r)
		if err != nil {
			log.Error("invalid bordero id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		var req SongRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		song, err := songs.AddSong(id, models.Song{
			Title:     req.Title,
			Artist:    req.Artist,
			Composer:  req.Composer,
			Execution: req.Execution,
		})
		if err != nil {
			log.Error("failed to add song", sl.Err(err))

			if errors.Is(err, storage.ErrSessionNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add song"))
			return
		}

		log.Info("song added", slog.String("bordero_id", id), slog.String("song_id", song.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SongResponse{
			Response: response.OK(),
			Song:     song,
		})
	}
}
