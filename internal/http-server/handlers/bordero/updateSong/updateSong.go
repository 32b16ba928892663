package updateSong

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SongUpdater
type SongUpdater interface {
	UpdateSong(id string, song models.Song) error
}

// New replaces a song in place, keeping its position in the ledger.
func New(log *slog.Logger, songs SongUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.updateSong.New"

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

		songID, err := request.SongID(r)
		if err != nil {
			log.Error("invalid song id", sl.Err(err))
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

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		song := models.Song{
			ID:        songID,
			Title:     req.Title,
			Artist:    req.Artist,
			Composer:  req.Composer,
			Execution: req.Execution,
		}

		if err = songs.UpdateSong(id, song); err != nil {
			log.Error("failed to update song", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSessionNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
			case errors.Is(err, storage.ErrSongNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("song not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update song"))
			}

			return
		}

		log.Info("song updated", slog.String("bordero_id", id), slog.String("song_id", songID))

		render.JSON(w, r, SongResponse{
			Response: response.OK(),
			Song:     song,
		})
	}
}
