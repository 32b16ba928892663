package removeSong

import (
	"bordero/internal/lib/api/request"
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/storage"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SongRemover
type SongRemover interface {
	RemoveSong(id, songID string) error
}

func New(log *slog.Logger, songs SongRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.removeSong.New"

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

		if err = songs.RemoveSong(id, songID); err != nil {
			log.Error("failed to remove song", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSessionNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
			case errors.Is(err, storage.ErrSongNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("song not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to remove song"))
			}

			return
		}

		log.Info("song removed", slog.String("bordero_id", id), slog.String("song_id", songID))

		render.JSON(w, r, response.OK())
	}
}
