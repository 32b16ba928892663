package deleteBordero

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BorderoDeleter
type BorderoDeleter interface {
	DeleteSession(id string) error
}

// New discards an editing session together with its borderò.
func New(log *slog.Logger, deleter BorderoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.deleteBordero.New"

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

		if err = deleter.DeleteSession(id); err != nil {
			log.Error("failed to delete bordero", sl.Err(err))

			if errors.Is(err, storage.ErrSessionNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete bordero"))
			return
		}

		log.Info("bordero deleted", slog.String("bordero_id", id))

		render.JSON(w, r, response.OK())
	}
}
