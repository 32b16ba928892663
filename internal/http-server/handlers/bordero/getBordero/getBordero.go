package getBordero

import (
	"bordero/internal/lib/api/request"
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/lib/validation"
	"bordero/internal/models"
	"bordero/internal/storage"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type BorderoResponse struct {
	response.Response
	Bordero   models.Record `json:"bordero"`
	SongCount int           `json:"song_count"`
	Complete  bool          `json:"complete"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BorderoGetter
type BorderoGetter interface {
	GetBordero(id string) (models.Record, error)
}

func New(log *slog.Logger, bordero BorderoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.getBordero.New"

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

		log = log.With(slog.String("bordero_id", id))

		rec, err := bordero.GetBordero(id)
		if err != nil {
			log.Error("failed to get bordero", sl.Err(err))

			if errors.Is(err, storage.ErrSessionNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bordero"))
			return
		}

		log.Info("bordero retrieved", slog.Int("songs", len(rec.Songs)))

		responseOK(w, r, rec)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, rec models.Record) {
	render.JSON(w, r, BorderoResponse{
		Response:  response.OK(),
		Bordero:   rec,
		SongCount: len(rec.Songs),
		Complete:  validation.IsComplete(rec),
	})
}
