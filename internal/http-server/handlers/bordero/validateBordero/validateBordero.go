package validateBordero

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

type ValidationResponse struct {
	response.Response
	Complete bool                    `json:"complete"`
	Missing  []validation.FieldError `json:"missing"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BorderoGetter
type BorderoGetter interface {
	GetBordero(id string) (models.Record, error)
}

// New reports whether the borderò can be exported and, if not, which fields
// are still missing.
func New(log *slog.Logger, bordero BorderoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.validateBordero.New"

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

		missing := validation.Check(rec)
		if missing == nil {
			missing = []validation.FieldError{}
		}

		log.Info("bordero validated",
			slog.String("bordero_id", id),
			slog.Int("missing", len(missing)),
		)

		render.JSON(w, r, ValidationResponse{
			Response: response.OK(),
			Complete: len(missing) == 0,
			Missing:  missing,
		})
	}
}
