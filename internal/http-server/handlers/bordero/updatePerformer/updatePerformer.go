package updatePerformer

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

type PerformerResponse struct {
	response.Response
	Performer models.PerformerInfo `json:"performer"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PerformerUpdater
type PerformerUpdater interface {
	UpdatePerformer(id string, patch models.PerformerPatch) (models.PerformerInfo, error)
}

// New merges a partial performer section. Switching mode keeps both the tax
// code and the VAT number; only the one matching the mode is checked for export.
func New(log *slog.Logger, performer PerformerUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.updatePerformer.New"

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

		var patch models.PerformerPatch

		if err = render.DecodeJSON(r.Body, &patch); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", patch))

		if err = validator.New().Struct(patch); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		info, err := performer.UpdatePerformer(id, patch)
		if err != nil {
			log.Error("failed to update performer", sl.Err(err))

			if errors.Is(err, storage.ErrSessionNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update performer"))
			return
		}

		log.Info("performer updated",
			slog.String("bordero_id", id),
			slog.String("mode", string(info.Mode)),
		)

		render.JSON(w, r, PerformerResponse{
			Response:  response.OK(),
			Performer: info,
		})
	}
}
