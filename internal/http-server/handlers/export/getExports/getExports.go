package getExports

import (
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type ExportsResponse struct {
	response.Response
	Exports []models.ExportEntry `json:"exports"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ExportsGetter
type ExportsGetter interface {
	GetExports() ([]models.ExportEntry, error)
}

func New(log *slog.Logger, exportsGetter ExportsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.getExports.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		exports, err := exportsGetter.GetExports()
		if err != nil {
			log.Error("failed to get exports", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get exports"))
			return
		}

		log.Info("exports retrieved successfully", slog.Int("count", len(exports)))

		responseOK(w, r, exports)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, exports []models.ExportEntry) {
	if exports == nil {
		exports = []models.ExportEntry{}
	}

	render.JSON(w, r, ExportsResponse{
		Response: response.OK(),
		Exports:  exports,
	})
}
