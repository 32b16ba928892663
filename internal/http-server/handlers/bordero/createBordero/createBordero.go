package createBordero

import (
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/logger/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type BorderoResponse struct {
	response.Response
	ID string `json:"id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BorderoCreator
type BorderoCreator interface {
	CreateSession() (string, error)
}

func New(log *slog.Logger, creator BorderoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.createBordero.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := creator.CreateSession()
		if err != nil {
			log.Error("failed to create bordero", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create bordero"))

			return
		}

		log.Info("bordero created", slog.String("id", id))

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id string) {
	render.JSON(w, r, BorderoResponse{
		Response: response.OK(),
		ID:       id,
	})
}
