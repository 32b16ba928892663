package exportBordero

import (
	"bordero/internal/lib/api/request"
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/document"
	"bordero/internal/lib/layout"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/lib/validation"
	"bordero/internal/models"
	"bordero/internal/storage"
	"bytes"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type IncompleteResponse struct {
	response.Response
	Missing []validation.FieldError `json:"missing"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BorderoGetter
type BorderoGetter interface {
	GetBordero(id string) (models.Record, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ExportSaver
type ExportSaver interface {
	SaveExport(entry models.ExportEntry) (int, error)
}

// New renders a snapshot of the borderò and sends it as an attachment. An
// incomplete borderò is refused with the list of missing fields.
func New(log *slog.Logger, bordero BorderoGetter, journal ExportSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.exportBordero.New"

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

		format := strings.ToLower(r.URL.Query().Get("format"))

		writer := document.ForFormat(format)
		if writer == nil {
			log.Error("unsupported export format", slog.String("format", format))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported export format"))
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

		if missing := validation.Check(rec); len(missing) > 0 {
			log.Warn("bordero is incomplete", slog.Int("missing", len(missing)))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, IncompleteResponse{
				Response: response.Error("bordero is incomplete"),
				Missing:  missing,
			})
			return
		}

		doc := layout.Render(rec)
		filename := strings.TrimSuffix(doc.Filename, ".pdf") + writer.Extension()

		var buf bytes.Buffer
		if err = writer.Write(&buf, doc); err != nil {
			log.Error("failed to write document", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export bordero"))
			return
		}

		if format == "" {
			format = document.FormatPDF
		}

		entryID, err := journal.SaveExport(models.ExportEntry{
			SessionID:  id,
			EventType:  rec.Event.EventType,
			Organizer:  rec.Event.Organizer,
			Performer:  rec.Performer.Performer,
			Mode:       rec.Performer.Mode,
			SongCount:  len(rec.Songs),
			Format:     format,
			Filename:   filename,
			ExportedAt: time.Now().UTC(),
		})
		if err != nil {
			log.Error("failed to record export", sl.Err(err))
		} else {
			log.Info("export recorded", slog.Int("entry_id", entryID))
		}

		log.Info("bordero exported",
			slog.String("bordero_id", id),
			slog.String("format", format),
			slog.Int("instructions", len(doc.Instructions)),
		)

		w.Header().Set("Content-Type", writer.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
