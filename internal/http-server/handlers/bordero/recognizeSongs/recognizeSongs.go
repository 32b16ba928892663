package recognizeSongs

import (
	"bordero/internal/lib/api/request"
	"bordero/internal/lib/api/response"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/lib/recognition"
	"bordero/internal/models"
	"bordero/internal/storage"
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"io"
	"log/slog"
	"net/http"
)

// multipart parts beyond this stay on disk
const formMemory = 32 << 20

type RecognizeResponse struct {
	response.Response
	SongCount  int                     `json:"song_count"`
	Songs      []models.Song           `json:"songs"`
	Recognized []models.RecognizedSong `json:"recognized"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SongRecognizer
type SongRecognizer interface {
	Recognize(ctx context.Context, filename string, audio io.Reader) ([]models.RecognizedSong, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SongsAdder
type SongsAdder interface {
	GetBordero(id string) (models.Record, error)
	AddSongs(id string, songs []models.Song) ([]models.Song, error)
}

// New uploads an audio recording to the recognition service and appends every
// match to the ledger, in the order it was heard.
func New(log *slog.Logger, recognizer SongRecognizer, songs SongsAdder, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bordero.recognizeSongs.New"

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

		if _, err = songs.GetBordero(id); err != nil {
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

		if r.ContentLength > maxUploadBytes {
			log.Error("upload too large", slog.Int64("content_length", r.ContentLength))
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("file too large"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		if err = r.ParseMultipartForm(formMemory); err != nil {
			log.Error("failed to parse upload", sl.Err(err))

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error("file too large"))
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read upload"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Error("missing file", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("file is required"))
			return
		}
		defer file.Close()

		log = log.With(slog.String("filename", header.Filename), slog.Int64("size", header.Size))

		if !recognition.SupportedFormat(header.Filename) {
			log.Error("unsupported audio format")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported audio format"))
			return
		}

		recognized, err := recognizer.Recognize(r.Context(), header.Filename, file)
		if err != nil {
			log.Error("recognition failed", sl.Err(err))

			switch {
			case errors.Is(err, recognition.ErrUnsupportedFormat):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unsupported audio format"))
			case errors.Is(err, recognition.ErrNoSongsRecognized):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("no songs recognized"))
			default:
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("recognition service unavailable"))
			}

			return
		}

		pending := make([]models.Song, 0, len(recognized))
		for _, rs := range recognized {
			pending = append(pending, rs.Song())
		}

		added, err := songs.AddSongs(id, pending)
		if err != nil {
			log.Error("failed to add recognized songs", sl.Err(err))

			if errors.Is(err, storage.ErrSessionNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("bordero not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add songs"))
			return
		}

		log.Info("songs recognized", slog.String("bordero_id", id), slog.Int("count", len(added)))

		render.JSON(w, r, RecognizeResponse{
			Response:   response.OK(),
			SongCount:  len(added),
			Songs:      added,
			Recognized: recognized,
		})
	}
}
