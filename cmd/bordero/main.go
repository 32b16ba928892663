package main

import (
	"bordero/internal/config"
	"bordero/internal/http-server/handlers/bordero/addSong"
	"bordero/internal/http-server/handlers/bordero/createBordero"
	"bordero/internal/http-server/handlers/bordero/deleteBordero"
	"bordero/internal/http-server/handlers/bordero/exportBordero"
	"bordero/internal/http-server/handlers/bordero/getBordero"
	"bordero/internal/http-server/handlers/bordero/recognizeSongs"
	"bordero/internal/http-server/handlers/bordero/removeSong"
	"bordero/internal/http-server/handlers/bordero/resetBordero"
	"bordero/internal/http-server/handlers/bordero/updateEvent"
	"bordero/internal/http-server/handlers/bordero/updatePerformer"
	"bordero/internal/http-server/handlers/bordero/updateSong"
	"bordero/internal/http-server/handlers/bordero/validateBordero"
	"bordero/internal/http-server/handlers/export/getExports"
	"bordero/internal/http-server/middleware/cors"
	"bordero/internal/http-server/middleware/mwlogger"
	"bordero/internal/lib/logger/handlers/slogpretty"
	"bordero/internal/lib/logger/sl"
	"bordero/internal/lib/recognition"
	"bordero/internal/storage/memory"
	"bordero/internal/storage/postgres"
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type journal interface {
	exportBordero.ExportSaver
	getExports.ExportsGetter
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting bordero", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	sessions := memory.New()

	var exports journal = memory.NewJournal()

	var db *postgres.Storage
	if cfg.Database.Enabled() {
		var err error

		db, err = postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}

		exports = db
		log.Info("export journal on postgres", slog.String("host", cfg.Database.Host))
	} else {
		log.Info("export journal in memory")
	}

	recognizer := recognition.New(cfg.Recognizer.URL, cfg.Recognizer.Timeout)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New(cfg.HTTPServer.CORSOrigins))

	router.Route("/borderos", func(r chi.Router) {
		r.Post("/", createBordero.New(log, sessions))
		r.Get("/{id}", getBordero.New(log, sessions))
		r.Delete("/{id}", deleteBordero.New(log, sessions))
		r.Patch("/{id}/event", updateEvent.New(log, sessions))
		r.Patch("/{id}/performer", updatePerformer.New(log, sessions))
		r.Post("/{id}/reset", resetBordero.New(log, sessions))
		r.Post("/{id}/songs", addSong.New(log, sessions))
		r.Put("/{id}/songs/{songId}", updateSong.New(log, sessions))
		r.Delete("/{id}/songs/{songId}", removeSong.New(log, sessions))
		r.Get("/{id}/validation", validateBordero.New(log, sessions))
		r.Get("/{id}/export", exportBordero.New(log, sessions, exports))
		r.Post("/{id}/recognize", recognizeSongs.New(log, recognizer, sessions, cfg.HTTPServer.MaxUploadBytes))
	})

	router.Get("/exports", getExports.New(log, exports))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:        cfg.HTTPServer.Address,
		Handler:     router,
		ReadTimeout: cfg.HTTPServer.Timeout,
		// recognition of a long recording outlives the regular timeout
		WriteTimeout: cfg.Recognizer.Timeout + cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.Sessions.PurgeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := sessions.PurgeIdle(cfg.Sessions.IdleTTL); n > 0 {
					log.Info("idle sessions purged", slog.Int("count", n), slog.Int("open", sessions.Len()))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			cancel()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
		}

		log.Info("postgres connection closed")
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
