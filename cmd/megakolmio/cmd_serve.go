package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "svw.info/megakolmio/internal/adapters/http"
	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/config"
	"svw.info/megakolmio/internal/hint"
	"svw.info/megakolmio/internal/infrastructure/storage"
	"svw.info/megakolmio/internal/solver"
	"svw.info/megakolmio/internal/usecase"
	"svw.info/megakolmio/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Microsecond),
		)
	})
}

// newMux wires providers → use cases → HTTP adapter.
func newMux(cfg config.Config) *http.ServeMux {
	cat := catalog.Standard()
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(cat),
		validator.New(cat),
		hint.NewSearch(cat),
		storage.NewFS(cfg.PersistPath),
	)
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)
	if cfg.Metrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	return mux
}

func (o *options) runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.addr != "" {
		cfg.Addr = o.addr
	}
	if o.servePersist != "" {
		cfg.PersistPath = o.servePersist
	}
	logger := o.logger
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		lvl, _ := config.ParseLevel(cfg.LogLevel)
		logger = slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: lvl}))
	}
	if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
		return errors.Wrap(err, "create persist dir")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, newMux(cfg)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistPath, "metrics", cfg.Metrics)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
