// Package server mounts the HTTP API and owns its lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/quorumlabs/maestro/internal/handler"
	agenthandler "github.com/quorumlabs/maestro/internal/handler/agent"
	"github.com/quorumlabs/maestro/internal/svc"
)

// NewRouter builds the chi router with all routes mounted. The request
// timeout here is the caller-imposed bound on the graph's external calls.
func NewRouter(svcCtx *svc.ServiceContext) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(svcCtx.Log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(svcCtx.Config.RequestTimeoutSeconds) * time.Second))

	r.Get("/health", handler.HealthCheckHandler(svcCtx))
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/agent", agenthandler.AgentTurnHandler(svcCtx))
	})
	return r
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the listener fails.
func Run(ctx context.Context, svcCtx *svc.ServiceContext) error {
	addr := fmt.Sprintf("%s:%d", svcCtx.Config.Host, svcCtx.Config.Port)
	if err := checkPortAvailable(addr); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(svcCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		svcCtx.Log.Info().Str("addr", addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func checkPortAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("address %s is already in use", addr)
	}
	return ln.Close()
}

// requestLogger emits one line per request with method, path, status, and
// latency.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Str("request_id", chimw.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
