// Package httpapi implements the HTTP transport: routing, the bearer-token
// access guard, and handlers translating service results to the wire
// contract.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/mbelyaev/taskkeeper/internal/logging"
	"github.com/mbelyaev/taskkeeper/internal/server/services"
)

type HTTPServer struct {
	address string
	logger  logging.Logger
	auth    *services.AuthService
	tasks   *services.TaskService
}

func NewHTTPServer(a string, l logging.Logger, as *services.AuthService, ts *services.TaskService) *HTTPServer {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		auth:    as,
		tasks:   ts,
	}
}

// Handler returns the root handler: public auth endpoints plus the
// guarded task and profile routes.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/profile", s.requireAuth(http.HandlerFunc(s.handleProfile)))

	mux.Handle("GET /api/tasks", s.requireAuth(http.HandlerFunc(s.handleListTasks)))
	mux.Handle("POST /api/tasks", s.requireAuth(http.HandlerFunc(s.handleCreateTask)))
	mux.Handle("GET /api/tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleGetTask)))
	mux.Handle("PUT /api/tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleUpdateTask)))
	mux.Handle("DELETE /api/tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteTask)))
	mux.Handle("POST /api/tasks/{id}/toggle", s.requireAuth(http.HandlerFunc(s.handleToggleTask)))

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
