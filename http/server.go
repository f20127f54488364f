// Package http exposes the two stateless calculation endpoints over a chi
// router: POST /mortgage-calculator and POST /amortization-schedule.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"move-calculator/config"
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	logger  *slog.Logger
	limiter *RateLimiter
}

// NewServer wires routes and middleware around the two calculation handlers.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	mortgage *MortgageHandler,
	schedule *ScheduleHandler,
) *Server {
	limiter := NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSec)*time.Second,
		time.Duration(cfg.RateLimit.IdleTTLSec)*time.Second,
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The handlers do their own method checks, so the routes are registered
	// for all methods and non-POST requests get a 405 body.
	r.Group(func(r chi.Router) {
		r.Use(RateLimit(limiter))
		r.Handle("/mortgage-calculator", http.HandlerFunc(mortgage.Calculate))
		r.Handle("/amortization-schedule", http.HandlerFunc(schedule.Schedule))
	})

	return &Server{
		router:  r,
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
	}
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) ListenAndServe() error {
	defer s.limiter.Stop()

	httpSrv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Server.IdleTimeoutSec) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.cfg.Server.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		s.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}
