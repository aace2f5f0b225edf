// Package server HTTP точки входа: синхронизация, чтение кэша и запись контактов
// по bearer токену хоста.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/server/handlers"
	"github.com/iudanet/carddavsync/internal/server/middleware"
)

const shutdownTimeout = 10 * time.Second

// Service всё, что нужно точкам входа от менеджера синхронизации
type Service interface {
	handlers.SyncService
	handlers.PushService
}

// Config параметры HTTP сервера
type Config struct {
	Addr         string
	Version      string
	JWT          handlers.JWTConfig
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	RequestRate  rate.Limit
	RequestBurst int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	router  *chi.Mux
	limiter *middleware.RateLimiter
	logger  *slog.Logger
	cfg     Config
}

// New creates a new HTTP server with all routes configured.
func New(cfg Config, svc Service, reader contacts.Service, store handlers.Pinger, logger *slog.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		limiter: middleware.NewRateLimiter(cfg.RequestRate, cfg.RequestBurst, logger),
		logger:  logger,
		cfg:     cfg,
	}

	health := handlers.NewHealthHandler(logger, store, cfg.Version)
	syncH := handlers.NewSyncHandler(logger, svc)
	contactsH := handlers.NewContactsHandler(logger, reader, svc)

	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.RecoveryMiddleware(logger))
	s.router.Use(middleware.LoggingWithSkip(logger, []string{"/api/v1/health"}))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(logger, cfg.JWT))
			r.Use(s.limiter.Middleware)

			r.Post("/sync", syncH.SyncUser)
			r.Post("/sweep", syncH.Sweep)

			r.Route("/collections", func(r chi.Router) {
				r.Get("/", syncH.Collections)
				r.Post("/{id}/sync", syncH.SyncCollection)

				r.Get("/{id}/contacts", contactsH.List)
				r.Post("/{id}/contacts", contactsH.Create)
				r.Delete("/{id}/contacts", contactsH.Delete)
				r.Get("/{id}/contacts/{localID}", contactsH.Get)
				r.Put("/{id}/contacts/{localID}", contactsH.Update)
			})
		})
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run слушает cfg.Addr до отмены ctx, затем корректно завершает активные запросы
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	srv := &http.Server{
		Handler:           s,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting", "addr", ln.Addr().String())
		errC <- srv.Serve(ln)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
