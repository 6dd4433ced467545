// Package httpapi wires the HTTP surface of the social service.
// It keeps handlers thin, delegating business rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/social/internal/service/account"
	"github.com/tinoosan/social/internal/service/message"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	accounts account.Service
	messages message.Service
	ready    ReadyChecker
	limiter  *ipLimiter
	log      *slog.Logger
	rt       *chi.Mux
}

// Option configures optional server behaviour.
type Option func(*Server)

// WithReadyChecker makes /readyz report the checker's state.
func WithReadyChecker(rc ReadyChecker) Option { return func(s *Server) { s.ready = rc } }

// WithAuthRateLimit limits POST /register and POST /login per client IP.
// A non-positive rps disables limiting.
func WithAuthRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = newIPLimiter(rps, burst)
		}
	}
}

// New constructs the HTTP server with routes and middleware.
func New(accounts account.Service, messages message.Service, logger *slog.Logger, opts ...Option) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{accounts: accounts, messages: messages, rt: r, log: logger}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// Close releases background resources such as the rate limiter sweeper.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Close()
	}
}

// routes declares the public HTTP API endpoints and attaches any per-route middleware.
func (s *Server) routes() {
	// Accounts
	s.rt.With(s.limitAuth, s.validateRegister()).Post("/register", s.register)
	s.rt.With(s.limitAuth, s.validateLogin()).Post("/login", s.login)
	s.rt.With(s.validateAccountID()).Get("/accounts/{account_id}/messages", s.listAccountMessages)
	// Messages
	s.rt.With(s.validatePostMessage()).Post("/messages", s.createMessage)
	s.rt.Get("/messages", s.listMessages)
	s.rt.With(s.validateMessageID()).Get("/messages/{message_id}", s.getMessage)
	s.rt.With(s.validateMessageID(), s.validatePatchMessage()).Patch("/messages/{message_id}", s.updateMessage)
	s.rt.With(s.validateMessageID()).Delete("/messages/{message_id}", s.deleteMessage)
	// Ops
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
}
