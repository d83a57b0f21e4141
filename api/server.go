package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/celestialmindworks/site-backend/auth"
	"github.com/celestialmindworks/site-backend/config"
	"github.com/celestialmindworks/site-backend/database"
	"github.com/celestialmindworks/site-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// routerDeps carries everything the router needs; tests build it with fakes.
type routerDeps struct {
	cfg      *config.Config
	posts    BlogPostStore
	messages ContactMessageStore
	users    UserStore
	mailer   Mailer
	sessions *auth.SessionManager
}

func NewServer(cfg *config.Config, db database.Database) (Server, error) {
	deps := routerDeps{
		cfg:      cfg,
		posts:    db.BlogPostRepo(),
		messages: db.ContactMessageRepo(),
		users:    db.UserRepo(),
		mailer:   services.NewMailer(cfg),
		sessions: auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL),
	}

	router, err := newRouter(deps)
	if err != nil {
		return Server{}, err
	}

	startupTime := time.Now()

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.Port), // Bind to 0.0.0.0 for external access
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(deps routerDeps) (*chi.Mux, error) {
	renderer, err := newRenderer()
	if err != nil {
		return nil, err
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	identity := identityMiddleware{sessions: deps.sessions, users: deps.users}
	chiRouter.Use(identity.attach)

	handlers := initializeHandlers(deps, renderer)
	loginLimiter := newRateLimiter(deps.cfg.LoginRatePerMinute)

	setupRoutes(chiRouter, handlers, loginLimiter)

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
