package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/career-navigator/apiserver/config"
	"github.com/career-navigator/apiserver/internal/auth"
	"github.com/career-navigator/apiserver/internal/catalog"
	"github.com/career-navigator/apiserver/internal/db"
	"github.com/career-navigator/apiserver/internal/handlers"
	"github.com/career-navigator/apiserver/internal/password"
	"github.com/career-navigator/apiserver/internal/services"
	"github.com/career-navigator/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// devSecret signs tokens when no JWT_SECRET is configured in dev mode.
const devSecret = "dev-secret-change-me"

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	store      store.Store
}

// New constructs a Server: storage backend per configuration, token
// issuer from the process-wide secret, and all routes.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		if !cfg.DevMode() {
			_ = st.Close()
			return nil, errors.New("JWT_SECRET is required")
		}
		log.Warn("JWT_SECRET not set, using development secret")
		secret = devSecret
	}

	issuer, err := auth.NewIssuer(secret, cfg.TokenTTL())
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	codec := password.New(password.Scheme(cfg.PasswordScheme))
	authService := services.NewAuthService(st, codec, issuer, log)
	recordsService := services.NewRecordsService(st)
	catalogProvider := catalog.NewProvider(cfg.DataDir)

	authHandler := handlers.NewAuthHandler(authService)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, authService)
	})
	router.Route("/jobs", func(r chi.Router) {
		handlers.JobsRouter(r, recordsService, authHandler.RequireAuth)
	})
	router.Route("/progress", func(r chi.Router) {
		handlers.ProgressRouter(r, recordsService, authHandler.RequireAuth)
	})
	handlers.CatalogRouter(router, catalogProvider)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		store:      st,
	}, nil
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DataProvider == config.ProviderFile {
		return store.OpenFile(cfg.FileStorePath)
	}
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store.NewSQLStore(dbConn), nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.store != nil {
		_ = s.store.Close()
	}
	return s.httpServer.Close()
}
