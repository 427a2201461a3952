package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	v1 "github.com/kyra-labs/internship-dashboard/internal/api/v1"
	"github.com/kyra-labs/internship-dashboard/internal/auth"
	"github.com/kyra-labs/internship-dashboard/internal/config"
	"github.com/kyra-labs/internship-dashboard/internal/registration"
)

type Server struct {
	cfg           *config.Config
	issuer        *auth.Issuer
	registry      auth.Registry
	registrations *registration.Service
	log           *slog.Logger
}

func NewServer(cfg *config.Config, registry auth.Registry, registrations *registration.Service, log *slog.Logger) (*Server, error) {
	iss, err := auth.NewIssuer(cfg.SessionSecret, cfg.SessionTTL(), registry)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, issuer: iss, registry: registry, registrations: registrations, log: log}, nil
}

// Handler builds the full routing tree with CORS in front of /api/v1.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	api := v1.NewAPI(s.cfg, s.issuer, s.registry, s.registrations, s.log)
	r.Mount("/api/v1", api.Routes())
	return r
}

func (s *Server) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.BindAddr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
