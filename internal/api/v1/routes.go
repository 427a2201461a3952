package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kyra-labs/internship-dashboard/internal/auth"
	"github.com/kyra-labs/internship-dashboard/internal/config"
	"github.com/kyra-labs/internship-dashboard/internal/registration"
	"github.com/kyra-labs/internship-dashboard/internal/service"
)

type API struct {
	cfg           *config.Config
	router        *chi.Mux
	issuer        *auth.Issuer
	registry      auth.Registry
	registrations *registration.Service
	log           *slog.Logger
}

func NewAPI(cfg *config.Config, iss *auth.Issuer, registry auth.Registry, registrations *registration.Service, log *slog.Logger) *API {
	api := &API{
		cfg:           cfg,
		router:        chi.NewRouter(),
		issuer:        iss,
		registry:      registry,
		registrations: registrations,
		log:           log,
	}
	api.router.Use(middleware.RequestID)
	api.router.Use(middleware.Logger)
	api.router.Use(middleware.Recoverer)
	api.router.Use(auth.SessionMiddleware(iss, cfg.CookieName, log))

	api.routes()
	return api
}

func (a *API) Routes() *chi.Mux {
	return a.router
}

func (a *API) routes() {
	ssvc := service.NewSessionService(a.issuer, a.log)

	authH := NewAuthHandler(a.cfg, ssvc)
	viewH := NewViewHandler(a.registrations)

	r := a.router
	r.Get("/roles", viewH.Roles)
	r.Get("/session", authH.Current)

	r.Route("/auth", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
	})

	r.Route("/views", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		// navigation answers with the login view itself while logged out
		r.Get("/{item}", viewH.Navigate)
		r.Post("/logout", authH.Logout)
		r.With(auth.RequireSession).Post("/register", viewH.SubmitRegistration)
	})

	r.With(auth.RequireSession).Get("/faq", viewH.FAQ)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", HealthHandler(a.registry))
	})
}
