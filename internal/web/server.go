package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/edvin/accountdesk/internal/config"
	"github.com/edvin/accountdesk/internal/core"
	"github.com/edvin/accountdesk/internal/web/handler"
	mw "github.com/edvin/accountdesk/internal/web/middleware"
	"github.com/edvin/accountdesk/internal/web/response"
	"github.com/edvin/accountdesk/internal/web/templates"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	pool     *pgxpool.Pool
	accounts *core.AccountService
	auth     *core.AuthService
	tmpl     *templates.Renderer
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, cfg *config.Config) (*Server, error) {
	tmpl, err := templates.New()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		pool:     pool,
		accounts: core.NewAccountService(pool),
		auth:     core.NewAuthService(pool, cfg.SessionSecret),
		tmpl:     tmpl,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	auth := handler.NewAuth(s.auth, s.tmpl)
	s.router.Get("/login", auth.LoginPage)
	s.router.Post("/login", auth.Login)
	s.router.Post("/logout", auth.Logout)

	// Everything below requires an authenticated session.
	s.router.Group(func(r chi.Router) {
		r.Use(mw.Session(s.auth))

		dashboard := handler.NewDashboard(s.accounts, s.tmpl)
		r.Get("/", dashboard.Index)

		bulk := handler.NewBulk(s.accounts)
		r.Post("/bulk-action", bulk.Apply)

		account := handler.NewAccount(s.accounts, s.tmpl)
		r.Get("/accounts/{id}/edit", account.Edit)
		r.Post("/accounts/{id}", account.Update)
		r.Post("/accounts/{id}/delete", account.Delete)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := s.pool.Ping(r.Context()); err != nil {
		response.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
