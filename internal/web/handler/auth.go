package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/edvin/accountdesk/internal/core"
	mw "github.com/edvin/accountdesk/internal/web/middleware"
	"github.com/edvin/accountdesk/internal/web/request"
	"github.com/edvin/accountdesk/internal/web/templates"
)

type Auth struct {
	svc  *core.AuthService
	tmpl *templates.Renderer
}

func NewAuth(svc *core.AuthService, tmpl *templates.Renderer) *Auth {
	return &Auth{svc: svc, tmpl: tmpl}
}

// LoginView is the data rendered by the login template.
type LoginView struct {
	Error string
}

func (h *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, LoginView{})
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := request.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := request.Validate(form); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, LoginView{Error: "Username and password are required."})
		return
	}

	token, err := h.svc.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Str("username", form.Username).Msg("failed login")
		h.renderLogin(w, r, http.StatusUnauthorized, LoginView{Error: "Invalid username or password."})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Auth) renderLogin(w http.ResponseWriter, r *http.Request, status int, view LoginView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.Render(w, "login.tmpl", view); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render login")
	}
}
