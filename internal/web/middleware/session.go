package middleware

import (
	"context"
	"net/http"

	"github.com/edvin/accountdesk/internal/core"
	"github.com/edvin/accountdesk/internal/model"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "accountdesk_session"

// Session returns middleware that validates the session cookie and injects
// the operator's claims into the request context. Requests without a valid
// session are redirected to the login page, never served an error page.
func Session(auth *core.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			claims, err := auth.ValidateSession(cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts session claims from the request context.
func GetSession(ctx context.Context) *model.SessionClaims {
	claims, _ := ctx.Value(sessionKey).(*model.SessionClaims)
	return claims
}
