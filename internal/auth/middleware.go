package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/kyra-labs/internship-dashboard/internal/session"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

type ctxKey string

const ctxSessionKey ctxKey = "currentSession"

type current struct {
	session session.Session
	id      string
}

// GetSessionFromCtx returns the request's session and its id. Requests without
// a valid session cookie get the logged out session and an empty id.
func GetSessionFromCtx(ctx context.Context) (session.Session, string) {
	if c, ok := ctx.Value(ctxSessionKey).(current); ok {
		return c.session, c.id
	}
	return session.Anonymous(), ""
}

// SessionMiddleware resolves the session cookie, if any, into the request
// context. It never rejects a request.
func SessionMiddleware(iss *Issuer, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := current{session: session.Anonymous()}
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				s, id, err := iss.Resolve(r.Context(), cookie.Value)
				if err != nil {
					log.Debug("session cookie rejected",
						slog.String("request_id", middleware.GetReqID(r.Context())),
						slog.String("error", err.Error()))
				} else {
					c = current{session: s, id: id}
				}
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey, c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession answers 401 with the login view while logged out.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, _ := GetSessionFromCtx(r.Context()); !s.Authenticated {
			utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "login required", view.LoginScreen("", ""), nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSessionCookie stores token in an HttpOnly cookie.
func SetSessionCookie(w http.ResponseWriter, name, token string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
}

func ClearSessionCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
