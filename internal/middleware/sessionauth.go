package middleware

import (
	"context"
	"net/http"

	"catalyst-hr/internal/config"
	"catalyst-hr/internal/domain"
)

// SessionSource is the slice of the lifecycle monitor the UI needs.
type SessionSource interface {
	CheckNow(ctx context.Context, token string) (*domain.Session, domain.SessionState)
	Touch(ctx context.Context, s *domain.Session)
}

// SessionLoader resolves the session cookie on every UI request. A live
// session is placed on the context and touched for activity tracking;
// an expired one has its cookie cleared and the request proceeds
// anonymously, leaving the access guard to redirect.
func SessionLoader(sessions SessionSource, cfg config.SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			s, state := sessions.CheckNow(r.Context(), cookie.Value)
			switch state {
			case domain.SessionActive, domain.SessionWarned:
				sessions.Touch(r.Context(), s)
				next.ServeHTTP(w, r.WithContext(domain.WithSession(r.Context(), s)))
			default:
				ClearSessionCookie(w, cfg)
				next.ServeHTTP(w, r)
			}
		})
	}
}

// SetSessionCookie writes the session cookie for a freshly established
// session.
func SetSessionCookie(w http.ResponseWriter, cfg config.SessionConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter, cfg config.SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
