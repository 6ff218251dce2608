package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"catalyst-hr/internal/domain"
)

type principalKey struct{}

// Principal identifies an authenticated API caller.
type Principal struct {
	Email string
	Name  string
	Role  domain.Role
}

// WithPrincipal stores the API principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the API principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// SessionChecker resolves a session token to its current lifecycle
// state. Satisfied by session.Monitor.
type SessionChecker interface {
	CheckNow(ctx context.Context, token string) (*domain.Session, domain.SessionState)
}

// APIAuth tries a JWT Bearer token first, then a session token in the
// X-Session-Token header. Returns 401 if both fail.
func APIAuth(validator JWTValidator, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") && validator != nil {
				tokenStr := strings.TrimPrefix(auth, "Bearer ")
				claims, err := validator.Validate(r.Context(), tokenStr)
				if err == nil && claims.Subject != "" {
					p := Principal{Email: claims.Subject, Role: domain.RoleUser}
					if claims.Name != nil {
						p.Name = *claims.Name
					}
					if claims.Role != nil {
						p.Role = domain.ParseRole(*claims.Role)
					}
					next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
					return
				}
			}

			if token := r.Header.Get("X-Session-Token"); token != "" && sessions != nil {
				s, state := sessions.CheckNow(r.Context(), token)
				if state == domain.SessionActive || state == domain.SessionWarned {
					p := Principal{Email: s.Email, Name: s.DisplayName, Role: s.Role}
					next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"code":    401,
				"message": "unauthorized: provide a valid JWT Bearer token or session token",
			})
		})
	}
}
