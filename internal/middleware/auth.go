package middleware

import (
	"context"
	"net/http"
	"strings"

	"employee-registry/internal/model"
)

type tokenAuthenticator interface {
	AuthenticateToken(ctx context.Context, token string) (model.AuthUser, error)
}

type contextKey string

const authUserContextKey contextKey = "auth_user"

type AuthMiddleware struct {
	authenticator tokenAuthenticator
}

func NewAuthMiddleware(authenticator tokenAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeAuthError(w, "UNAUTHORIZED", "missing or invalid authorization header")
			return
		}

		token := strings.TrimSpace(header[7:])
		user, err := m.authenticator.AuthenticateToken(r.Context(), token)
		if err != nil {
			writeAuthError(w, "UNAUTHORIZED", "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole enforces an exact role match. The two roles are not ordered:
// an edit user is rejected from view-only routes just like the reverse.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeAuthError(w, "UNAUTHORIZED", "authentication required")
				return
			}

			if user.Role != role {
				writeAuthError(w, "FORBIDDEN", "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func UserFromContext(ctx context.Context) (model.AuthUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(model.AuthUser)
	return user, ok
}

func writeAuthError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	if code == "FORBIDDEN" {
		w.WriteHeader(http.StatusForbidden)
	} else {
		w.WriteHeader(http.StatusUnauthorized)
	}

	_ = jsonEncode(w, model.ErrorResponse{
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
