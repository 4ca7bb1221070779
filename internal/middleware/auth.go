package middleware

import (
	"context"
	"net/http"
	"strings"

	"menagerie/internal/token"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (token.Claims, error)
}

type contextKey string

const claimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator tokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth resolves the bearer token into verified claims and puts
// them on the request context. Any token failure is a uniform 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid authorization header")
			return
		}

		claims, err := m.validator.ValidateToken(strings.TrimSpace(header[7:]))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(token.Claims)
	return claims, ok
}
