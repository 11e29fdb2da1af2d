package handler

import (
	"context"
	"net/http"
	"strings"

	"oakline/internal/domain"
	"oakline/internal/services"
	"oakline/internal/util"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// AuthMiddleware validates the bearer token, resolves the user and enforces
// the required scope ("staff" or "admin"). Admins satisfy the staff scope.
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates the JWT auth middleware.
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireStaff wraps a handler so only staff or admin users reach it.
func (m *AuthMiddleware) RequireStaff(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, func(u *domain.User) bool { return u.IsStaff || u.IsAdmin })
}

// RequireAdmin wraps a handler so only admin users reach it.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.require(next, func(u *domain.User) bool { return u.IsAdmin })
}

func (m *AuthMiddleware) require(next http.HandlerFunc, allowed func(*domain.User) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid authorization header format"})
			return
		}

		claims, err := util.ValidateToken(parts[1])
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid or expired token"})
			return
		}

		user, err := m.authService.GetUser(r.Context(), claims)
		if err != nil {
			respondError(w, err)
			return
		}

		if !allowed(user) {
			respondJSON(w, http.StatusForbidden, errorResponse{Message: "Insufficient permissions"})
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
