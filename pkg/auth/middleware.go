package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromContext rebuilds the authenticated principal placed in the
// context by AuthMiddleware. Returns nil when the request is anonymous.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	userID, ok := ctx.Value(UserIDKey).(int)
	if !ok {
		return nil
	}
	role, ok := ctx.Value(RoleKey).(domain.Role)
	if !ok {
		return nil
	}
	return &domain.Principal{ID: userID, Role: role}
}
