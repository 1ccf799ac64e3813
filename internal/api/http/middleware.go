package http

import (
	"context"
	"net/http"
	"strings"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/security"
)

type contextKey string

const (
	actorKey  contextKey = "actor"
	claimsKey contextKey = "claims"
)

// AuthMiddleware validates the Bearer token and injects the caller's
// claims and billing actor into the request context.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "authorization header is not provided")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, http.StatusUnauthorized, "access token required")
			return
		}

		actor := billing.Actor{
			UserID:   claims.UserID,
			Role:     claims.Role,
			AgencyID: claims.AgencyID,
			PlantID:  claims.PlantID,
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the billing actor placed by the middleware.
func ActorFromContext(ctx context.Context) (billing.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(billing.Actor)
	return actor, ok
}

// RequireRoles wraps a handler and rejects callers outside the listed
// roles with 403.
func RequireRoles(roles ...domain.UserRole) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[domain.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !allowed[actor.Role] {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next(w, r)
		}
	}
}
