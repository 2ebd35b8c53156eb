package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/pkg/jwt"
)

// AuthService defines the interface for token validation
type AuthService interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// IdentityKey is the context key for the resolved caller identity
const IdentityKey contextKey = "identity"

// GetIdentity extracts the caller identity from context. The zero value
// means the anonymous visitor.
func GetIdentity(ctx context.Context) model.Identity {
	if identity, ok := ctx.Value(IdentityKey).(model.Identity); ok {
		return identity
	}
	return model.Identity{}
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	return GetIdentity(ctx).UserID
}

// Auth returns a middleware that requires a valid bearer token
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, problem := resolveIdentity(authService, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the identity when a valid token is present and
// passes the anonymous visitor through otherwise. A malformed or expired
// token never blocks a public route.
func OptionalAuth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, problem := resolveIdentity(authService, r)
			if problem != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth requires a valid token carrying the admin role
func AdminAuth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, problem := resolveIdentity(authService, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}
			if !identity.IsAdmin() {
				model.NewForbiddenError("admin role required").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveIdentity(authService AuthService, r *http.Request) (model.Identity, *model.ProblemDetails) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return model.Identity{}, model.NewUnauthorizedError("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return model.Identity{}, model.NewUnauthorizedError("invalid authorization header format")
	}

	claims, err := authService.ValidateAccessToken(parts[1])
	if err != nil {
		switch err {
		case jwt.ErrTokenExpired:
			return model.Identity{}, model.NewUnauthorizedError("token expired")
		case jwt.ErrInvalidSignature:
			return model.Identity{}, model.NewUnauthorizedError("invalid token signature")
		default:
			return model.Identity{}, model.NewUnauthorizedError("invalid token")
		}
	}

	return model.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     model.UserRole(claims.Role),
	}, nil
}
