package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

type userContextKey struct{}

// WithUser attaches the authenticated user to a context.
func WithUser(ctx context.Context, user *sqlconfig.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns the authenticated user, or nil on an unauthenticated
// request.
func GetUser(ctx context.Context) *sqlconfig.User {
	user, _ := ctx.Value(userContextKey{}).(*sqlconfig.User)
	return user
}

// userResolver resolves a token's user_id claim to the current user record.
type userResolver interface {
	FindByID(ctx context.Context, id int64) (*sqlconfig.User, error)
}

// publicPaths are reachable without a bearer token.
var publicPaths = map[string]bool{
	"/status":          true,
	"/api/":            true,
	"/api/auth/login":  true,
	"/api/auth/signup": true,
}

// Middleware validates the bearer token on every non-public operation and
// resolves it to a user record, which handlers read back via GetUser.
func Middleware(api huma.API, secret []byte, users userResolver) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if publicPaths[ctx.URL().Path] {
			next(ctx)
			return
		}

		authHeader := ctx.Header("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "User is not authenticated.")
			return
		}

		userID, err := ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid or expired JWT token.")
			return
		}

		user, err := users.FindByID(ctx.Context(), userID)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "failed to resolve user")
			return
		}
		if user == nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "User is not authenticated.")
			return
		}

		next(huma.WithContext(ctx, WithUser(ctx.Context(), user)))
	}
}
