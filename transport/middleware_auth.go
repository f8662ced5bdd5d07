package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/getinmotion/telar-sub006/application/user"
	"github.com/getinmotion/telar-sub006/constant"
	"github.com/getinmotion/telar-sub006/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public marketplace reads pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp
			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRequest defines which endpoints need no token. Shop reads are
// public marketplace surface except the per-user lookup and the moderation
// product listing; every shop write requires auth.
func isPublicRequest(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}
	if r.Method == http.MethodGet && strings.HasPrefix(path, "/artisan-shops") {
		if strings.HasPrefix(path, "/artisan-shops/user/") {
			return false
		}
		if strings.HasSuffix(path, "/products") {
			return false
		}
		return true
	}

	return false
}
