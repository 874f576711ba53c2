package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/jwt"
)

// key to store the resolved caller in the request context
type key int

const userKey key = 0

type Auth struct {
	jwtService jwt.Service
}

func NewAuth(jwtService jwt.Service) *Auth {
	return &Auth{jwtService: jwtService}
}

// Resolve populates the caller identity in the request context when a valid
// token is present and leaves the request anonymous otherwise. It never
// rejects a request: mutation handlers decide what an anonymous caller may
// do, so that existence checks can run before authorization checks.
func (a *Auth) Resolve() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := a.extractUser(r); user != nil {
				ctx := context.WithValue(r.Context(), userKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractUser reads the token from the accessToken cookie (browser clients)
// or the Authorization header (API clients).
func (a *Auth) extractUser(r *http.Request) *domain.User {
	var tokenStr string
	if cookie, err := r.Cookie("accessToken"); err == nil {
		tokenStr = cookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenStr = token
	}
	if tokenStr == "" {
		return nil
	}

	user, err := a.jwtService.ParseToken(tokenStr)
	if err != nil {
		return nil
	}
	return user
}

// GetUserFromContext returns the resolved caller, or nil for anonymous
// requests.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser is a test helper that injects an identity into a request.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}
