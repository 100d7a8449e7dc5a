// Package session issues anonymous session identifiers. The storefront has
// no accounts; carts, favorites and preferences are keyed by a session
// cookie alone.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie issued to every visitor
const CookieName = "storefront_session"

// cookie lifetime; sessions are sliding, every response refreshes it
const maxAge = 30 * 24 * time.Hour

type contextKey struct{}

// Middleware ensures every request carries a session id, issuing a new UUID
// when the cookie is absent, and stores the id on the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
			id = cookie.Value
		}
		if id == "" {
			id = uuid.NewString()
		}

		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), contextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the session id set by Middleware, or "" when the
// request did not pass through it.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
