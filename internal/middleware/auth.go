package middleware

import (
	"context"
	"net/http"

	"github.com/minsukang/blog-api/internal/auth"
	"github.com/minsukang/blog-api/internal/models"
)

// Authenticate resolves the session cookie to an identity and injects it
// into the request context under "user". Anonymous requests pass through
// untouched; a stale or garbage cookie counts as anonymous.
func Authenticate(sessions auth.Sessions, users auth.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity := &models.Identity{ID: user.ID, Username: user.Username}
			ctx := context.WithValue(r.Context(), "user", identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth halts with 401 and an empty body when no identity was
// attached by Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, _ := r.Context().Value("user").(*models.Identity); user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
