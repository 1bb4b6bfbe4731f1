package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/minsukang/blog-api/internal/auth"
	"github.com/minsukang/blog-api/internal/middleware"
	"github.com/minsukang/blog-api/internal/posts"
)

// NewRouter builds the full route table. It is called once at startup and
// never mutated afterwards.
func NewRouter(authHandler *auth.Handler, postHandler *posts.Handler, sessions auth.Sessions, users auth.UserStore, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(sessions, users))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/check", authHandler.Check)
		})

		r.Route("/posts", func(r chi.Router) {
			r.With(middleware.RequireAuth).Post("/", postHandler.Write)
			r.Get("/", postHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(postHandler.PostCtx)
				r.Get("/", postHandler.Read)
				r.With(middleware.RequireAuth, postHandler.CheckOwner).Delete("/", postHandler.Remove)
				r.With(middleware.RequireAuth, postHandler.CheckOwner).Patch("/", postHandler.Update)
			})
		})
	})

	return r
}
