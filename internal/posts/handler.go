package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsukang/blog-api/internal/models"
	"github.com/minsukang/blog-api/internal/store"
)

// pageSize is the fixed number of posts per list page.
const pageSize = 10

// PostStore defines the interface for post persistence.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) (*models.Post, error)
	List(ctx context.Context, filter store.PostFilter, skip, limit int64) ([]models.Post, error)
	Count(ctx context.Context, filter store.PostFilter) (int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Handler holds post HTTP handlers.
type Handler struct {
	posts PostStore
	log   *logrus.Logger
}

func NewHandler(posts PostStore, log *logrus.Logger) *Handler {
	return &Handler{posts: posts, log: log}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFieldErrors(w http.ResponseWriter, errs []models.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "validation failed",
		"details": errs,
	})
}

// PostCtx resolves the {id} path segment to a post and attaches it to the
// request context. Malformed ids get 400, missing posts 404.
func (h *Handler) PostCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		post, err := h.posts.GetByID(r.Context(), oid)
		if errors.Is(err, store.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			h.log.WithError(err).Error("post lookup failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), "post", post)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CheckOwner halts with 403 unless the context identity authored the
// context post. Requires Authenticate/RequireAuth and PostCtx upstream.
func (h *Handler) CheckOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Context().Value("user").(*models.Identity)
		post := r.Context().Value("post").(*models.Post)
		if post.User.ID != user.ID {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Write creates a post authored by the current identity.
func (h *Handler) Write(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value("user").(*models.Identity)

	var req models.WritePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if errs := req.Validate(); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	post := &models.Post{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
		User:  models.PostUser{ID: user.ID, Username: user.Username},
	}
	post, err := h.posts.Insert(r.Context(), post)
	if err != nil {
		h.log.WithError(err).Error("post insert failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// List returns one page of posts, newest first, optionally filtered by tag
// and author username. The Last-Page header carries the total page count.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		page = n
	}
	if page < 1 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filter := store.PostFilter{
		Username: r.URL.Query().Get("username"),
		Tag:      r.URL.Query().Get("tag"),
	}

	posts, err := h.posts.List(r.Context(), filter, int64(page-1)*pageSize, pageSize)
	if err != nil {
		h.log.WithError(err).Error("post list failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	count, err := h.posts.Count(r.Context(), filter)
	if err != nil {
		h.log.WithError(err).Error("post count failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summary())
	}

	lastPage := (count + pageSize - 1) / pageSize
	w.Header().Set("Last-Page", strconv.FormatInt(lastPage, 10))
	writeJSON(w, http.StatusOK, summaries)
}

// Read returns the post resolved by PostCtx.
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	post := r.Context().Value("post").(*models.Post)
	writeJSON(w, http.StatusOK, post)
}

// Remove deletes the post. The store ignores whether a document was
// actually matched, so a post that vanished after lookup still gets 204.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	post := r.Context().Value("post").(*models.Post)
	if err := h.posts.Delete(r.Context(), post.ID); err != nil {
		h.log.WithError(err).Error("post delete failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Update applies a partial change set and returns the updated post.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	post := r.Context().Value("post").(*models.Post)

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if errs := req.Validate(); errs != nil {
		writeFieldErrors(w, errs)
		return
	}
	if req.Empty() {
		writeJSON(w, http.StatusOK, post)
		return
	}

	updated, err := h.posts.Update(r.Context(), post.ID, &req)
	if errors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.WithError(err).Error("post update failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
