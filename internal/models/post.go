package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostUser is the author snapshot embedded in every post. It is written
// once at creation time and never reassigned.
type PostUser struct {
	ID       string `json:"_id"      bson:"_id"`
	Username string `json:"username" bson:"username"`
}

// Post is a single blog entry stored in MongoDB.
type Post struct {
	ID        primitive.ObjectID `json:"_id"        bson:"_id,omitempty"`
	Title     string             `json:"title"      bson:"title"`
	Body      string             `json:"body"       bson:"body"`
	Tags      []string           `json:"tags"       bson:"tags"`
	User      PostUser           `json:"user"       bson:"user"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// summaryLimit is the maximum body length, in characters, shown in list
// responses.
const summaryLimit = 200

// Summary returns a copy of the post with the body cut to summaryLimit
// characters plus an ellipsis marker. Short bodies pass through unchanged.
func (p Post) Summary() Post {
	runes := []rune(p.Body)
	if len(runes) > summaryLimit {
		p.Body = string(runes[:summaryLimit]) + "..."
	}
	return p
}

// WritePostRequest is the JSON body for POST /api/posts.
type WritePostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

// Validate requires title, body, and tags; tags must be present but may
// be empty.
func (r *WritePostRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title == "" {
		errs = append(errs, FieldError{"title", "title is required"})
	}
	if r.Body == "" {
		errs = append(errs, FieldError{"body", "body is required"})
	}
	if r.Tags == nil {
		errs = append(errs, FieldError{"tags", "tags is required"})
	}
	return errs
}

// UpdatePostRequest is the JSON body for PATCH /api/posts/{id}. Every
// field is optional; nil means "leave unchanged".
type UpdatePostRequest struct {
	Title *string  `json:"title"`
	Body  *string  `json:"body"`
	Tags  []string `json:"tags"`
}

// Validate rejects explicitly empty title or body; absent fields are fine.
func (r *UpdatePostRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title != nil && *r.Title == "" {
		errs = append(errs, FieldError{"title", "title must not be empty"})
	}
	if r.Body != nil && *r.Body == "" {
		errs = append(errs, FieldError{"body", "body must not be empty"})
	}
	return errs
}

// Empty reports whether the update carries no changes at all.
func (r *UpdatePostRequest) Empty() bool {
	return r.Title == nil && r.Body == nil && r.Tags == nil
}
