package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minsukang/blog-api/internal/models"
)

// PostFilter holds the optional list predicates. Zero-value fields add no
// constraint.
type PostFilter struct {
	Username string // exact match on the embedded author username
	Tag      string // exact match against the tags array
}

func (f PostFilter) query() bson.M {
	q := bson.M{}
	if f.Username != "" {
		q["user.username"] = f.Username
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	return q
}

// MongoStore handles post CRUD in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("posts")}
}

func (s *MongoStore) Insert(ctx context.Context, post *models.Post) (*models.Post, error) {
	post.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return post, nil
}

// List returns one page of posts matching the filter, newest first.
func (s *MongoStore) List(ctx context.Context, filter PostFilter, skip, limit int64) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.col.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoStore) Count(ctx context.Context, filter PostFilter) (int64, error) {
	return s.col.CountDocuments(ctx, filter.query())
}

func (s *MongoStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies the partial change set and returns the new document.
func (s *MongoStore) Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdatePostRequest) (*models.Post, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Body != nil {
		set["body"] = *upd.Body
	}
	if upd.Tags != nil {
		set["tags"] = upd.Tags
	}

	var post models.Post
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post. A missing document is not an error.
func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
