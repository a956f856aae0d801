package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepo struct {
	cfg        *models.Config
	collection *mongo.Collection
	now        func() time.Time
}

// NewRatingRepository creates a rating store over the given collection
func NewRatingRepository(cfg *models.Config, collection *mongo.Collection) *RatingRepo {
	return &RatingRepo{
		cfg:        cfg,
		collection: collection,
		now:        time.Now,
	}
}

func (r *RatingRepo) CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	doc := *rating
	doc.ID = primitive.NilObjectID
	now := r.now().UTC().Truncate(time.Millisecond)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected rating id type %T", result.InsertedID)
	}
	doc.ID = id
	return &doc, nil
}

func (r *RatingRepo) GetRatingByID(ctx context.Context, id string) (*models.Rating, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var rating models.Rating
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rating); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return &rating, nil
}

func (r *RatingRepo) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	return r.find(ctx, bson.M{})
}

// UpdateRating rewrites the mutable fields; the target is never changed.
// Returns (nil, nil) when the rating no longer exists.
func (r *RatingRepo) UpdateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	rating.UpdatedAt = r.now().UTC().Truncate(time.Millisecond)
	update := bson.M{"$set": bson.M{
		"score":       rating.Score,
		"comment":     rating.Comment,
		"rating_date": rating.RatingDate,
		"updated_at":  rating.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": rating.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return rating, nil
}

// DeleteRating removes the rating and returns what was deleted, or nil
// when nothing matched
func (r *RatingRepo) DeleteRating(ctx context.Context, id string) (*models.Rating, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var deleted models.Rating
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete rating: %w", err)
	}
	return &deleted, nil
}

func (r *RatingRepo) FindByEntity(ctx context.Context, entityID int64, entityType string) ([]*models.Rating, error) {
	return r.find(ctx, bson.M{"entity_id": entityID, "entity_type": entityType})
}

func (r *RatingRepo) FindByEntityType(ctx context.Context, entityType string) ([]*models.Rating, error) {
	return r.find(ctx, bson.M{"entity_type": entityType})
}

func (r *RatingRepo) FindByScoreAtLeast(ctx context.Context, min int) ([]*models.Rating, error) {
	return r.find(ctx, bson.M{"score": bson.M{"$gte": min}})
}

// FindByScoreBetween is inclusive on both ends
func (r *RatingRepo) FindByScoreBetween(ctx context.Context, min, max int) ([]*models.Rating, error) {
	return r.find(ctx, bson.M{"score": bson.M{"$gte": min, "$lte": max}})
}

func (r *RatingRepo) find(ctx context.Context, filter bson.M) ([]*models.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}

	ratings := []*models.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}
	return ratings, nil
}
