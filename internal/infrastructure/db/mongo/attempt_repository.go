package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

const collectionAttempts = "checkout_attempts"

// AttemptRepository persists the checkout attempt journal.
type AttemptRepository struct {
	col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{col: db.Collection(collectionAttempts)}
}

// Insert writes a finished attempt record.
func (r *AttemptRepository) Insert(ctx context.Context, attempt *domain.CheckoutAttempt) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, attempt)
	return err
}

// List returns a page of attempts matching filter, newest first, and the
// total count.
func (r *AttemptRepository) List(ctx context.Context, filter ports.ListAttemptsFilter) ([]*domain.CheckoutAttempt, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	limit := int64(filter.Limit)
	skip := int64(filter.Page-1) * limit
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var attempts []*domain.CheckoutAttempt
	if err := cur.All(ctx, &attempts); err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

// EnsureIndexes creates the indexes the listing filters rely on.
func (r *AttemptRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "state", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
