package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neondash/dashboard/internal/core/domain"
)

const collectionFocus = "focus_history"

type FocusRepository struct {
	col *mongo.Collection
}

func NewFocusRepository(db *mongo.Database) *FocusRepository {
	return &FocusRepository{col: db.Collection(collectionFocus)}
}

// ListByUser returns the user's entries, newest first.
func (r *FocusRepository) ListByUser(ctx context.Context, userID string) ([]domain.FocusEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find focus: %w", err)
	}
	defer cur.Close(ctx)

	entries := []domain.FocusEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode focus: %w", err)
	}
	return entries, nil
}

func (r *FocusRepository) Create(ctx context.Context, e *domain.FocusEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return err
}

// UpdateText changes the text of an entry owned by userID.
func (r *FocusRepository) UpdateText(ctx context.Context, userID, id, text string) (*domain.FocusEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "user_id": userID}
	update := bson.M{"$set": bson.M{"focus_text": text}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e domain.FocusEntry
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFocusNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Delete removes an entry owned by userID.
func (r *FocusRepository) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrFocusNotFound
	}
	return nil
}

// EnsureIndexes creates the per-user listing index.
func (r *FocusRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
