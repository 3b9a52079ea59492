package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avetrov/habits-server/internal/model"
)

const completionsCollection = "completions"

var _ model.CompletionStore = (*CompletionRepository)(nil)

type CompletionRepository struct {
	db *Connection
}

func NewCompletionRepository(db *Connection) *CompletionRepository {
	return &CompletionRepository{
		db: db,
	}
}

// Create inserts a completion with the id left to the store. Nothing
// deduplicates (habit, date) pairs: completing twice stores two records.
func (r *CompletionRepository) Create(ctx context.Context, completion model.Completion) (model.Completion, error) {
	res, err := r.db.Collection(completionsCollection).InsertOne(ctx, completion)
	if err != nil {
		return model.Completion{}, fmt.Errorf("failed to insert completion: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		completion.ID = id
	}

	return completion, nil
}

// ListByDate returns completions whose date equals the given timestamp
// exactly. Completions are stored normalized to midnight, so only a
// midnight timestamp can match.
func (r *CompletionRepository) ListByDate(ctx context.Context, date time.Time) ([]model.Completion, error) {
	cursor, err := r.db.Collection(completionsCollection).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer cursor.Close(ctx)

	var completions []model.Completion
	if err := cursor.All(ctx, &completions); err != nil {
		return nil, fmt.Errorf("failed to decode completions: %w", err)
	}

	return completions, nil
}
