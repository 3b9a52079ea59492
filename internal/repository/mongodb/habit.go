package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avetrov/habits-server/internal/model"
)

const habitsCollection = "habits"

var _ model.HabitStore = (*HabitRepository)(nil)

type HabitRepository struct {
	db *Connection
}

func NewHabitRepository(db *Connection) *HabitRepository {
	return &HabitRepository{
		db: db,
	}
}

func (r *HabitRepository) Create(ctx context.Context, habit model.Habit) (model.Habit, error) {
	// No uniqueness on name; duplicate names are two distinct habits.
	if _, err := r.db.Collection(habitsCollection).InsertOne(ctx, habit); err != nil {
		return model.Habit{}, fmt.Errorf("failed to insert habit: %w", err)
	}
	return habit, nil
}

// ListAddedOnOrBefore returns habits with added <= ref. The boundary is
// inclusive: a habit added at exactly midnight of the reference date
// counts as active. Sorted by added then name so views render stably.
func (r *HabitRepository) ListAddedOnOrBefore(ctx context.Context, ref time.Time) ([]model.Habit, error) {
	filter := bson.M{"added": bson.M{"$lte": ref}}
	opts := options.Find().SetSort(bson.D{{Key: "added", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.db.Collection(habitsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer cursor.Close(ctx)

	var habits []model.Habit
	if err := cursor.All(ctx, &habits); err != nil {
		return nil, fmt.Errorf("failed to decode habits: %w", err)
	}

	return habits, nil
}
