package model

import (
	"context"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HabitStore defines persistence operations for habits.
type HabitStore interface {
	Create(ctx context.Context, habit Habit) (Habit, error)
	ListAddedOnOrBefore(ctx context.Context, ref time.Time) ([]Habit, error)
}

// CompletionStore defines persistence operations for completions.
type CompletionStore interface {
	Create(ctx context.Context, completion Completion) (Completion, error)
	ListByDate(ctx context.Context, date time.Time) ([]Completion, error)
}

// Habit represents a trackable recurring task. The id is generated by the
// application at creation time; the record is never edited or deleted.
type Habit struct {
	ID    string    `bson:"_id"`
	Added time.Time `bson:"added"`
	Name  string    `bson:"name"`
}

// Completion asserts that a habit was performed on a specific day. The id
// is left to the store; application logic never reads it. HabitID is a
// plain reference, not enforced against the habits collection.
type Completion struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Date    time.Time          `bson:"date"`
	HabitID string             `bson:"habit"`
}

// DayView is the assembled state for one reference date: the habits active
// on that date and the habit ids completed on it. Completed preserves
// store order and may contain duplicates; only membership matters.
type DayView struct {
	Date      time.Time
	Habits    []Habit
	Completed []string
}

// IsCompleted reports whether the habit with the given id is completed on
// the view's date.
func (v DayView) IsCompleted(habitID string) bool {
	return slices.Contains(v.Completed, habitID)
}
