package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avetrov/habits-server/internal/logger"
	"github.com/avetrov/habits-server/internal/model"
)

// Tracker implements habit tracking: creating habits, recording
// completions and assembling the per-day view. It holds no state between
// calls; every view re-reads the stores.
type Tracker struct {
	habitStore      model.HabitStore
	completionStore model.CompletionStore
	logger          *logger.Logger
	now             func() time.Time
}

func NewTracker(
	habitStore model.HabitStore,
	completionStore model.CompletionStore,
	logger *logger.Logger,
) *Tracker {
	return &Tracker{
		habitStore:      habitStore,
		completionStore: completionStore,
		logger:          logger,
		now:             time.Now,
	}
}

// Today returns the current day at midnight UTC, resolved at call time.
func (s *Tracker) Today() time.Time {
	return model.Midnight(s.now())
}

// CreateHabit stores a new habit with a fresh random id and today's date.
// The name is stored as-is; an empty name is permitted.
func (s *Tracker) CreateHabit(ctx context.Context, name string) (model.Habit, error) {
	habit := model.Habit{
		ID:    newHabitID(),
		Added: s.Today(),
		Name:  name,
	}

	saved, err := s.habitStore.Create(ctx, habit)
	if err != nil {
		return model.Habit{}, fmt.Errorf("failed to create habit: %w", err)
	}

	s.logger.Debug("habit created", "id", saved.ID, "added", saved.Added)

	return saved, nil
}

// CompleteHabit records that the habit was performed on the given day.
// The date is normalized to midnight; habitID is not checked against the
// habits collection.
func (s *Tracker) CompleteHabit(ctx context.Context, habitID string, date time.Time) (model.Completion, error) {
	completion := model.Completion{
		Date:    model.Midnight(date),
		HabitID: habitID,
	}

	saved, err := s.completionStore.Create(ctx, completion)
	if err != nil {
		return model.Completion{}, fmt.Errorf("failed to record completion: %w", err)
	}

	return saved, nil
}

// DayView assembles the state for the reference date: habits with
// added <= ref and the ids completed on exactly ref. The reference is
// used as given; an explicit non-midnight reference still lists habits
// but matches no completions, since completions are stored at midnight.
func (s *Tracker) DayView(ctx context.Context, ref time.Time) (model.DayView, error) {
	habits, err := s.habitStore.ListAddedOnOrBefore(ctx, ref)
	if err != nil {
		return model.DayView{}, fmt.Errorf("failed to list habits: %w", err)
	}

	completions, err := s.completionStore.ListByDate(ctx, ref)
	if err != nil {
		return model.DayView{}, fmt.Errorf("failed to list completions: %w", err)
	}

	completed := make([]string, 0, len(completions))
	for _, c := range completions {
		completed = append(completed, c.HabitID)
	}

	return model.DayView{
		Date:      ref,
		Habits:    habits,
		Completed: completed,
	}, nil
}

// newHabitID returns a random 128-bit value rendered as 32 lowercase hex
// characters.
func newHabitID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
