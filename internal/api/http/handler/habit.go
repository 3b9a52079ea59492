package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/avetrov/habits-server/internal/logger"
	"github.com/avetrov/habits-server/internal/model"
	"github.com/avetrov/habits-server/internal/web"
)

// TrackerService defines business operations for habit tracking.
type TrackerService interface {
	Today() time.Time
	CreateHabit(ctx context.Context, name string) (model.Habit, error)
	CompleteHabit(ctx context.Context, habitID string, date time.Time) (model.Completion, error)
	DayView(ctx context.Context, ref time.Time) (model.DayView, error)
}

// Habit handles the habit tracking endpoints.
type Habit struct {
	tracker   TrackerService
	templates *web.Templates
	logger    *logger.Logger
}

func NewHabit(tracker TrackerService, templates *web.Templates, logger *logger.Logger) *Habit {
	return &Habit{
		tracker:   tracker,
		templates: templates,
		logger:    logger,
	}
}

// Index renders the day view. An explicit ?date= is parsed literally,
// time-of-day included; without it the view is for today at midnight,
// resolved per request.
func (h *Habit) Index(w http.ResponseWriter, r *http.Request) {
	ref := h.tracker.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := model.ParseISODate(raw)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		ref = parsed
	}

	view, err := h.tracker.DayView(r.Context(), ref)
	if err != nil {
		h.logger.Error("failed to assemble day view", "date", ref, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.templates.RenderIndex(w, view); err != nil {
		h.logger.Error("failed to render day view", "error", err)
	}
}

// AddForm renders the empty add-habit form for today.
func (h *Habit) AddForm(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.RenderAdd(w, h.tracker.Today()); err != nil {
		h.logger.Error("failed to render add form", "error", err)
	}
}

// Add creates a habit when the form carries a habit field. The name is
// not validated; an empty submitted name is stored as-is. Without the
// field nothing is inserted. Either way the add view is rendered for the
// computed date.
func (h *Habit) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	date := h.tracker.Today()
	if r.PostForm.Has("habit") {
		habit, err := h.tracker.CreateHabit(r.Context(), r.PostForm.Get("habit"))
		if err != nil {
			h.logger.Error("failed to create habit", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		date = habit.Added
	}

	if err := h.templates.RenderAdd(w, date); err != nil {
		h.logger.Error("failed to render add form", "error", err)
	}
}

// Complete records a completion and redirects back to the day view. The
// redirect carries the submitted date string verbatim, so whichever
// accepted ISO form came in is echoed unchanged. habitId is not checked
// against existing habits.
func (h *Habit) Complete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rawDate := r.PostForm.Get("date")
	habitID := r.PostForm.Get("habitId")

	date, err := model.ParseISODate(rawDate)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if _, err := h.tracker.CompleteHabit(r.Context(), habitID, date); err != nil {
		h.logger.Error("failed to record completion", "habit_id", habitID, "date", rawDate, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?date="+url.QueryEscape(rawDate), http.StatusFound)
}
