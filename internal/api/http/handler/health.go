package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger checks reachability of the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health serves /health with a document store check.
type Health struct {
	db Pinger
}

func NewHealth(db Pinger) *Health {
	return &Health{db: db}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]string)
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		checks["mongodb"] = "down: " + err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["mongodb"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := healthResponse{Status: "ok", Checks: checks}
	if status != http.StatusOK {
		resp.Status = "unhealthy"
	}
	_ = json.NewEncoder(w).Encode(resp)
}
