// Package monitor implements the read-only HTTP surface used by `calc
// serve`. It never writes the session blob: StatusSource combines what the
// audit log recorded with the replay counters decoded from a read of the
// blob.
package monitor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// StatusProvider supplies the current snapshot monitor serves.
type StatusProvider interface {
	Status() (Status, error)
}

// Status is the JSON body served at /status.
type Status struct {
	RunID         string `json:"run_id"`
	LastCommand   string `json:"last_command"`
	ReplayDepth   int    `json:"replay_depth"`
	LinesToSkip   uint64 `json:"lines_to_skip"`
	HasLastRandom bool   `json:"has_last_random"`
	LastRandom    int64  `json:"last_random_number,omitempty"`
	EventCount    int    `json:"event_count"`
}

// NewHandler builds the chi router for the monitoring surface: a liveness
// probe and a read-only status snapshot.
func NewHandler(provider StatusProvider) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		st, err := provider.Status()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(st)
	})

	return r
}
