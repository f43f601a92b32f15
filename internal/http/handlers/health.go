package handlers

import (
	"context"
	"net/http"
	"time"

	"shopconsole/internal/listing"
)

// Pinger checks backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports the console status, backend reachability and the number of
// listing requests in flight.
func Health(backend Pinger, busy *listing.Busy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		backendStatus := "ok"
		if err := backend.Ping(ctx); err != nil {
			backendStatus = "unreachable"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"backend":  backendStatus,
			"inflight": busy.InFlight(),
			"loading":  busy.Loading(),
		})
	}
}
