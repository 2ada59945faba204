package handlers

import (
	"context"
	"encoding/json"
	"kakeibo-server/src/db"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// Health answers 200 when the database is reachable and the transactions
// table exists, 503 otherwise.
func Health(store db.Store, cache *db.HealthCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health, ok := cache.Get()
		if !ok {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			health = db.CheckHealth(ctx, store)
			cancel()
			cache.Set(health)
		}

		w.Header().Set("Content-Type", "application/json")
		if !health.OK() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	}
}
