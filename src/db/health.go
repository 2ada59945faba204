package db

import (
	"context"
	dbsql "kakeibo-server/src/db/sql"
	"kakeibo-server/src/models"
	"log"
)

// Store is what the health check needs from the request pool. *pgxpool.Pool satisfies it.
type Store interface {
	dbsql.RowQuerier
	Ping(ctx context.Context) error
}

// CheckHealth reports database reachability and whether the transactions
// table is present. A service started in degrade mode shows up here as
// schema "missing".
func CheckHealth(ctx context.Context, store Store) models.Health {
	h := models.Health{Status: "degraded", Database: "down", Schema: "unknown"}

	if err := store.Ping(ctx); err != nil {
		log.Printf("ERROR: Health check ping failed: %v", err)
		return h
	}
	h.Database = "up"

	exists, err := dbsql.TableExists(ctx, store, dbsql.TransactionsTable)
	if err != nil {
		log.Printf("ERROR: Health check schema lookup failed: %v", err)
		return h
	}
	if !exists {
		h.Schema = "missing"
		return h
	}

	h.Schema = "ready"
	h.Status = "ok"
	return h
}
