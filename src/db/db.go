package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMissingURL = errors.New("database url is empty")

// NewPool builds a pool without touching the network; connections are opened lazily.
func NewPool(ctx context.Context, url string, maxConns int32) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, ErrMissingURL
	}
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.MinConns = 0
	cfg.MaxConnIdleTime = 2 * time.Minute

	return pgxpool.NewWithConfig(ctx, cfg)
}

func Connect(ctx context.Context, url string, maxConns int32) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, url, maxConns)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
