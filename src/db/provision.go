package db

import (
	"context"
	"errors"
	"fmt"
	dbsql "kakeibo-server/src/db/sql"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	DefaultAttempts = 5
	DefaultDelay    = 5 * time.Second
)

var (
	ErrRetriesExhausted = errors.New("database unreachable, retries exhausted")
	ErrSchema           = errors.New("schema provisioning failed")
)

// Conn is the part of a pool the provisioner needs. *pgxpool.Pool satisfies it.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Close()
}

type ConnectFunc func(ctx context.Context, url string) (Conn, error)

type SleepFunc func(ctx context.Context, d time.Duration) error

// Provisioner opens a dedicated connection at startup, retrying with a fixed
// delay, and makes sure the transactions table exists. The connection is
// closed once the schema is in place.
type Provisioner struct {
	Connect  ConnectFunc
	Sleep    SleepFunc
	Attempts int
	Delay    time.Duration
}

func NewProvisioner(attempts int, delay time.Duration) *Provisioner {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Provisioner{
		Connect:  connectSingle,
		Sleep:    sleep,
		Attempts: attempts,
		Delay:    delay,
	}
}

// Run blocks until the schema is provisioned or the attempt budget is spent.
// A schema error on a live connection is returned at once without retrying.
func (p *Provisioner) Run(ctx context.Context, url string) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	var lastErr error
	retries := attempts
	for retries > 0 {
		conn, err := p.Connect(ctx, url)
		if err != nil {
			lastErr = err
			retries--
			log.Printf("ERROR: Database connection failed. Retrying... (%d attempts left): %v", retries, err)
			if retries > 0 {
				if err := p.Sleep(ctx, p.Delay); err != nil {
					return err
				}
			}
			continue
		}

		log.Println("INFO: Database connection successful")
		err = dbsql.EnsureTransactionsTable(ctx, conn)
		conn.Close()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSchema, err)
		}
		log.Println("INFO: Tables created successfully (if not exists)")
		return nil
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, lastErr)
}

func connectSingle(ctx context.Context, url string) (Conn, error) {
	pool, err := Connect(ctx, url, 1)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
