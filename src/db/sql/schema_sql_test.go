package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execFunc func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)

func (f execFunc) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return f(ctx, sql, arguments...)
}

func TestCreateTransactionsTable_Shape(t *testing.T) {
	ddl := strings.Join(strings.Fields(CreateTransactionsTable), " ")

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS transactions")
	for _, col := range []string{
		"id BIGSERIAL PRIMARY KEY",
		"date DATE NOT NULL",
		"type VARCHAR(10) NOT NULL",
		"category VARCHAR(50) NOT NULL",
		"amount INTEGER NOT NULL",
		"memo VARCHAR(255),",
		"created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	} {
		assert.Contains(t, ddl, col)
	}
	assert.NotContains(t, ddl, "DROP")
	assert.NotContains(t, ddl, "ALTER")
}

func TestEnsureTransactionsTable(t *testing.T) {
	var got string
	err := EnsureTransactionsTable(context.Background(), execFunc(func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		got = sql
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	}))

	require.NoError(t, err)
	assert.Equal(t, CreateTransactionsTable, got)
}

func TestEnsureTransactionsTable_WrapsError(t *testing.T) {
	cause := errors.New("permission denied")
	err := EnsureTransactionsTable(context.Background(), execFunc(func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, cause
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transactions")
}
