package db

import (
	"context"
	"fmt"
	"kakeibo-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const TransactionsTable = "transactions"

// CreateTransactionsTable is safe to run on every startup; it never touches an existing table.
const CreateTransactionsTable = `
	CREATE TABLE IF NOT EXISTS transactions (
		id         BIGSERIAL PRIMARY KEY,
		date       DATE NOT NULL,
		type       VARCHAR(10) NOT NULL,
		category   VARCHAR(50) NOT NULL,
		amount     INTEGER NOT NULL,
		memo       VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Querier interface {
	RowQuerier
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func EnsureTransactionsTable(ctx context.Context, ex Execer) error {
	if _, err := ex.Exec(ctx, CreateTransactionsTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", TransactionsTable, err)
	}
	return nil
}

func TableExists(ctx context.Context, q RowQuerier, table string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return exists, nil
}

func CountTables(ctx context.Context, q RowQuerier, table string) (int, error) {
	query := `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = $1
	`
	var n int
	if err := q.QueryRow(ctx, query, table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count table %s: %w", table, err)
	}
	return n, nil
}

// DescribeTable lists the columns of table in ordinal order.
func DescribeTable(ctx context.Context, q Querier, table string) ([]models.Column, error) {
	query := `
		SELECT column_name::text, data_type::text, is_nullable = 'YES',
		       character_maximum_length::int, column_default::text
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position
	`
	rows, err := q.Query(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var c models.Column
		if err := rows.Scan(&c.Name, &c.DataType, &c.Nullable, &c.MaxLength, &c.Default); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}
