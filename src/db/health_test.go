package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.exists
	return nil
}

type fakeStore struct {
	pingErr error
	row     fakeRow
	pings   int
}

func (s *fakeStore) Ping(context.Context) error {
	s.pings++
	return s.pingErr
}

func (s *fakeStore) QueryRow(context.Context, string, ...any) pgx.Row {
	return s.row
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
		want  string
		db    string
		table string
	}{
		{"ready", &fakeStore{row: fakeRow{exists: true}}, "ok", "up", "ready"},
		{"schema missing", &fakeStore{row: fakeRow{exists: false}}, "degraded", "up", "missing"},
		{"lookup error", &fakeStore{row: fakeRow{err: errors.New("boom")}}, "degraded", "up", "unknown"},
		{"database down", &fakeStore{pingErr: errors.New("refused")}, "degraded", "down", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CheckHealth(context.Background(), tt.store)
			assert.Equal(t, tt.want, h.Status)
			assert.Equal(t, tt.db, h.Database)
			assert.Equal(t, tt.table, h.Schema)
			assert.Equal(t, tt.want == "ok", h.OK())
		})
	}
}
