// Package store wraps the pooled ClickHouse client with the single
// document-store handle every family query builder shares. The engine
// itself holds no mutable per-family state (spec.md §3 "Lifecycle"); Store
// is that one shared handle, leased per request via context.
package store

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/chainscope/timeline/pkg/db/clickhouse"
	"go.uber.org/zap"
)

// Store is the document-store handle the timeline engine's family query
// builders issue raw parameterized SQL through.
type Store struct {
	Client   *clickhouse.Client
	Logger   *zap.Logger
	Database string
}

// New wraps an already-connected clickhouse.Client.
func New(client *clickhouse.Client, logger *zap.Logger, database string) *Store {
	return &Store{Client: client, Logger: logger, Database: database}
}

// Table returns the fully qualified "database"."table" identifier used in
// FROM clauses.
func (s *Store) Table(name string) string {
	return fmt.Sprintf("%q.%q", s.Database, name)
}

// Select runs a SELECT and scans every row into dest, a pointer to a
// slice of structs (see the ClickHouse-go/v2 driver's Select contract).
func (s *Store) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return s.Client.Select(ctx, dest, query, args...)
}

// QueryRow runs a query expected to return at most one row.
func (s *Store) QueryRow(ctx context.Context, query string, args ...interface{}) driver.Row {
	return s.Client.QueryRow(ctx, query, args...)
}

// Ping checks store connectivity, used by the health route.
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Db.Ping(ctx)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.Client.Close()
}
