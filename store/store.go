// Package store talks to the transaction table. Every operation is a single
// remote call: no caching, no retries, no state held between requests. A
// failure is reported to the caller immediately with the store's own message.
package store

import (
	"context"
	"fmt"

	"go-expense-tracker/config"
	"go-expense-tracker/db"
	"go-expense-tracker/logger"
	"go-expense-tracker/model"
)

// TransactionStore is the contract every store backend satisfies.
type TransactionStore interface {
	// ListTransactions returns every row, newest date first.
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	// CreateTransaction inserts one row and returns it with the assigned ID.
	CreateTransaction(ctx context.Context, t model.Transaction) (*model.Transaction, error)
	// DeleteTransaction removes the row matching id. It succeeds whether or
	// not a row existed; the id stays an opaque string end to end.
	DeleteTransaction(ctx context.Context, id string) error
	// CountTransactions runs a zero-row count probe, used for health checks.
	CountTransactions(ctx context.Context) (int64, error)
}

// Error is a failure reported by the store. Its message is surfaced to API
// callers verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Supported backends.
const (
	BackendREST     = "rest"
	BackendPostgres = "postgres"
)

// CleanupFunc releases whatever resources a backend holds.
type CleanupFunc func() error

// New builds the store backend the configuration selects. The REST backend
// performs no connectivity check at startup so the process can come up even
// while the remote service is unreachable or unconfigured.
func New(cfg *config.Config) (TransactionStore, CleanupFunc, error) {
	switch cfg.Store.Backend {
	case BackendREST:
		logger.Log.WithField("backend", BackendREST).Info("Initialized REST table store")
		return NewRESTStore(cfg.Store.URL, cfg.Store.Key), nil, nil

	case BackendPostgres:
		database, err := db.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := RunMigrations(database); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Log.WithField("backend", BackendPostgres).Info("Initialized Postgres store")
		return NewPostgresStore(database), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
