package store

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"go-expense-tracker/logger"
	"go-expense-tracker/model"
)

// PostgresStore implements TransactionStore directly against Postgres, for
// deployments that skip the managed table service.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	log := logger.Log.WithField("operation", "list")
	log.Info("Executing query to list transactions")

	query := `
		SELECT id, type, amount, description, date
		FROM transactions
		ORDER BY date DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute list transactions query")
		return nil, err
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.Description, &t.Date); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, t model.Transaction) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"type":   t.Type,
		"amount": t.Amount,
		"date":   t.Date.String(),
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transactions (type, amount, description, date) VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.DB.QueryRowContext(ctx, query, t.Type, t.Amount, t.Description, t.Date).Scan(&t.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction deletes by predicate without checking existence first; a
// non-numeric id is the database's problem and comes back as its own error.
func (s *PostgresStore) DeleteTransaction(ctx context.Context, id string) error {
	log := logger.Log.WithField("id", id)
	log.Info("Executing query to delete transaction")

	_, err := s.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1::bigint`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete transaction query")
		return err
	}
	return nil
}

func (s *PostgresStore) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM transactions`).Scan(&count); err != nil {
		logger.Log.WithError(err).Error("Failed to execute count transactions query")
		return 0, err
	}
	return count, nil
}
