package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"go-expense-tracker/config"
	"go-expense-tracker/logger"
	"go-expense-tracker/model"
	"go-expense-tracker/store"
)

// ErrAllFieldsRequired is returned when a create request is missing any of
// its four fields. Handlers map it to HTTP 400.
var ErrAllFieldsRequired = errors.New("all fields are required")

// TransactionService is the gateway between the HTTP surface and the store.
// Each operation is a single pass-through call; a store failure is never
// retried, it goes straight back to the caller.
type TransactionService struct {
	store store.TransactionStore
	cfg   *config.Config
}

func NewTransactionService(st store.TransactionStore, cfg *config.Config) *TransactionService {
	return &TransactionService{
		store: st,
		cfg:   cfg,
	}
}

// ListTransactions returns every transaction, newest date first. An empty
// table is an empty slice, never nil, so it serializes as [].
func (s *TransactionService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	return transactions, nil
}

// CreateTransaction inserts one record and returns it with the store-assigned
// ID. Only field presence is enforced; everything else passes through as-is.
func (s *TransactionService) CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (*model.Transaction, error) {
	if req.Missing() {
		return nil, ErrAllFieldsRequired
	}

	log := logger.Log.WithFields(logrus.Fields{
		"type":   req.Type,
		"amount": *req.Amount,
		"date":   req.Date.String(),
	})
	log.Info("Creating transaction")

	transaction := model.Transaction{
		Type:        req.Type,
		Amount:      *req.Amount,
		Description: req.Description,
		Date:        *req.Date,
	}
	return s.store.CreateTransaction(ctx, transaction)
}

// DeleteTransaction removes the record matching id. Deleting an id that does
// not exist is still a success.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	logger.Log.WithField("id", id).Info("Deleting transaction")
	return s.store.DeleteTransaction(ctx, id)
}

// HealthStatus is the diagnostic payload. Env reports only whether the store
// endpoint URL and access key are configured, never their values.
type HealthStatus struct {
	Status         string    `json:"status"`
	StoreConnected bool      `json:"storeConnected"`
	Message        string    `json:"message,omitempty"`
	Env            EnvStatus `json:"env"`
}

type EnvStatus struct {
	HasURL bool `json:"hasUrl"`
	HasKey bool `json:"hasKey"`
}

// Health probes the store with a zero-row count query and reports
// connectivity together with configuration presence.
func (s *TransactionService) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:         "ok",
		StoreConnected: true,
		Env: EnvStatus{
			HasURL: s.cfg.HasStoreURL(),
			HasKey: s.cfg.HasStoreKey(),
		},
	}

	if _, err := s.store.CountTransactions(ctx); err != nil {
		logger.Log.WithError(err).Error("Store health probe failed")
		status.Status = "error"
		status.StoreConnected = false
		status.Message = err.Error()
	}
	return status
}
