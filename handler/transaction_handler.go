package handler

import (
	"encoding/json"
	"net/http"

	"go-expense-tracker/common"
	"go-expense-tracker/model"
	"go-expense-tracker/service"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransactions godoc
// @Summary      List all transactions
// @Description  Returns every expense and income record, ordered by date descending.
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   model.Transaction
// @Failure      500  {object}  common.AppError "Store failure"
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	transactions, err := h.service.ListTransactions(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, err.Error(), err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}

// CreateTransaction godoc
// @Summary      Record a new transaction
// @Description  Inserts one expense or income record and returns it with its assigned id.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction body model.CreateTransactionRequest true "The movement to record"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "A required field is missing"
// @Failure      500  {object}  common.AppError "Store failure"
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateTransactionRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	transaction, err := h.service.CreateTransaction(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrAllFieldsRequired:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, err.Error(), err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Description  Removes the record matching id. Succeeds even when no such record exists.
// @Tags         transactions
// @Param        id path string true "The id of the transaction to delete"
// @Success      204  "Deleted"
// @Failure      500  {object}  common.AppError "Store failure"
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		return common.NewAppError(http.StatusInternalServerError, err.Error(), err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
