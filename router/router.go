package router

import (
	"net/http"

	"go-expense-tracker/handler"
)

func NewRouter(transactionHandler *handler.TransactionHandler, healthHandler *handler.HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))
	mux.Handle("POST /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction))
	mux.Handle("DELETE /api/transactions/{id}", handler.ErrorHandlingMiddleware(transactionHandler.DeleteTransaction))

	mux.HandleFunc("GET /api/summary", handler.Summary)
	mux.HandleFunc("GET /api/health", healthHandler.HealthCheck)
	mux.HandleFunc("GET /{$}", handler.Root)

	return handler.CORSMiddleware(mux)
}
