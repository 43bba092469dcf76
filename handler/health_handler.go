package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go-expense-tracker/service"
)

type HealthHandler struct {
	service *service.TransactionService
}

func NewHealthHandler(s *service.TransactionService) *HealthHandler {
	return &HealthHandler{service: s}
}

// HealthCheck godoc
// @Summary      Show the status of the server and its store
// @Description  Probes the store with a zero-row count query and reports connectivity plus configuration presence.
// @Tags         health
// @Produce      json
// @Success      200  {object}  service.HealthStatus
// @Failure      500  {object}  service.HealthStatus
// @Router       /api/health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Health(r.Context())

	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(status)
}

// Root godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Expense tracker API up and running")
}
