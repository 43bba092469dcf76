package handler

import (
	"encoding/json"
	"net/http"
)

// Summary godoc
// @Summary      Server-side summary (not implemented)
// @Description  Totals are computed client side today; this endpoint is a placeholder.
// @Tags         transactions
// @Produce      json
// @Failure      501  {object}  map[string]string
// @Router       /api/summary [get]
func Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotImplemented)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "not implemented yet, use client-side calculation for now",
	})
}
