package controllers

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"success":   true,
		"message":   "Travel API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
