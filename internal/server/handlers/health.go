package handlers

import (
	"net/http"
	"time"

	"social-login/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Service:   "token-exchange-relay",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	response.Success(w, http.StatusOK, resp)
}
