package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anonboard-dev/anonboard/internal/config"
	"github.com/anonboard-dev/anonboard/internal/logger"
	"github.com/anonboard-dev/anonboard/internal/service"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	thread service.ThreadService
	reply  service.ReplyService
	health HealthChecker
	cfg    *config.Config
}

func New(auth service.AuthService, thread service.ThreadService, reply service.ReplyService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{auth, thread, reply, health, cfg}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
