package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tupelotree/contact-backend/utils"
	"go.uber.org/zap"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	ledgerPath string
	logger     *zap.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(ledgerPath string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{ledgerPath: ledgerPath, logger: logger}
}

// HandleHealth handles GET /healthz
// Basic health check - always returns 200 if service is running
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	_ = utils.WriteJSON(w, http.StatusOK, response)
}

// HandleReadiness handles GET /readyz
// Readiness check - validates that the ledger location is usable
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	allHealthy := true

	if err := h.checkLedgerDir(); err != nil {
		h.logger.Warn("ledger directory check failed", zap.Error(err))
		checks["ledger"] = "unhealthy"
		allHealthy = false
	} else {
		checks["ledger"] = "healthy"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}

	if err := utils.WriteJSON(w, httpStatus, response); err != nil {
		h.logger.Error("failed to write readiness response", zap.Error(err))
	}
}

// checkLedgerDir verifies the ledger's containing directory exists or can be
// created, the same create-if-absent contract the writer relies on.
func (h *HealthHandler) checkLedgerDir() error {
	dir := filepath.Dir(h.ledgerPath)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
