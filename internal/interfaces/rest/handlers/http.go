package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator"

	"github.com/fgpay/transaction-gateway/internal/domain"
)

// TransactionProcessor is what the REST layer needs from the validation
// pipeline.
type TransactionProcessor interface {
	Process(ctx context.Context, req *domain.TransactionRequest) *domain.TransactionResponse
}

type TransactionHandler struct {
	service  TransactionProcessor
	validate *validator.Validate
	logger   *slog.Logger
}

func NewTransactionHandler(service TransactionProcessor, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *TransactionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/transaction/submittrxmessage", h.HandleSubmitTransaction)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

func (h *TransactionHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok": true,
		"ts": time.Now().UTC(),
	})
}
