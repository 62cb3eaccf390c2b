package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fgpay/transaction-gateway/internal/domain"
	"github.com/fgpay/transaction-gateway/internal/metrics"
)

// HandleSubmitTransaction validates and prices a partner transaction message
// @Summary      Submit a transaction message
// @Description  Authenticates the partner, verifies timestamp, signature and line-item arithmetic, then returns the discounted amounts.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      domain.TransactionRequest  true  "Transaction message"
// @Success      200      {object}  domain.TransactionResponse "Validation outcome (result 0 or 1)"
// @Failure      400      {object}  APIResponse                "Undecodable body or field-level violation"
// @Router       /api/transaction/submittrxmessage [post]
func (h *TransactionHandler) HandleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, domain.NewMalformedRequestError(err))
		return
	}

	var req domain.TransactionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, domain.NewMalformedRequestError(err))
		return
	}

	// Field-level caps (lengths, qty range). Emptiness and arithmetic are
	// the pipeline's job; it re-checks those itself.
	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, domain.NewValidationError(err))
		return
	}

	start := time.Now()
	resp := h.service.Process(r.Context(), &req)
	elapsed := time.Since(start)

	reason := "success"
	result := "success"
	if resp.Result != domain.ResultSuccess {
		reason = resp.ResultMessage
		result = "failure"
	}
	metrics.ObserveRequest(result, reason, elapsed.Seconds())

	h.logger.Debug("transaction processed",
		"result", resp.Result,
		"result_message", resp.ResultMessage,
		"duration", elapsed,
	)

	// The contract always answers 200; the outcome lives in the result code.
	respondWithJSON(w, http.StatusOK, resp)
}
