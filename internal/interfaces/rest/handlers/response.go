package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fgpay/transaction-gateway/internal/domain"
)

// APIResponse is the envelope for transport-level errors. Successful
// submissions return the TransactionResponse body directly.
type APIResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	code := domain.ErrCodeInternal
	message := err.Error()
	status := http.StatusInternalServerError

	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeMalformedRequest, domain.ErrCodeValidation:
			status = http.StatusBadRequest
		default:
			status = http.StatusInternalServerError
		}
	}

	respondWithJSON(w, status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}
