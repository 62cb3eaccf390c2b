// Package services orchestrates the transaction validation pipeline.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/fgpay/transaction-gateway/internal/application"
	"github.com/fgpay/transaction-gateway/internal/domain"
)

// Result messages returned to partners. The exact strings are part of the
// API contract and must not change.
const (
	MsgPartnerRefNoRequired = "partnerrefno is Required."
	MsgPartnerKeyRequired   = "partnerKey is Required."
	MsgTimestampRequired    = "timestamp is Required."
	MsgSigRequired          = "sig is Required."
	MsgAccessDenied         = "Access Denied!"
	MsgInvalidBase64        = "Invalid Base-64 string format."
	MsgTimestampExpired     = "Timestamp Expired"
	MsgInvalidItemDetails   = "Invalid Item Details!"
	MsgInvalidTotalAmount   = "Invalid Total Amount."
	MsgUnexpectedError      = "An unexpected error occurred."
)

// DefaultTimestampWindow is how far a request timestamp may drift from
// server time, in either direction.
const DefaultTimestampWindow = 5 * time.Minute

// TransactionService validates and prices partner transaction requests. It
// is stateless across requests and safe for concurrent use.
type TransactionService struct {
	directory application.PartnerDirectory
	window    time.Duration
	logger    *slog.Logger
}

func NewTransactionService(directory application.PartnerDirectory, window time.Duration, logger *slog.Logger) *TransactionService {
	if window <= 0 {
		window = DefaultTimestampWindow
	}
	return &TransactionService{
		directory: directory,
		window:    window,
		logger:    logger,
	}
}

// Process runs the full validation pipeline and always produces a response;
// the first failing check wins. Anything that escapes the individual checks
// is caught here and reported as a generic failure.
func (s *TransactionService) Process(ctx context.Context, req *domain.TransactionRequest) (resp *domain.TransactionResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("unexpected failure during transaction validation",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			resp = domain.NewFailureResponse(MsgUnexpectedError)
		}
	}()

	return s.validate(ctx, req)
}

func (s *TransactionService) validate(ctx context.Context, req *domain.TransactionRequest) *domain.TransactionResponse {
	s.logger.Debug("starting transaction validation",
		"partner_ref_no", req.PartnerRefNo,
		"total_amount", req.TotalAmount,
		"item_count", len(req.Items),
	)

	if req.PartnerRefNo == "" {
		return s.fail(MsgPartnerRefNoRequired, "partner_ref_no missing")
	}
	if req.PartnerKey == "" {
		return s.fail(MsgPartnerKeyRequired, "partner_key missing")
	}
	if req.Timestamp == "" {
		return s.fail(MsgTimestampRequired, "timestamp missing")
	}
	if req.Sig == "" {
		return s.fail(MsgSigRequired, "sig missing")
	}

	expectedPassword, err := s.directory.Lookup(ctx, req.PartnerRefNo)
	if err != nil {
		if !errors.Is(err, application.ErrPartnerNotFound) {
			s.logger.Error("partner directory lookup failed", "partner_ref_no", req.PartnerRefNo, "error", err)
		}
		return s.fail(MsgAccessDenied, "unknown partner reference number")
	}

	// A password that fails to decode builds and logs a failure response but
	// does not return it; the later checks decide what the caller sees. This
	// mirrors the long-standing service behavior that partners integrate
	// against (see DESIGN.md).
	decoded, decodeErr := base64.StdEncoding.DecodeString(req.PartnerPassword)
	if decodeErr != nil {
		dropped := domain.NewFailureResponse(MsgInvalidBase64)
		s.logger.Error("partner password is not valid base64",
			"partner_ref_no", req.PartnerRefNo,
			"error", decodeErr,
			"result_message", dropped.ResultMessage,
		)
	} else if string(decoded) != expectedPassword {
		return s.fail(MsgAccessDenied, "password mismatch")
	}

	requestTime, err := domain.ParseTimestamp(req.Timestamp)
	if err != nil {
		return s.fail(MsgTimestampExpired, "timestamp unparsable")
	}
	if drift := time.Now().UTC().Sub(requestTime); drift > s.window || drift < -s.window {
		s.logger.Warn("timestamp outside allowed window",
			"partner_ref_no", req.PartnerRefNo,
			"request_time", requestTime,
			"drift", drift,
		)
		return domain.NewFailureResponse(MsgTimestampExpired)
	}

	expectedSig, err := domain.Sign(req.Timestamp, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword)
	if err != nil {
		// Unreachable once the timestamp parsed above; treated as the
		// generic safety net rather than a validation outcome.
		s.logger.Error("signature recomputation failed", "error", err)
		return domain.NewFailureResponse(MsgUnexpectedError)
	}
	if expectedSig != req.Sig {
		return s.fail(MsgAccessDenied, "signature mismatch")
	}

	// A request without an item list skips reconciliation entirely; an empty
	// list still reconciles (to zero) against the total.
	if req.Items != nil {
		var calculatedTotal int64
		for _, item := range req.Items {
			if item.PartnerItemRef == "" || item.Name == "" || item.Qty < 1 || item.UnitPrice < 1 {
				return s.fail(MsgInvalidItemDetails, "item failed field checks")
			}
			calculatedTotal += int64(item.Qty) * item.UnitPrice
		}
		if calculatedTotal != req.TotalAmount {
			s.logger.Warn("item total does not reconcile",
				"partner_ref_no", req.PartnerRefNo,
				"calculated_total", calculatedTotal,
				"total_amount", req.TotalAmount,
			)
			return domain.NewFailureResponse(MsgInvalidTotalAmount)
		}
	}

	totalDiscount, finalAmount := domain.CalculateDiscount(req.TotalAmount)

	s.logger.Info("transaction validated",
		"partner_ref_no", req.PartnerRefNo,
		"total_amount", req.TotalAmount,
		"total_discount", totalDiscount,
		"final_amount", finalAmount,
	)

	return domain.NewSuccessResponse(req.TotalAmount, totalDiscount, finalAmount)
}

func (s *TransactionService) fail(message, reason string) *domain.TransactionResponse {
	s.logger.Warn("transaction validation failed", "reason", reason, "result_message", message)
	return domain.NewFailureResponse(message)
}
