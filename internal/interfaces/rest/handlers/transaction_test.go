package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgpay/transaction-gateway/internal/application/services"
	"github.com/fgpay/transaction-gateway/internal/domain"
	"github.com/fgpay/transaction-gateway/internal/infrastructure/partner"
)

type stubProcessor struct {
	processFn func(ctx context.Context, req *domain.TransactionRequest) *domain.TransactionResponse
}

func (s *stubProcessor) Process(ctx context.Context, req *domain.TransactionRequest) *domain.TransactionResponse {
	return s.processFn(ctx, req)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postSubmit(t *testing.T, h *TransactionHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transaction/submittrxmessage", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	h.HandleSubmitTransaction(rr, req)
	return rr
}

func TestHandleSubmitTransaction_Success(t *testing.T) {
	stub := &stubProcessor{
		processFn: func(_ context.Context, req *domain.TransactionRequest) *domain.TransactionResponse {
			return domain.NewSuccessResponse(req.TotalAmount, 10000, req.TotalAmount-10000)
		},
	}
	h := NewTransactionHandler(stub, testLogger())

	body, err := json.Marshal(domain.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "FG-00001",
		PartnerPassword: "RkFLRVBBU1NXT1JEMTIzNA==",
		TotalAmount:     100000,
		Timestamp:       "2025-01-01T12:00:00.0000000Z",
		Sig:             "irrelevant-for-stub",
	})
	require.NoError(t, err)

	rr := postSubmit(t, h, body)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, domain.ResultSuccess, resp.Result)
	assert.Equal(t, int64(100000), resp.TotalAmount)
	assert.Equal(t, int64(10000), resp.TotalDiscount)
	assert.Equal(t, int64(90000), resp.FinalAmount)
}

func TestHandleSubmitTransaction_FailureOutcomeStillHTTP200(t *testing.T) {
	stub := &stubProcessor{
		processFn: func(_ context.Context, _ *domain.TransactionRequest) *domain.TransactionResponse {
			return domain.NewFailureResponse(services.MsgAccessDenied)
		},
	}
	h := NewTransactionHandler(stub, testLogger())

	rr := postSubmit(t, h, []byte(`{"partnerRefNo":"FG-00001"}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, domain.ResultFailure, resp.Result)
	assert.Equal(t, services.MsgAccessDenied, resp.ResultMessage)
}

func TestHandleSubmitTransaction_MalformedBody(t *testing.T) {
	h := NewTransactionHandler(&stubProcessor{}, testLogger())

	rr := postSubmit(t, h, []byte(`{not json`))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrCodeMalformedRequest, resp.Error.Code)
}

func TestHandleSubmitTransaction_FieldCapViolation(t *testing.T) {
	h := NewTransactionHandler(&stubProcessor{}, testLogger())

	oversized := strings.Repeat("K", 51)
	body, err := json.Marshal(domain.TransactionRequest{
		PartnerKey:   oversized,
		PartnerRefNo: "FG-00001",
	})
	require.NoError(t, err)

	rr := postSubmit(t, h, body)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrCodeValidation, resp.Error.Code)
}

// End to end through the real pipeline with the static directory.
func TestHandleSubmitTransaction_FullPipeline(t *testing.T) {
	directory := partner.NewStaticDirectory(map[string]string{
		"FG-00001": "FAKEPASSWORD1234",
	})
	svc := services.NewTransactionService(directory, 5*time.Minute, testLogger())
	h := NewTransactionHandler(svc, testLogger())

	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.0000000Z07:00")
	sig, err := domain.Sign(timestamp, "FAKEGOOGLE", "FG-00001", 100000, "RkFLRVBBU1NXT1JEMTIzNA==")
	require.NoError(t, err)

	body, err := json.Marshal(domain.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "FG-00001",
		PartnerPassword: "RkFLRVBBU1NXT1JEMTIzNA==",
		TotalAmount:     100000,
		Items: []domain.ItemDetail{
			{PartnerItemRef: "i-00001", Name: "Pen", Qty: 4, UnitPrice: 20000},
			{PartnerItemRef: "i-00002", Name: "Ruler", Qty: 2, UnitPrice: 10000},
		},
		Timestamp: timestamp,
		Sig:       sig,
	})
	require.NoError(t, err)

	rr := postSubmit(t, h, body)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, domain.ResultSuccess, resp.Result)
	assert.Equal(t, int64(90000), resp.FinalAmount)
}

func TestHandleHealth(t *testing.T) {
	h := NewTransactionHandler(&stubProcessor{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.HandleHealth(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["ok"])
}
