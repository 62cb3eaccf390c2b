// Package domain defines the partner transaction models and the pure
// pricing/signature functions that operate on them.
package domain

// TransactionRequest is a partner-submitted transaction message. Field-level
// size caps are enforced at the REST layer; the validation pipeline re-checks
// emptiness and arithmetic itself and must not assume the fields are
// well-formed.
type TransactionRequest struct {
	PartnerKey      string       `json:"partnerKey" validate:"omitempty,max=50"`
	PartnerRefNo    string       `json:"partnerRefNo" validate:"omitempty,max=50"`
	PartnerPassword string       `json:"partnerPassword" validate:"omitempty,max=50"`
	TotalAmount     int64        `json:"totalAmount"`
	Items           []ItemDetail `json:"items" validate:"omitempty,dive"`
	Timestamp       string       `json:"timestamp"`
	Sig             string       `json:"sig"`
}

// ItemDetail is one line item. Items have no identity beyond their position
// in the request.
type ItemDetail struct {
	PartnerItemRef string `json:"partnerItemRef" validate:"omitempty,max=50"`
	Name           string `json:"name" validate:"omitempty,max=100"`
	Qty            int    `json:"qty" validate:"max=5"`
	UnitPrice      int64  `json:"unitPrice"`
}

// Result codes for TransactionResponse.
const (
	ResultFailure = 0
	ResultSuccess = 1
)

// TransactionResponse is the uniform reply for every outcome. The monetary
// fields are only meaningful when Result is ResultSuccess.
type TransactionResponse struct {
	Result        int    `json:"result"`
	ResultMessage string `json:"resultMessage"`
	TotalAmount   int64  `json:"totalAmount,omitempty"`
	TotalDiscount int64  `json:"totalDiscount,omitempty"`
	FinalAmount   int64  `json:"finalAmount,omitempty"`
}

// NewFailureResponse builds a failed response carrying only the message.
func NewFailureResponse(message string) *TransactionResponse {
	return &TransactionResponse{
		Result:        ResultFailure,
		ResultMessage: message,
	}
}

// NewSuccessResponse builds a successful, fully priced response.
func NewSuccessResponse(totalAmount, totalDiscount, finalAmount int64) *TransactionResponse {
	return &TransactionResponse{
		Result:        ResultSuccess,
		ResultMessage: "Success",
		TotalAmount:   totalAmount,
		TotalDiscount: totalDiscount,
		FinalAmount:   finalAmount,
	}
}
