// file: model/request.go

package model

// CreateTransactionRequest defines the payload for recording a new movement.
// All four fields are required; nothing beyond presence is validated here.
// Amount sign, type membership and date range are accepted as-is and passed
// through to the store.
type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required"`
	Amount      *Amount `json:"amount" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Date        *Date   `json:"date" validate:"required"`
}

// Missing reports whether any required field is absent or empty. Zero counts
// as missing for the amount, and the zero date likewise, matching what the
// API has always rejected.
func (r CreateTransactionRequest) Missing() bool {
	return r.Type == "" ||
		r.Amount == nil || *r.Amount == 0 ||
		r.Description == "" ||
		r.Date == nil || r.Date.IsZero()
}
