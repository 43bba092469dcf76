package model

// Transaction types. Membership is not enforced on create; the store accepts
// whatever the client sends, and aggregation only recognizes these two.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Transaction is a single income or expense record. The ID is assigned by the
// store on insert and is immutable afterwards.
type Transaction struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Amount      Amount `json:"amount"`
	Description string `json:"description"`
	Date        Date   `json:"date"`
}
