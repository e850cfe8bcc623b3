package domain

// CashType distinguishes coins from notes.
type CashType string

const (
	Coin CashType = "COIN"
	Note CashType = "NOTE"
)

// CashItem is a single denomination of the drawer: a coin or note of a
// distinct face value. Face values are unique across all cash items and a
// cash item is never mutated or deleted after creation.
type CashItem struct {
	CashItemID string   `json:"cashItemID"`
	CashType   CashType `json:"cashType"`
	Value      int64    `json:"value"` // face value in cents
	AuditFields
}
