package domain

// TransactionType indicates whether stock entered or left the drawer.
type TransactionType string

const (
	Inflow  TransactionType = "INFLOW"
	Outflow TransactionType = "OUTFLOW"
)

// CashRegister is one append-only movement of stock for a denomination.
// Amount is stored redundantly (quantity * face value at creation time) for
// audit purposes. Rows are never updated or deleted; the current stock of a
// denomination is always derived from the full log.
type CashRegister struct {
	CashRegisterID  string          `json:"cashRegisterID"`
	CashItemID      string          `json:"cashItemID"`
	Quantity        int64           `json:"quantity"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	AuditFields
}

// RegisterSum is a pre-grouped aggregate of the register log: total quantity
// per (cash item, transaction type) pair.
type RegisterSum struct {
	CashItemID      string
	TransactionType TransactionType
	Quantity        int64
}

// RegisterBalance is one row of the drawer balance view: a denomination
// joined with its derived stock. Denominations with no movements appear with
// zero quantity.
type RegisterBalance struct {
	CashItemID string   `json:"cashItemID"`
	CashType   CashType `json:"cashType"`
	Value      int64    `json:"value"`
	Quantity   int64    `json:"quantity"`
	Amount     int64    `json:"amount"` // quantity * value
}

// ChangeDetail is one denomination selected for the change of a payment:
// an OUTFLOW draft enriched with the face value for the caller's benefit.
type ChangeDetail struct {
	CashItemID      string          `json:"cashItemID"`
	Value           int64           `json:"value"`
	Quantity        int64           `json:"quantity"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
}
