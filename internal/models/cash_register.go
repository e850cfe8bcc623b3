package models

// CashRegister represents a row of the cash_registers table.
type CashRegister struct {
	CashRegisterID  string `db:"cash_register_id"`
	CashItemID      string `db:"cash_item_id"`
	Quantity        int64  `db:"quantity"`
	Amount          int64  `db:"amount"`
	TransactionType string `db:"transaction_type"`
	AuditFields
}
