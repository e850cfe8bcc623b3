package models

// CashItem represents a row of the cash_items table.
type CashItem struct {
	CashItemID string `db:"cash_item_id"`
	CashType   string `db:"cash_type"`
	Value      int64  `db:"value"`
	AuditFields
}
