package dto

import (
	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CreateCashRegisterRequest defines one requested movement of drawer stock.
type CreateCashRegisterRequest struct {
	CashItemID      string `json:"cashItemID" binding:"required"`
	Quantity        int64  `json:"quantity" binding:"required,gt=0"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	TransactionType string `json:"transactionType" binding:"required,oneof=INFLOW OUTFLOW"`
}

// CreateCashRegisterBatchResponse reports how many rows a batch inserted.
type CreateCashRegisterBatchResponse struct {
	Count int64 `json:"count"`
}

// CreateInflowRegisterRequest is a register request restricted to INFLOW,
// used for the payment deposited alongside a change computation.
type CreateInflowRegisterRequest struct {
	CashItemID      string `json:"cashItemID" binding:"required"`
	Quantity        int64  `json:"quantity" binding:"required,gt=0"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	TransactionType string `json:"transactionType" binding:"required,oneof=INFLOW"`
}

// CreateChangeRequest defines a payment for which change must be computed.
// The inflow rows are persisted together with the change given out.
type CreateChangeRequest struct {
	TotalPrice   int64                         `json:"totalPrice" binding:"required,gt=0"`
	TotalPaid    int64                         `json:"totalPaid" binding:"required,gt=0"`
	CashRegister []CreateInflowRegisterRequest `json:"cashRegister" binding:"omitempty,dive"`
}

// RegisterBalanceResponse is one row of the drawer balance view.
type RegisterBalanceResponse struct {
	CashItemID string `json:"cashItemID"`
	CashType   string `json:"cashType"`
	Value      int64  `json:"value"`
	Quantity   int64  `json:"quantity"`
	Amount     int64  `json:"amount"`
}

// ToRegisterBalanceResponse converts a domain.RegisterBalance to its DTO.
func ToRegisterBalanceResponse(rb domain.RegisterBalance) RegisterBalanceResponse {
	return RegisterBalanceResponse{
		CashItemID: rb.CashItemID,
		CashType:   string(rb.CashType),
		Value:      rb.Value,
		Quantity:   rb.Quantity,
		Amount:     rb.Amount,
	}
}

// ToListRegisterBalanceResponse converts a balance view slice to DTOs.
func ToListRegisterBalanceResponse(rbs []domain.RegisterBalance) []RegisterBalanceResponse {
	res := make([]RegisterBalanceResponse, len(rbs))
	for i, rb := range rbs {
		res[i] = ToRegisterBalanceResponse(rb)
	}
	return res
}

// ChangeDetailResponse is one denomination handed back as change.
type ChangeDetailResponse struct {
	CashItemID      string `json:"cashItemID"`
	Value           int64  `json:"value"`
	Quantity        int64  `json:"quantity"`
	Amount          int64  `json:"amount"`
	TransactionType string `json:"transactionType"`
}

// ToListChangeDetailResponse converts change details to DTOs.
func ToListChangeDetailResponse(details []domain.ChangeDetail) []ChangeDetailResponse {
	res := make([]ChangeDetailResponse, len(details))
	for i, d := range details {
		res[i] = ChangeDetailResponse{
			CashItemID:      d.CashItemID,
			Value:           d.Value,
			Quantity:        d.Quantity,
			Amount:          d.Amount,
			TransactionType: string(d.TransactionType),
		}
	}
	return res
}
