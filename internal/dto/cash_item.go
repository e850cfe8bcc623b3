package dto

import (
	"time"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CreateCashItemRequest defines the data needed to register a denomination.
type CreateCashItemRequest struct {
	CashType string `json:"cashType" binding:"required,oneof=COIN NOTE"`
	Value    int64  `json:"value" binding:"required,gt=0"`
}

// CashItemResponse defines the data returned for a denomination.
type CashItemResponse struct {
	CashItemID    string    `json:"cashItemID"`
	CashType      string    `json:"cashType"`
	Value         int64     `json:"value"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCashItemResponse converts a domain.CashItem to CashItemResponse DTO.
func ToCashItemResponse(item *domain.CashItem) CashItemResponse {
	return CashItemResponse{
		CashItemID:    item.CashItemID,
		CashType:      string(item.CashType),
		Value:         item.Value,
		CreatedAt:     item.CreatedAt,
		CreatedBy:     item.CreatedBy,
		LastUpdatedAt: item.LastUpdatedAt,
		LastUpdatedBy: item.LastUpdatedBy,
	}
}

// ToListCashItemResponse converts a slice of domain.CashItem to DTOs.
func ToListCashItemResponse(items []domain.CashItem) []CashItemResponse {
	res := make([]CashItemResponse, len(items))
	for i, item := range items {
		res[i] = ToCashItemResponse(&item)
	}
	return res
}
