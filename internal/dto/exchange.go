package dto

import "github.com/shopspring/decimal"

// ExchangePointsRequest defines the payload for converting points to balance.
type ExchangePointsRequest struct {
	MemberID string `json:"memberID" binding:"required"`
	Points   int64  `json:"points" binding:"required,gt=0"`
}

// ExchangeReceipt is the point exchange surface's result. Message embeds the
// converted currency value for display.
type ExchangeReceipt struct {
	TransactionNumber string          `json:"transactionNumber"`
	PointsExchanged   int64           `json:"pointsExchanged"`
	ExchangeValue     decimal.Decimal `json:"exchangeValue"`
	RemainingPoints   int64           `json:"remainingPoints"`
	NewBalance        decimal.Decimal `json:"newBalance"`
	Message           string          `json:"message"`
}
