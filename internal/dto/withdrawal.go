package dto

import "github.com/shopspring/decimal"

// CreateWithdrawalRequest defines the payload for posting a cash withdrawal.
type CreateWithdrawalRequest struct {
	MemberID string          `json:"memberID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Note     string          `json:"note"`
}

// UpdateWithdrawalRequest defines the correction payload for a posted withdrawal.
type UpdateWithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   *string         `json:"note"`
}

// WithdrawalReceipt is the submission surface's result: both generated
// identifiers plus the post-withdrawal balance for receipt display.
type WithdrawalReceipt struct {
	TransactionNumber string          `json:"transactionNumber"`
	TreasuryNumber    string          `json:"treasuryNumber"`
	TreasuryID        string          `json:"treasuryID"`
	MemberName        string          `json:"memberName"`
	Amount            decimal.Decimal `json:"amount"`
	RemainingBalance  decimal.Decimal `json:"remainingBalance"`
}
