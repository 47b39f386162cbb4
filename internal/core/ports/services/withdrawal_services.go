package services

import (
	"context"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// WithdrawalSvcFacade defines the withdrawal processor's operations.
type WithdrawalSvcFacade interface {
	// PostWithdrawal debits a member's balance and posts the linked treasury
	// record and ledger entry atomically.
	PostWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, adminID string) (*dto.WithdrawalReceipt, error)

	// UpdateWithdrawal corrects a posted withdrawal's amount, validating the
	// new amount against the balance as if the original were first undone.
	UpdateWithdrawal(ctx context.Context, treasuryID string, req dto.UpdateWithdrawalRequest, adminID string) (*dto.WithdrawalReceipt, error)

	// DeleteWithdrawal reverses and removes a posted withdrawal.
	DeleteWithdrawal(ctx context.Context, treasuryID string, adminID string) error
}
