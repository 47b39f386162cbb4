package services

import (
	"context"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// MemberReaderSvc defines read operations for member data
type MemberReaderSvc interface {
	// GetMemberByID retrieves a specific member by its ID.
	GetMemberByID(ctx context.Context, memberID string) (*dto.MemberResponse, error)

	// ListMembers retrieves a paginated list of active members.
	ListMembers(ctx context.Context, limit int, offset int) ([]dto.MemberResponse, error)
}

// MemberWriterSvc defines write operations for member data
type MemberWriterSvc interface {
	// CreateMember onboards a member with a generated member number and
	// zeroed aggregates.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, adminID string) (*dto.MemberResponse, error)

	// UpdateMember updates a member's profile fields.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, adminID string) (*dto.MemberResponse, error)

	// DeactivateMember marks a member as inactive; history is retained.
	DeactivateMember(ctx context.Context, memberID string, adminID string) error
}

// MemberSvcFacade combines all member service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
