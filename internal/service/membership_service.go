package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// MembershipService handles membership records, keyed by account name.
type MembershipService struct {
	membershipRepo *repository.MembershipRepository
}

// NewMembershipService creates a new MembershipService with the provided repository dependencies.
func NewMembershipService(membershipRepo *repository.MembershipRepository) *MembershipService {
	return &MembershipService{membershipRepo: membershipRepo}
}

// Get retrieves the membership record for an account.
func (s *MembershipService) Get(ctx context.Context, accountName string) (model.Membership, error) {
	return s.membershipRepo.GetByAccountName(ctx, accountName)
}

// Set creates or replaces the membership record for an account.
func (s *MembershipService) Set(ctx context.Context, req request.MembershipRequest) (model.Membership, error) {
	m := model.Membership{
		ID:          uuid.New().String(),
		AccountName: req.AccountName,
		Status:      req.Status,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return model.Membership{}, err
		}
		m.EndDate = &endDate
	}

	if err := s.membershipRepo.Upsert(ctx, &m); err != nil {
		return model.Membership{}, err
	}

	return s.membershipRepo.GetByAccountName(ctx, req.AccountName)
}
