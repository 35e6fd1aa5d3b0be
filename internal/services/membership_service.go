package services

import (
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

type MembershipService interface {
	Plans() (*dto.MembershipPlansResponse, error)
}

type MembershipServiceImpl struct {
	membershipRepo repositories.MembershipRepository
}

func NewMembershipService(membershipRepo repositories.MembershipRepository) MembershipService {
	return &MembershipServiceImpl{membershipRepo: membershipRepo}
}

// Plans lists the active membership catalog, cheapest first.
func (s *MembershipServiceImpl) Plans() (*dto.MembershipPlansResponse, error) {
	plans, err := s.membershipRepo.FindActivePlans()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.MembershipPlanDTO, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanDTO(&plans[i]))
	}
	return &dto.MembershipPlansResponse{Plans: out}, nil
}
