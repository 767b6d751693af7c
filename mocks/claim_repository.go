package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories"
)

type ClaimRepository struct {
	mock.Mock
}

func (m *ClaimRepository) InsertClaim(
	ctx context.Context,
	exec repositories.Executor,
	input models.ClaimCreate,
) (models.Claim, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Claim), args.Error(1)
}

func (m *ClaimRepository) GetClaimById(
	ctx context.Context,
	exec repositories.Executor,
	claimId string,
) (models.Claim, error) {
	args := m.Called(ctx, exec, claimId)
	return args.Get(0).(models.Claim), args.Error(1)
}

func (m *ClaimRepository) CountAutoGeneratedClaimsForTrip(
	ctx context.Context,
	exec repositories.Executor,
	tripId uuid.UUID,
) (int, error) {
	args := m.Called(ctx, exec, tripId)
	return args.Int(0), args.Error(1)
}
