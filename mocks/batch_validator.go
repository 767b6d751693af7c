package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crewledger/crewpay-backend/models"
)

type BatchValidator struct {
	mock.Mock
}

func (m *BatchValidator) ValidateMany(
	ctx context.Context,
	candidates []models.CandidateClaim,
	trip models.Trip,
) ([]models.CandidateVerdict, models.BatchStats) {
	args := m.Called(ctx, candidates, trip)
	var verdicts []models.CandidateVerdict
	if args.Get(0) != nil {
		verdicts = args.Get(0).([]models.CandidateVerdict)
	}
	return verdicts, args.Get(1).(models.BatchStats)
}
