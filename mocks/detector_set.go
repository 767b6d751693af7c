package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crewledger/crewpay-backend/models"
)

type DetectorSet struct {
	mock.Mock
}

func (m *DetectorSet) DetectAll(ctx context.Context, trip models.Trip) []models.CandidateClaim {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.CandidateClaim)
}
