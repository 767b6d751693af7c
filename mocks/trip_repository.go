package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories"
)

type TripRepository struct {
	mock.Mock
}

func (m *TripRepository) ListUnprocessedCompletedTrips(
	ctx context.Context,
	exec repositories.Executor,
	since time.Time,
) ([]models.Trip, error) {
	args := m.Called(ctx, exec, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *TripRepository) GetTripById(
	ctx context.Context,
	exec repositories.Executor,
	tripId uuid.UUID,
) (models.Trip, error) {
	args := m.Called(ctx, exec, tripId)
	return args.Get(0).(models.Trip), args.Error(1)
}
