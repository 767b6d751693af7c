package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crewledger/crewpay-backend/models"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) SendNotificationEvent(
	ctx context.Context,
	channel string,
	event models.NotificationEvent,
) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}
