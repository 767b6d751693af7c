package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/crewledger/crewpay-backend/models"
)

const (
	pushNotificationAttempts = 3
	pushNotificationTimeout  = 5 * time.Second
)

// PushNotificationRepository delivers claim events to the real-time push
// gateway, one POST per logical channel. Delivery is best-effort: the caller
// decides whether a failure matters (the pipeline logs and moves on).
type PushNotificationRepository struct {
	gatewayUrl string
	client     *http.Client
}

func NewPushNotificationRepository(gatewayUrl string) *PushNotificationRepository {
	return &PushNotificationRepository{
		gatewayUrl: gatewayUrl,
		client:     &http.Client{Timeout: pushNotificationTimeout},
	}
}

func (r *PushNotificationRepository) SendNotificationEvent(
	ctx context.Context,
	channel string,
	event models.NotificationEvent,
) error {
	if r.gatewayUrl == "" {
		// no gateway configured, notifications are disabled
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "could not marshal notification event")
	}

	url := fmt.Sprintf("%s/channels/%s/events", r.gatewayUrl, channel)

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := r.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 400 {
				return errors.Newf("notification gateway returned status %d", resp.StatusCode)
			}
			return nil
		},
		retry.Attempts(pushNotificationAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}
