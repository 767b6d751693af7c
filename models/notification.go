package models

import (
	"time"

	"github.com/google/uuid"
)

const NotificationTypeClaimAutoGenerated = "claim_auto_generated"

// Notification channels. Every claim event is addressed to the owning crew
// member's channel and to the administrative broadcast channel.
const (
	NotificationChannelAdminBroadcast = "admin:broadcast"
	notificationChannelCrewPrefix     = "crew:"
)

func NotificationChannelForCrewMember(crewMemberId uuid.UUID) string {
	return notificationChannelCrewPrefix + crewMemberId.String()
}

// NotificationEvent is emitted after a claim row is written. Emission is
// best-effort: a failed notification never fails claim creation.
type NotificationEvent struct {
	Type         string    `json:"type"`
	Claim        Claim     `json:"claim"`
	CrewMemberId uuid.UUID `json:"crew_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewClaimAutoGeneratedEvent(claim Claim, now time.Time) NotificationEvent {
	return NotificationEvent{
		Type:         NotificationTypeClaimAutoGenerated,
		Claim:        claim,
		CrewMemberId: claim.CrewMemberId,
		Status:       claim.Status.String(),
		Timestamp:    now,
	}
}
