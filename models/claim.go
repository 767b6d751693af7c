package models

import (
	"time"

	"github.com/google/uuid"
)

type EntitlementType int

const (
	EntitlementPerDiem EntitlementType = iota
	EntitlementInternationalOverride
	EntitlementExtendedDutyPremium
	EntitlementHolidayPremium
	EntitlementUnknown
)

var ValidEntitlementTypes = []EntitlementType{
	EntitlementPerDiem,
	EntitlementInternationalOverride,
	EntitlementExtendedDutyPremium,
	EntitlementHolidayPremium,
}

func (t EntitlementType) String() string {
	switch t {
	case EntitlementPerDiem:
		return "per_diem"
	case EntitlementInternationalOverride:
		return "international_override"
	case EntitlementExtendedDutyPremium:
		return "extended_duty_premium"
	case EntitlementHolidayPremium:
		return "holiday_premium"
	}
	return "unknown"
}

func EntitlementTypeFrom(s string) EntitlementType {
	switch s {
	case "per_diem":
		return EntitlementPerDiem
	case "international_override":
		return EntitlementInternationalOverride
	case "extended_duty_premium":
		return EntitlementExtendedDutyPremium
	case "holiday_premium":
		return EntitlementHolidayPremium
	}
	return EntitlementUnknown
}

type ClaimStatus int

const (
	ClaimStatusApproved ClaimStatus = iota
	ClaimStatusPending
	ClaimStatusRejected
	ClaimStatusUnknown
)

func (s ClaimStatus) String() string {
	switch s {
	case ClaimStatusApproved:
		return "approved"
	case ClaimStatusPending:
		return "pending"
	case ClaimStatusRejected:
		return "rejected"
	}
	return "unknown"
}

func ClaimStatusFrom(s string) ClaimStatus {
	switch s {
	case "approved":
		return ClaimStatusApproved
	case "pending":
		return ClaimStatusPending
	case "rejected":
		return ClaimStatusRejected
	}
	return ClaimStatusUnknown
}

// CandidateClaim is a detector-proposed entitlement. It is never mutated
// after creation and is consumed exactly once by the validator.
type CandidateClaim struct {
	CrewMemberId    uuid.UUID
	EntitlementType EntitlementType
	TripId          uuid.UUID
	Amount          float64
	Description     string
	DetectionMethod string
	PriorConfidence int

	// Evidence carries the numeric inputs used to compute the amount, for
	// auditability. Keys are detector-specific.
	Evidence map[string]any
}

// Claim is the durable record written once a candidate and its verdict have
// been resolved. The (trip, entitlement type) pair is never re-created: the
// discovery predicate excludes trips that already carry an auto-generated
// claim.
type Claim struct {
	Id                   string
	CrewMemberId         uuid.UUID
	TripId               uuid.UUID
	EntitlementType      EntitlementType
	Amount               float64
	Description          string
	Status               ClaimStatus
	AutoGenerated        bool
	DetectionMethod      string
	ValidationConfidence int
	ValidationReasoning  string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type ClaimCreate struct {
	Id                   string
	CrewMemberId         uuid.UUID
	TripId               uuid.UUID
	EntitlementType      EntitlementType
	Amount               float64
	Description          string
	Status               ClaimStatus
	AutoGenerated        bool
	DetectionMethod      string
	ValidationConfidence int
	ValidationReasoning  string
}
