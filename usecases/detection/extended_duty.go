package detection

import (
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
)

type extendedDutyThreshold struct {
	hours      float64
	label      string
	multiplier float64
}

// Ordered longest first: the highest exceeded threshold wins.
var extendedDutyThresholds = []extendedDutyThreshold{
	{hours: 16.0, label: "16:00", multiplier: 3.0},
	{hours: 12.5, label: "12:30", multiplier: 2.0},
}

// ExtendedDutyDetector pays the duty hours in excess of the exceeded
// threshold at a premium multiple of the base rate.
type ExtendedDutyDetector struct{}

func (d ExtendedDutyDetector) Name() string {
	return "extended_duty_threshold"
}

func (d ExtendedDutyDetector) Detect(trip models.Trip) *models.CandidateClaim {
	dutyHours := dutyPeriodHours(trip)

	for _, threshold := range extendedDutyThresholds {
		if dutyHours <= threshold.hours {
			continue
		}

		iropHours := dutyHours - threshold.hours
		amount := roundToCents(iropHours * extendedDutyBaseHourlyRate * threshold.multiplier)

		return &models.CandidateClaim{
			CrewMemberId:    trip.CrewMemberId,
			EntitlementType: models.EntitlementExtendedDutyPremium,
			TripId:          trip.Id,
			Amount:          amount,
			Description: fmt.Sprintf("Extended duty premium for trip %s: %.1fh duty exceeded the %s threshold by %.1fh (x%.1f)",
				trip.TripNumber, dutyHours, threshold.label, iropHours, threshold.multiplier),
			DetectionMethod: d.Name(),
			PriorConfidence: 88,
			Evidence: map[string]any{
				"duty_hours":      dutyHours,
				"threshold":       threshold.label,
				"threshold_hours": threshold.hours,
				"irop_hours":      iropHours,
				"multiplier":      threshold.multiplier,
				"base_rate":       extendedDutyBaseHourlyRate,
			},
		}
	}

	return nil
}
