package detection

import (
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
)

// InternationalOverrideDetector pays flight time at the international
// override rate, floored at the contractual minimum payment. It only fires
// on trips flagged international.
type InternationalOverrideDetector struct{}

func (d InternationalOverrideDetector) Name() string {
	return "international_override"
}

func (d InternationalOverrideDetector) Detect(trip models.Trip) *models.CandidateClaim {
	if !trip.IsInternational {
		return nil
	}

	amount := roundToCents(trip.FlightTimeHours * internationalOverrideHourlyRate)
	if amount < internationalOverrideMinimumPayment {
		amount = internationalOverrideMinimumPayment
	}

	return &models.CandidateClaim{
		CrewMemberId:    trip.CrewMemberId,
		EntitlementType: models.EntitlementInternationalOverride,
		TripId:          trip.Id,
		Amount:          amount,
		Description: fmt.Sprintf("International override for trip %s: %.1f flight hours at $%.2f/h (minimum $%.2f)",
			trip.TripNumber, trip.FlightTimeHours, internationalOverrideHourlyRate, internationalOverrideMinimumPayment),
		DetectionMethod: d.Name(),
		PriorConfidence: 97,
		Evidence: map[string]any{
			"flight_time_hours": trip.FlightTimeHours,
			"hourly_rate":       internationalOverrideHourlyRate,
			"minimum_payment":   internationalOverrideMinimumPayment,
		},
	}
}
