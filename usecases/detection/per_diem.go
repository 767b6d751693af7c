package detection

import (
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
)

// PerDiemDetector pays an hourly allowance for the whole time away from
// base, at the domestic or international rate. Claims below the minimum
// amount are suppressed as immaterial.
type PerDiemDetector struct{}

func (d PerDiemDetector) Name() string {
	return "per_diem_tafb"
}

func (d PerDiemDetector) Detect(trip models.Trip) *models.CandidateClaim {
	tafbHours := dutyPeriodHours(trip)

	rate := domesticPerDiemHourlyRate
	scope := "domestic"
	if trip.IsInternational {
		rate = internationalPerDiemHourlyRate
		scope = "international"
	}

	amount := roundToCents(tafbHours * rate)
	if amount < perDiemMinimumAmount {
		return nil
	}

	return &models.CandidateClaim{
		CrewMemberId:    trip.CrewMemberId,
		EntitlementType: models.EntitlementPerDiem,
		TripId:          trip.Id,
		Amount:          amount,
		Description: fmt.Sprintf("Per diem for trip %s: %.1fh away from base (%s rate $%.2f/h)",
			trip.TripNumber, tafbHours, scope, rate),
		DetectionMethod: d.Name(),
		PriorConfidence: 92,
		Evidence: map[string]any{
			"tafb_hours":  tafbHours,
			"hourly_rate": rate,
			"scope":       scope,
		},
	}
}
