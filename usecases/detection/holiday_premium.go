package detection

import (
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
)

// Fixed holiday calendar, keyed by date in YYYY-MM-DD.
var holidayCalendar = map[string]string{
	"2025-01-01": "New Year's Day",
	"2025-05-26": "Memorial Day",
	"2025-07-04": "Independence Day",
	"2025-09-01": "Labor Day",
	"2025-11-27": "Thanksgiving",
	"2025-12-25": "Christmas",
	"2026-01-01": "New Year's Day",
	"2026-05-25": "Memorial Day",
	"2026-07-04": "Independence Day",
	"2026-09-07": "Labor Day",
	"2026-11-26": "Thanksgiving",
	"2026-12-25": "Christmas",
}

// HolidayPremiumDetector pays flight time at a 100% premium on contractual
// holidays, matched by exact date.
type HolidayPremiumDetector struct{}

func (d HolidayPremiumDetector) Name() string {
	return "holiday_calendar"
}

func (d HolidayPremiumDetector) Detect(trip models.Trip) *models.CandidateClaim {
	holiday, ok := holidayCalendar[trip.Date.Format("2006-01-02")]
	if !ok {
		return nil
	}

	amount := roundToCents(trip.FlightTimeHours * holidayPremiumHourlyRate * holidayPremiumMultiplier)
	if amount <= 0 {
		return nil
	}

	return &models.CandidateClaim{
		CrewMemberId:    trip.CrewMemberId,
		EntitlementType: models.EntitlementHolidayPremium,
		TripId:          trip.Id,
		Amount:          amount,
		Description: fmt.Sprintf("Holiday premium for trip %s flown on %s: %.1f flight hours at 100%% premium",
			trip.TripNumber, holiday, trip.FlightTimeHours),
		DetectionMethod: d.Name(),
		PriorConfidence: 99,
		Evidence: map[string]any{
			"holiday":           holiday,
			"flight_time_hours": trip.FlightTimeHours,
			"hourly_rate":       holidayPremiumHourlyRate,
			"premium":           holidayPremiumMultiplier,
		},
	}
}
