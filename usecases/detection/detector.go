package detection

import (
	"math"

	"github.com/crewledger/crewpay-backend/models"
)

// Tariff constants. These mirror the fixed contract rates the detectors pay
// against; they are not configurable at runtime.
const (
	checkInOffsetHours  = 1.0
	checkOutOffsetHours = 0.5

	domesticPerDiemHourlyRate      = 2.40
	internationalPerDiemHourlyRate = 3.25
	perDiemMinimumAmount           = 10.0

	internationalOverrideHourlyRate     = 3.25
	internationalOverrideMinimumPayment = 125.0

	extendedDutyBaseHourlyRate = 50.0

	holidayPremiumHourlyRate = 50.0
	holidayPremiumMultiplier = 1.0
)

// Detector inspects one completed trip and proposes at most one candidate
// claim. Implementations are pure: same trip in, same candidate out, and a
// nil result means "no entitlement found" rather than an error.
type Detector interface {
	Name() string
	Detect(trip models.Trip) *models.CandidateClaim
}

// dutyPeriodHours derives the time away from base from the scheduled block,
// padded with the fixed check-in/check-out offsets. A negative interval means
// the arrival crossed midnight, so a day is added.
func dutyPeriodHours(trip models.Trip) float64 {
	hours := trip.ScheduledArrival.Sub(trip.ScheduledDeparture).Hours()
	if hours < 0 {
		hours += 24
	}
	return hours + checkInOffsetHours + checkOutOffsetHours
}

func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
