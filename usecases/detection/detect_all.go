package detection

import (
	"context"
	"fmt"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/utils"
)

// DetectorSet runs every registered detector over one trip. A panicking
// detector is isolated: it is logged and skipped, the others still run, and
// the caller always gets back a slice (possibly empty), never an error.
type DetectorSet struct {
	detectors []Detector
}

func NewDetectorSet() DetectorSet {
	return DetectorSet{
		detectors: []Detector{
			PerDiemDetector{},
			InternationalOverrideDetector{},
			ExtendedDutyDetector{},
			HolidayPremiumDetector{},
		},
	}
}

func (s DetectorSet) DetectAll(ctx context.Context, trip models.Trip) []models.CandidateClaim {
	logger := utils.LoggerFromContext(ctx)

	candidates := make([]models.CandidateClaim, 0, len(s.detectors))
	for _, detector := range s.detectors {
		candidate := func() (candidate *models.CandidateClaim) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, fmt.Sprintf("detector %s panicked on trip %s: %v",
						detector.Name(), trip.Id, r))
					candidate = nil
				}
			}()
			return detector.Detect(trip)
		}()

		if candidate != nil {
			candidates = append(candidates, *candidate)
		}
	}
	return candidates
}
