package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/crewledger/crewpay-backend/mocks"
	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/usecases/executor_factory"
)

var fixedNow = time.Date(2025, 12, 26, 8, 0, 0, 0, time.UTC)

type monitorFixture struct {
	tripRepo  *mocks.TripRepository
	claimRepo *mocks.ClaimRepository
	detectors *mocks.DetectorSet
	validator *mocks.BatchValidator
	notifier  *mocks.Notifier
	monitor   CompletionMonitor
}

func newMonitorFixture() monitorFixture {
	f := monitorFixture{
		tripRepo:  new(mocks.TripRepository),
		claimRepo: new(mocks.ClaimRepository),
		detectors: new(mocks.DetectorSet),
		validator: new(mocks.BatchValidator),
		notifier:  new(mocks.Notifier),
	}
	f.monitor = NewCompletionMonitor(
		executor_factory.NewExecutorFactoryStub(nil),
		f.tripRepo,
		f.claimRepo,
		f.detectors,
		f.validator,
		f.notifier,
		func() time.Time { return fixedNow },
	)
	return f
}

func testTrip() models.Trip {
	return models.Trip{
		Id:           uuid.New(),
		TripNumber:   "UA1234",
		CrewMemberId: uuid.New(),
		Status:       models.TripStatusCompleted,
	}
}

func testCandidate(trip models.Trip, amount float64) models.CandidateClaim {
	return models.CandidateClaim{
		CrewMemberId:    trip.CrewMemberId,
		EntitlementType: models.EntitlementPerDiem,
		TripId:          trip.Id,
		Amount:          amount,
		DetectionMethod: "per_diem_tafb",
		PriorConfidence: 92,
	}
}

func insertedClaim(input models.ClaimCreate) models.Claim {
	return models.Claim{
		Id:                   input.Id,
		CrewMemberId:         input.CrewMemberId,
		TripId:               input.TripId,
		EntitlementType:      input.EntitlementType,
		Amount:               input.Amount,
		Status:               input.Status,
		AutoGenerated:        input.AutoGenerated,
		DetectionMethod:      input.DetectionMethod,
		ValidationConfidence: input.ValidationConfidence,
		ValidationReasoning:  input.ValidationReasoning,
		CreatedAt:            fixedNow,
		UpdatedAt:            fixedNow,
	}
}

func TestProcessCompletedTrips_fullRun(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()
	approved := testCandidate(trip, 240.0)
	reviewed := testCandidate(trip, 1200.0)

	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, fixedNow.Add(-discoveryWindow)).
		Return([]models.Trip{trip}, nil)
	f.detectors.On("DetectAll", mock.Anything, trip).
		Return([]models.CandidateClaim{approved, reviewed})
	f.validator.On("ValidateMany", mock.Anything, []models.CandidateClaim{approved, reviewed}, trip).
		Return([]models.CandidateVerdict{
			{Candidate: approved, Verdict: models.Verdict{
				Valid: true, Confidence: 97, Recommendation: models.RecommendationAutoApprove,
			}},
			{Candidate: reviewed, Verdict: models.Verdict{
				Valid: true, Confidence: 85, Recommendation: models.RecommendationManualReview,
			}},
		}, models.BatchStats{Total: 2, Valid: 2, AutoApproved: 1, MeanConfidence: 91})

	var inserted []models.ClaimCreate
	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = append(inserted, args.Get(2).(models.ClaimCreate))
		}).
		Return(models.Claim{CrewMemberId: trip.CrewMemberId, Amount: 240.0, Status: models.ClaimStatusApproved}, nil).
		Once()
	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = append(inserted, args.Get(2).(models.ClaimCreate))
		}).
		Return(models.Claim{CrewMemberId: trip.CrewMemberId, Amount: 1200.0, Status: models.ClaimStatusPending}, nil).
		Once()
	f.notifier.On("SendNotificationEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 1, result.TripsProcessed)
	assert.Equal(t, 2, result.ClaimsDetected)
	assert.Equal(t, 1, result.ClaimsApproved)
	assert.Equal(t, 1, result.ClaimsReview)
	assert.Equal(t, 0, result.ClaimsRejected)
	assert.Equal(t, 240.0, result.TotalApprovedAmount)
	assert.Empty(t, result.Errors)
	assert.Equal(t, fixedNow, result.StartedAt)

	assert.Len(t, inserted, 2)
	assert.Equal(t, models.ClaimStatusApproved, inserted[0].Status)
	assert.Equal(t, models.ClaimStatusPending, inserted[1].Status)
	for _, create := range inserted {
		assert.True(t, create.AutoGenerated)
		assert.True(t, strings.HasPrefix(create.Id, "CLM-"))
	}

	// two channels per created claim
	f.notifier.AssertNumberOfCalls(t, "SendNotificationEvent", 4)
}

func TestProcessCompletedTrips_discoveryFailureIsFatal(t *testing.T) {
	f := newMonitorFixture()
	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return(nil, errors.New("connection refused"))

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 0, result.TripsProcessed)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "trip discovery failed")
	f.detectors.AssertNotCalled(t, "DetectAll", mock.Anything, mock.Anything)
}

func TestProcessCompletedTrips_invalidVerdictLeavesNoRow(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()
	candidate := testCandidate(trip, 0)

	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return([]models.Trip{trip}, nil)
	f.detectors.On("DetectAll", mock.Anything, trip).
		Return([]models.CandidateClaim{candidate})
	f.validator.On("ValidateMany", mock.Anything, mock.Anything, trip).
		Return([]models.CandidateVerdict{
			{Candidate: candidate, Verdict: models.Verdict{
				Valid: false, Confidence: 0, Recommendation: models.RecommendationReject,
			}},
		}, models.BatchStats{Total: 1})

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 1, result.TripsProcessed)
	assert.Equal(t, 1, result.ClaimsRejected)
	f.claimRepo.AssertNotCalled(t, "InsertClaim", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendNotificationEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCompletedTrips_rejectedVerdictIsAudited(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()
	candidate := testCandidate(trip, 50)

	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return([]models.Trip{trip}, nil)
	f.detectors.On("DetectAll", mock.Anything, trip).
		Return([]models.CandidateClaim{candidate})
	f.validator.On("ValidateMany", mock.Anything, mock.Anything, trip).
		Return([]models.CandidateVerdict{
			{Candidate: candidate, Verdict: models.Verdict{
				Valid: true, Confidence: 40, Recommendation: models.RecommendationReject,
				Reasoning: "rate does not match the tariff",
			}},
		}, models.BatchStats{Total: 1, Valid: 1})

	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.MatchedBy(func(input models.ClaimCreate) bool {
		return input.Status == models.ClaimStatusRejected
	})).Return(insertedClaim(models.ClaimCreate{
		CrewMemberId: trip.CrewMemberId,
		Status:       models.ClaimStatusRejected,
		Amount:       50,
	}), nil)
	f.notifier.On("SendNotificationEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 1, result.ClaimsRejected)
	assert.Equal(t, 0, result.ClaimsApproved)
	assert.Equal(t, 0.0, result.TotalApprovedAmount)
	f.claimRepo.AssertExpectations(t)
}

func TestProcessCompletedTrips_tripFailureDoesNotStopTheRun(t *testing.T) {
	f := newMonitorFixture()
	failing := testTrip()
	healthy := testTrip()
	failingCandidate := testCandidate(failing, 100)
	healthyCandidate := testCandidate(healthy, 100)

	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return([]models.Trip{failing, healthy}, nil)
	f.detectors.On("DetectAll", mock.Anything, failing).
		Return([]models.CandidateClaim{failingCandidate})
	f.detectors.On("DetectAll", mock.Anything, healthy).
		Return([]models.CandidateClaim{healthyCandidate})
	f.validator.On("ValidateMany", mock.Anything, []models.CandidateClaim{failingCandidate}, failing).
		Return([]models.CandidateVerdict{
			{Candidate: failingCandidate, Verdict: models.Verdict{
				Valid: true, Confidence: 96, Recommendation: models.RecommendationAutoApprove,
			}},
		}, models.BatchStats{Total: 1, Valid: 1, AutoApproved: 1})
	f.validator.On("ValidateMany", mock.Anything, []models.CandidateClaim{healthyCandidate}, healthy).
		Return([]models.CandidateVerdict{
			{Candidate: healthyCandidate, Verdict: models.Verdict{
				Valid: true, Confidence: 96, Recommendation: models.RecommendationAutoApprove,
			}},
		}, models.BatchStats{Total: 1, Valid: 1, AutoApproved: 1})

	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.MatchedBy(func(input models.ClaimCreate) bool {
		return input.TripId == failing.Id
	})).Return(models.Claim{}, errors.New("insert failed"))
	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.MatchedBy(func(input models.ClaimCreate) bool {
		return input.TripId == healthy.Id
	})).Return(models.Claim{TripId: healthy.Id, Amount: 100, Status: models.ClaimStatusApproved}, nil)
	f.notifier.On("SendNotificationEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 1, result.TripsProcessed)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], failing.Id.String())
	assert.Contains(t, result.Errors[0], "insert failed")
	assert.Equal(t, 100.0, result.TotalApprovedAmount)
}

func TestProcessCompletedTrips_notificationFailureDoesNotFailTheClaim(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()
	candidate := testCandidate(trip, 240)

	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return([]models.Trip{trip}, nil)
	f.detectors.On("DetectAll", mock.Anything, trip).
		Return([]models.CandidateClaim{candidate})
	f.validator.On("ValidateMany", mock.Anything, mock.Anything, trip).
		Return([]models.CandidateVerdict{
			{Candidate: candidate, Verdict: models.Verdict{
				Valid: true, Confidence: 97, Recommendation: models.RecommendationAutoApprove,
			}},
		}, models.BatchStats{Total: 1, Valid: 1, AutoApproved: 1})
	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.Anything).
		Return(models.Claim{CrewMemberId: trip.CrewMemberId, Amount: 240, Status: models.ClaimStatusApproved}, nil)
	f.notifier.On("SendNotificationEvent", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("gateway unavailable"))

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 1, result.TripsProcessed)
	assert.Equal(t, 1, result.ClaimsApproved)
	assert.Empty(t, result.Errors)
}

func TestProcessCompletedTrips_secondRunIsANoop(t *testing.T) {
	f := newMonitorFixture()

	// everything eligible was already claimed, so discovery comes back empty
	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return([]models.Trip{}, nil)

	result := f.monitor.ProcessCompletedTrips(context.Background())

	assert.Equal(t, 0, result.TripsProcessed)
	assert.Equal(t, 0, result.ClaimsDetected)
	assert.Empty(t, result.Errors)
	f.detectors.AssertNotCalled(t, "DetectAll", mock.Anything, mock.Anything)
}

func TestProcessSingleTrip_processesTheTrip(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()
	candidate := testCandidate(trip, 240)

	f.tripRepo.On("GetTripById", mock.Anything, nil, trip.Id).Return(trip, nil)
	f.claimRepo.On("CountAutoGeneratedClaimsForTrip", mock.Anything, nil, trip.Id).Return(0, nil)
	f.detectors.On("DetectAll", mock.Anything, trip).
		Return([]models.CandidateClaim{candidate})
	f.validator.On("ValidateMany", mock.Anything, mock.Anything, trip).
		Return([]models.CandidateVerdict{
			{Candidate: candidate, Verdict: models.Verdict{
				Valid: true, Confidence: 97, Recommendation: models.RecommendationAutoApprove,
			}},
		}, models.BatchStats{Total: 1, Valid: 1, AutoApproved: 1})
	f.claimRepo.On("InsertClaim", mock.Anything, nil, mock.Anything).
		Return(models.Claim{CrewMemberId: trip.CrewMemberId, Amount: 240, Status: models.ClaimStatusApproved}, nil)
	f.notifier.On("SendNotificationEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := f.monitor.ProcessSingleTrip(context.Background(), trip.Id)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TripsProcessed)
	assert.Equal(t, 1, result.ClaimsApproved)
}

func TestProcessSingleTrip_rejectsNonCompletedTrip(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()
	trip.Status = models.TripStatusInProgress

	f.tripRepo.On("GetTripById", mock.Anything, nil, trip.Id).Return(trip, nil)

	_, err := f.monitor.ProcessSingleTrip(context.Background(), trip.Id)

	assert.ErrorIs(t, err, models.ErrTripNotCompleted)
	f.detectors.AssertNotCalled(t, "DetectAll", mock.Anything, mock.Anything)
}

func TestProcessSingleTrip_rejectsAlreadyProcessedTrip(t *testing.T) {
	f := newMonitorFixture()
	trip := testTrip()

	f.tripRepo.On("GetTripById", mock.Anything, nil, trip.Id).Return(trip, nil)
	f.claimRepo.On("CountAutoGeneratedClaimsForTrip", mock.Anything, nil, trip.Id).Return(1, nil)

	_, err := f.monitor.ProcessSingleTrip(context.Background(), trip.Id)

	assert.ErrorIs(t, err, models.ErrClaimAlreadyProcessed)
	f.detectors.AssertNotCalled(t, "DetectAll", mock.Anything, mock.Anything)
}

func TestTriggerManualProcessing_runsOnePass(t *testing.T) {
	f := newMonitorFixture()
	f.tripRepo.On("ListUnprocessedCompletedTrips", mock.Anything, nil, mock.Anything).
		Return([]models.Trip{}, nil)

	result := f.monitor.TriggerManualProcessing(context.Background())

	assert.Equal(t, 0, result.TripsProcessed)
	f.tripRepo.AssertNumberOfCalls(t, "ListUnprocessedCompletedTrips", 1)
}
