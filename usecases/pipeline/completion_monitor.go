package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories"
	"github.com/crewledger/crewpay-backend/usecases/executor_factory"
	"github.com/crewledger/crewpay-backend/utils"
)

// Completed trips older than this are out of scope for automatic processing.
// They can still be handled through manual claim entry.
const discoveryWindow = 72 * time.Hour

type tripRepository interface {
	ListUnprocessedCompletedTrips(ctx context.Context, exec repositories.Executor, since time.Time) ([]models.Trip, error)
	GetTripById(ctx context.Context, exec repositories.Executor, tripId uuid.UUID) (models.Trip, error)
}

type claimRepository interface {
	InsertClaim(ctx context.Context, exec repositories.Executor, input models.ClaimCreate) (models.Claim, error)
	CountAutoGeneratedClaimsForTrip(ctx context.Context, exec repositories.Executor, tripId uuid.UUID) (int, error)
}

type detectorSet interface {
	DetectAll(ctx context.Context, trip models.Trip) []models.CandidateClaim
}

type batchValidator interface {
	ValidateMany(ctx context.Context, candidates []models.CandidateClaim, trip models.Trip) ([]models.CandidateVerdict, models.BatchStats)
}

type notifier interface {
	SendNotificationEvent(ctx context.Context, channel string, event models.NotificationEvent) error
}

// CompletionMonitor turns freshly completed trips into validated claims. One
// instance is shared by the scheduler and the manual trigger endpoint; it
// holds no per-run state.
type CompletionMonitor struct {
	executorFactory executor_factory.ExecutorFactory
	tripRepository  tripRepository
	claimRepository claimRepository
	detectors       detectorSet
	validator       batchValidator
	notifier        notifier
	now             func() time.Time
}

func NewCompletionMonitor(
	executorFactory executor_factory.ExecutorFactory,
	tripRepository tripRepository,
	claimRepository claimRepository,
	detectors detectorSet,
	validator batchValidator,
	notifier notifier,
	now func() time.Time,
) CompletionMonitor {
	if now == nil {
		now = time.Now
	}
	return CompletionMonitor{
		executorFactory: executorFactory,
		tripRepository:  tripRepository,
		claimRepository: claimRepository,
		detectors:       detectors,
		validator:       validator,
		notifier:        notifier,
		now:             now,
	}
}

// ProcessCompletedTrips runs one full detection and validation pass over the
// unprocessed completed trips of the recent window. It never returns an
// error: failures are collected in the RunResult so a scheduler tick can log
// them and keep its cadence. Repeated runs converge, since a trip that
// received an auto-generated claim is excluded from discovery.
func (m CompletionMonitor) ProcessCompletedTrips(ctx context.Context) models.RunResult {
	logger := utils.LoggerFromContext(ctx)
	exec := m.executorFactory.NewExecutor()

	result := models.RunResult{StartedAt: m.now()}

	trips, err := m.tripRepository.ListUnprocessedCompletedTrips(ctx, exec, result.StartedAt.Add(-discoveryWindow))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("trip discovery failed: %v", err))
		result.FinishedAt = m.now()
		return result
	}

	for _, trip := range trips {
		if err := m.processTrip(ctx, exec, trip, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", trip.Id, err))
			continue
		}
		result.TripsProcessed++
	}

	result.FinishedAt = m.now()
	logger.InfoContext(ctx, "completed trips processing run finished",
		"trips_processed", result.TripsProcessed,
		"claims_detected", result.ClaimsDetected,
		"claims_approved", result.ClaimsApproved,
		"claims_review", result.ClaimsReview,
		"claims_rejected", result.ClaimsRejected,
		"total_approved_amount", result.TotalApprovedAmount,
		"errors", len(result.Errors),
	)
	return result
}

func (m CompletionMonitor) processTrip(
	ctx context.Context,
	exec repositories.Executor,
	trip models.Trip,
	result *models.RunResult,
) error {
	logger := utils.LoggerFromContext(ctx)

	candidates := m.detectors.DetectAll(ctx, trip)
	result.ClaimsDetected += len(candidates)
	if len(candidates) == 0 {
		return nil
	}

	verdicts, stats := m.validator.ValidateMany(ctx, candidates, trip)
	if stats.FallbackCount > 0 {
		logger.WarnContext(ctx, "some candidates were validated without the reasoning service",
			"trip_id", trip.Id,
			"fallback_rate", stats.FallbackRate(),
		)
	}

	for _, pair := range verdicts {
		if !pair.Verdict.Valid {
			// invalid detections leave no record, only the run counter
			result.ClaimsRejected++
			continue
		}

		status := models.ClaimStatusPending
		switch pair.Verdict.Recommendation {
		case models.RecommendationAutoApprove:
			status = models.ClaimStatusApproved
		case models.RecommendationReject:
			status = models.ClaimStatusRejected
		}

		claim, err := m.claimRepository.InsertClaim(ctx, exec, models.ClaimCreate{
			Id:                   utils.NewClaimID(m.now()),
			CrewMemberId:         pair.Candidate.CrewMemberId,
			TripId:               pair.Candidate.TripId,
			EntitlementType:      pair.Candidate.EntitlementType,
			Amount:               pair.Candidate.Amount,
			Description:          pair.Candidate.Description,
			Status:               status,
			AutoGenerated:        true,
			DetectionMethod:      pair.Candidate.DetectionMethod,
			ValidationConfidence: pair.Verdict.Confidence,
			ValidationReasoning:  pair.Verdict.Reasoning,
		})
		if err != nil {
			return err
		}

		switch status {
		case models.ClaimStatusApproved:
			result.ClaimsApproved++
			result.TotalApprovedAmount += claim.Amount
		case models.ClaimStatusPending:
			result.ClaimsReview++
		case models.ClaimStatusRejected:
			result.ClaimsRejected++
		}

		m.notifyClaimCreated(ctx, claim)
	}
	return nil
}

// notifyClaimCreated pushes the event to the crew member's channel and the
// admin broadcast channel, concurrently. Failures are logged and swallowed:
// the claim row is already committed and must not be rolled back over a push
// hiccup.
func (m CompletionMonitor) notifyClaimCreated(ctx context.Context, claim models.Claim) {
	logger := utils.LoggerFromContext(ctx)
	event := models.NewClaimAutoGeneratedEvent(claim, m.now())

	channels := []string{
		models.NotificationChannelForCrewMember(claim.CrewMemberId),
		models.NotificationChannelAdminBroadcast,
	}

	group := errgroup.Group{}
	for _, channel := range channels {
		group.Go(func() error {
			if err := m.notifier.SendNotificationEvent(ctx, channel, event); err != nil {
				logger.WarnContext(ctx, "could not push claim notification",
					"claim_id", claim.Id,
					"channel", channel,
					"error", err.Error(),
				)
			}
			return nil
		})
	}
	_ = group.Wait()
}

// TriggerManualProcessing runs one processing pass outside the scheduler
// cadence, typically from the admin API.
func (m CompletionMonitor) TriggerManualProcessing(ctx context.Context) models.RunResult {
	utils.LoggerFromContext(ctx).InfoContext(ctx, "manual claims processing triggered")
	return m.ProcessCompletedTrips(ctx)
}

// ProcessSingleTrip processes one trip by id, outside the discovery window.
// Unlike the batch run it returns errors: the caller asked for this specific
// trip, so "not completed" and "already processed" are its business.
func (m CompletionMonitor) ProcessSingleTrip(ctx context.Context, tripId uuid.UUID) (models.RunResult, error) {
	exec := m.executorFactory.NewExecutor()

	trip, err := m.tripRepository.GetTripById(ctx, exec, tripId)
	if err != nil {
		return models.RunResult{}, err
	}
	if trip.Status != models.TripStatusCompleted {
		return models.RunResult{}, models.ErrTripNotCompleted
	}

	count, err := m.claimRepository.CountAutoGeneratedClaimsForTrip(ctx, exec, tripId)
	if err != nil {
		return models.RunResult{}, err
	}
	if count > 0 {
		return models.RunResult{}, models.ErrClaimAlreadyProcessed
	}

	result := models.RunResult{StartedAt: m.now()}
	if err := m.processTrip(ctx, exec, trip, &result); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", trip.Id, err))
	} else {
		result.TripsProcessed++
	}
	result.FinishedAt = m.now()
	return result, nil
}
