package models

import "time"

// RunResult summarizes one completion monitor invocation. It is built fresh
// per run and reported to the caller, never persisted.
type RunResult struct {
	TripsProcessed      int
	ClaimsDetected      int
	ClaimsApproved      int
	ClaimsReview        int
	ClaimsRejected      int
	TotalApprovedAmount float64
	Errors              []string
	StartedAt           time.Time
	FinishedAt          time.Time
}

// BatchStats aggregates validation outcomes over one trip's candidates, for
// observability only.
type BatchStats struct {
	Total          int
	Valid          int
	AutoApproved   int
	MeanConfidence float64
	FallbackCount  int
}

// FallbackRate is the share of candidates that were validated by the local
// fallback rather than the reasoning service.
func (s BatchStats) FallbackRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.FallbackCount) / float64(s.Total)
}
