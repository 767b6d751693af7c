package dto

import (
	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/pure_utils"
)

type AgentResult struct {
	AgentName  string   `json:"agent_name"`
	Status     string   `json:"status"`
	Confidence float64  `json:"confidence"`
	Summary    string   `json:"summary,omitempty"`
	Issues     []string `json:"issues,omitempty"`
	DurationMs int64    `json:"duration_ms"`
}

type FinalDecision struct {
	ClaimId         string        `json:"claim_id"`
	Status          string        `json:"status"`
	Confidence      float64       `json:"confidence"`
	Issues          []string      `json:"issues"`
	AgentResults    []AgentResult `json:"agent_results"`
	TotalDurationMs int64         `json:"total_duration_ms"`
}

func AdaptFinalDecisionDto(decision models.FinalDecision) FinalDecision {
	issues := decision.Issues
	if issues == nil {
		issues = []string{}
	}
	return FinalDecision{
		ClaimId:    decision.ClaimId,
		Status:     decision.Status.String(),
		Confidence: decision.Confidence,
		Issues:     issues,
		AgentResults: pure_utils.Map(decision.AgentResults, func(result models.AgentResult) AgentResult {
			return AgentResult{
				AgentName:  result.AgentName,
				Status:     result.Status.String(),
				Confidence: result.Confidence,
				Summary:    result.Summary,
				Issues:     result.Issues,
				DurationMs: result.Duration.Milliseconds(),
			}
		}),
		TotalDurationMs: decision.TotalDuration.Milliseconds(),
	}
}
