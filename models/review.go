package models

import "time"

type AgentStatus int

const (
	AgentStatusApproved AgentStatus = iota
	AgentStatusFlagged
	AgentStatusError
)

func (s AgentStatus) String() string {
	switch s {
	case AgentStatusApproved:
		return "approved"
	case AgentStatusFlagged:
		return "flagged"
	case AgentStatusError:
		return "error"
	}
	return "error"
}

type DecisionStatus int

const (
	DecisionStatusApproved DecisionStatus = iota
	DecisionStatusFlagged
	DecisionStatusRejected
)

func (s DecisionStatus) String() string {
	switch s {
	case DecisionStatusApproved:
		return "approved"
	case DecisionStatusFlagged:
		return "flagged"
	case DecisionStatusRejected:
		return "rejected"
	}
	return "rejected"
}

// AgentResult is the outcome of one specialized review check over a
// submitted claim. Confidence is in [0, 1].
type AgentResult struct {
	AgentName  string
	Status     AgentStatus
	Confidence float64
	Summary    string
	Issues     []string
	Duration   time.Duration
}

// FinalDecision folds all agent results for one claim into a single
// adjudicated outcome. Status precedence: any error agent rejects the claim;
// otherwise any flagged agent, or a mean confidence below the flagging
// threshold, flags it; otherwise it is approved.
type FinalDecision struct {
	ClaimId       string
	Status        DecisionStatus
	Confidence    float64
	Issues        []string
	AgentResults  []AgentResult
	TotalDuration time.Duration
}
