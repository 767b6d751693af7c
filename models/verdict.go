package models

type Recommendation int

const (
	RecommendationAutoApprove Recommendation = iota
	RecommendationManualReview
	RecommendationReject
	RecommendationUnknown
)

func (r Recommendation) String() string {
	switch r {
	case RecommendationAutoApprove:
		return "auto_approve"
	case RecommendationManualReview:
		return "manual_review"
	case RecommendationReject:
		return "reject"
	}
	return "unknown"
}

func RecommendationFrom(s string) Recommendation {
	switch s {
	case "auto_approve":
		return RecommendationAutoApprove
	case "manual_review":
		return RecommendationManualReview
	case "reject":
		return RecommendationReject
	}
	return RecommendationUnknown
}

// RecommendationForConfidence maps a confidence score to an action. The same
// mapping is used by the validation fallback at claim-creation time and by
// the review agents at claim-review time.
func RecommendationForConfidence(confidence int) Recommendation {
	if confidence >= 95 {
		return RecommendationAutoApprove
	}
	return RecommendationManualReview
}

// Verdict is the validator's output for one candidate claim.
// Confidence is always within [0, 100].
type Verdict struct {
	Valid              bool
	Confidence         int
	Recommendation     Recommendation
	Reasoning          string
	ContractReferences []string
	UsedFallback       bool
}

// CandidateVerdict pairs a candidate with its verdict. Batch validation
// returns an ordered slice of these rather than a map keyed on candidate
// identity.
type CandidateVerdict struct {
	Candidate CandidateClaim
	Verdict   Verdict
}

// ClampConfidence bounds a confidence score to [0, 100].
func ClampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
