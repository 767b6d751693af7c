package validation

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/crewledger/crewpay-backend/models"
)

// parseVerdict decodes the reasoning service's free-text answer into a
// verdict. The answer may be wrapped in a fenced code block and may carry
// prose around the JSON object. Missing optional fields are filled from the
// candidate; a missing "valid" field is a schema mismatch and fails the
// parse (the caller falls back).
func parseVerdict(answer string, candidate models.CandidateClaim) (models.Verdict, error) {
	raw := extractJsonObject(stripFences(answer))
	if raw == "" {
		return models.Verdict{}, errors.New("no JSON object found in reasoning service answer")
	}

	var payload verdictPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.Verdict{}, errors.Wrap(err, "could not decode verdict JSON")
	}
	if payload.Valid == nil {
		return models.Verdict{}, errors.New("verdict JSON is missing the valid field")
	}

	confidence := candidate.PriorConfidence
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}

	recommendation := models.RecommendationFrom(payload.Recommendation)
	if recommendation == models.RecommendationUnknown {
		recommendation = models.RecommendationManualReview
	}

	return models.Verdict{
		Valid:              *payload.Valid,
		Confidence:         models.ClampConfidence(confidence),
		Recommendation:     recommendation,
		Reasoning:          payload.Reasoning,
		ContractReferences: payload.ContractReferences,
	}, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// drop the language tag line ("json", ...)
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{}") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// extractJsonObject returns the first well-formed JSON object in s, or ""
// when none exists.
func extractJsonObject(s string) string {
	if gjson.Valid(s) && strings.HasPrefix(strings.TrimSpace(s), "{") {
		return s
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	obj := s[start : end+1]
	if !gjson.Valid(obj) {
		return ""
	}
	return obj
}
