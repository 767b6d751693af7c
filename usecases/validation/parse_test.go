package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewledger/crewpay-backend/models"
)

func TestParseVerdict_plainJson(t *testing.T) {
	answer := `{"valid": true, "confidence": 96, "recommendation": "auto_approve",
		"reasoning": "matches section 4.2", "contract_references": ["4.2"]}`

	verdict, err := parseVerdict(answer, candidate(100, 92))
	require.NoError(t, err)

	assert.True(t, verdict.Valid)
	assert.Equal(t, 96, verdict.Confidence)
	assert.Equal(t, models.RecommendationAutoApprove, verdict.Recommendation)
	assert.Equal(t, "matches section 4.2", verdict.Reasoning)
	assert.Equal(t, []string{"4.2"}, verdict.ContractReferences)
	assert.False(t, verdict.UsedFallback)
}

func TestParseVerdict_fencedWithLanguageTag(t *testing.T) {
	answer := "```json\n{\"valid\": false, \"confidence\": 20, \"recommendation\": \"reject\", \"reasoning\": \"no\"}\n```"

	verdict, err := parseVerdict(answer, candidate(100, 92))
	require.NoError(t, err)

	assert.False(t, verdict.Valid)
	assert.Equal(t, 20, verdict.Confidence)
	assert.Equal(t, models.RecommendationReject, verdict.Recommendation)
}

func TestParseVerdict_proseAroundObject(t *testing.T) {
	answer := `Here is my assessment:
{"valid": true, "confidence": 90, "recommendation": "manual_review", "reasoning": "plausible"}
Let me know if you need more detail.`

	verdict, err := parseVerdict(answer, candidate(100, 92))
	require.NoError(t, err)

	assert.True(t, verdict.Valid)
	assert.Equal(t, 90, verdict.Confidence)
}

func TestParseVerdict_missingConfidenceFallsBackToPrior(t *testing.T) {
	answer := `{"valid": true, "recommendation": "manual_review", "reasoning": "ok"}`

	verdict, err := parseVerdict(answer, candidate(100, 88))
	require.NoError(t, err)

	assert.Equal(t, 88, verdict.Confidence)
}

func TestParseVerdict_unknownRecommendationDefaultsToReview(t *testing.T) {
	answer := `{"valid": true, "confidence": 50, "recommendation": "escalate", "reasoning": "?"}`

	verdict, err := parseVerdict(answer, candidate(100, 92))
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationManualReview, verdict.Recommendation)
}

func TestParseVerdict_confidenceIsClamped(t *testing.T) {
	answer := `{"valid": true, "confidence": 250, "recommendation": "auto_approve", "reasoning": "sure"}`

	verdict, err := parseVerdict(answer, candidate(100, 92))
	require.NoError(t, err)

	assert.Equal(t, 100, verdict.Confidence)
}

func TestParseVerdict_missingValidIsAnError(t *testing.T) {
	answer := `{"confidence": 90, "recommendation": "auto_approve", "reasoning": "??"}`

	_, err := parseVerdict(answer, candidate(100, 92))
	assert.Error(t, err)
}

func TestParseVerdict_noJsonAtAll(t *testing.T) {
	_, err := parseVerdict("I cannot assess this claim.", candidate(100, 92))
	assert.Error(t, err)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
