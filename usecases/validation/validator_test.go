package validation

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/crewledger/crewpay-backend/models"
)

// fakeReasoningClient replays canned answers in order. An entry with err set
// simulates the reasoning service being unreachable.
type fakeReasoningClient struct {
	answers []fakeAnswer
	calls   int
	prompts []string
}

type fakeAnswer struct {
	text string
	err  error
}

func (f *fakeReasoningClient) Review(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.calls >= len(f.answers) {
		return "", errors.New("no more canned answers")
	}
	answer := f.answers[f.calls]
	f.calls++
	return answer.text, answer.err
}

func TestValidate_usesReasoningServiceVerdict(t *testing.T) {
	client := &fakeReasoningClient{answers: []fakeAnswer{
		{text: `{"valid": true, "confidence": 97, "recommendation": "auto_approve", "reasoning": "per diem rate and hours check out", "contract_references": ["4.2"]}`},
	}}
	v := NewValidator(client)

	verdict := v.Validate(context.Background(), candidate(180, 92), models.Trip{})

	assert.True(t, verdict.Valid)
	assert.Equal(t, 97, verdict.Confidence)
	assert.Equal(t, models.RecommendationAutoApprove, verdict.Recommendation)
	assert.False(t, verdict.UsedFallback)
	assert.Equal(t, 1, client.calls)
}

func TestValidate_promptCarriesClaimAndRules(t *testing.T) {
	client := &fakeReasoningClient{answers: []fakeAnswer{
		{text: `{"valid": true, "confidence": 90, "recommendation": "manual_review", "reasoning": "ok"}`},
	}}
	v := NewValidator(client)

	v.Validate(context.Background(), candidate(180, 92), models.Trip{TripNumber: "UA1234"})

	assert.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "per_diem_tafb")
	assert.Contains(t, client.prompts[0], "UA1234")
	assert.Contains(t, client.prompts[0], "auto_approve")
}

func TestValidate_networkErrorDegradesToFallback(t *testing.T) {
	client := &fakeReasoningClient{answers: []fakeAnswer{
		{err: errors.New("connection refused")},
	}}
	v := NewValidator(client)

	verdict := v.Validate(context.Background(), candidate(325, 97), models.Trip{})

	assert.True(t, verdict.Valid)
	assert.Equal(t, 97, verdict.Confidence)
	assert.Equal(t, models.RecommendationAutoApprove, verdict.Recommendation)
	assert.True(t, verdict.UsedFallback)
	assert.Contains(t, verdict.Reasoning, "Fallback validation (AI unavailable)")
}

func TestValidate_garbageAnswerDegradesToFallback(t *testing.T) {
	client := &fakeReasoningClient{answers: []fakeAnswer{
		{text: "I am not able to help with that."},
	}}
	v := NewValidator(client)

	verdict := v.Validate(context.Background(), candidate(88, 88), models.Trip{})

	assert.True(t, verdict.UsedFallback)
	assert.Equal(t, 88, verdict.Confidence)
	assert.Equal(t, models.RecommendationManualReview, verdict.Recommendation)
}

func TestValidateMany_oneFallbackDoesNotAffectNeighbours(t *testing.T) {
	client := &fakeReasoningClient{answers: []fakeAnswer{
		{text: `{"valid": true, "confidence": 96, "recommendation": "auto_approve", "reasoning": "fine"}`},
		{err: errors.New("timeout")},
		{text: `{"valid": false, "confidence": 30, "recommendation": "reject", "reasoning": "rate mismatch"}`},
	}}
	v := NewValidator(client)

	candidates := []models.CandidateClaim{
		candidate(180, 92),
		candidate(325, 97),
		candidate(50, 60),
	}
	verdicts, stats := v.ValidateMany(context.Background(), candidates, models.Trip{})

	assert.Len(t, verdicts, 3)
	assert.False(t, verdicts[0].Verdict.UsedFallback)
	assert.True(t, verdicts[1].Verdict.UsedFallback)
	assert.False(t, verdicts[2].Verdict.UsedFallback)
	assert.Equal(t, candidates[1].TripId, verdicts[1].Candidate.TripId)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Valid)
	assert.Equal(t, 2, stats.AutoApproved)
	assert.Equal(t, 1, stats.FallbackCount)
	assert.InDelta(t, (96.0+97.0+30.0)/3.0, stats.MeanConfidence, 1e-9)
}

func TestValidateMany_emptyInput(t *testing.T) {
	v := NewValidator(&fakeReasoningClient{})

	verdicts, stats := v.ValidateMany(context.Background(), nil, models.Trip{})

	assert.Empty(t, verdicts)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.MeanConfidence)
}
