package validation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/utils"
)

// ReasoningClient is the external reasoning service boundary. It takes the
// full prompt and returns the service's free-text answer, which is expected
// (but not guaranteed) to contain a JSON verdict.
type ReasoningClient interface {
	Review(ctx context.Context, prompt string) (string, error)
}

type Validator struct {
	client ReasoningClient
}

func NewValidator(client ReasoningClient) Validator {
	return Validator{client: client}
}

// Validate assesses one candidate claim against the rules corpus. Any
// failure to reach the reasoning service or to make sense of its answer
// degrades to the deterministic local fallback; this method never errors.
func (v Validator) Validate(ctx context.Context, candidate models.CandidateClaim, trip models.Trip) models.Verdict {
	logger := utils.LoggerFromContext(ctx)

	prompt, err := buildValidationPrompt(candidate, trip)
	if err != nil {
		logger.WarnContext(ctx, fmt.Sprintf("could not build validation prompt: %v", err))
		return FallbackValidation(candidate)
	}

	answer, err := v.client.Review(ctx, prompt)
	if err != nil {
		logger.WarnContext(ctx, fmt.Sprintf("reasoning service unavailable, using fallback validation: %v", err))
		return FallbackValidation(candidate)
	}

	verdict, err := parseVerdict(answer, candidate)
	if err != nil {
		logger.WarnContext(ctx, fmt.Sprintf("unusable reasoning service answer, using fallback validation: %v", err))
		return FallbackValidation(candidate)
	}

	return verdict
}

// verdictPayload is the JSON shape the reasoning service is instructed to
// answer with. Pointer fields distinguish "absent" from zero so defaults can
// be filled from the candidate.
type verdictPayload struct {
	Valid              *bool    `json:"valid" jsonschema_description:"Whether the claim is valid under the rules" jsonschema_required:"true"`
	Confidence         *int     `json:"confidence" jsonschema_description:"Confidence in the verdict, 0 to 100"`
	Recommendation     string   `json:"recommendation" jsonschema_description:"One of auto_approve, manual_review, reject"`
	Reasoning          string   `json:"reasoning" jsonschema_description:"Short justification for the verdict"`
	ContractReferences []string `json:"contract_references" jsonschema_description:"Rule sections supporting the verdict"`
}

func buildValidationPrompt(candidate models.CandidateClaim, trip models.Trip) (string, error) {
	candidateJson, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "could not marshal candidate claim")
	}
	tripJson, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "could not marshal trip")
	}
	schemaJson, err := json.Marshal(jsonschema.Reflect(&verdictPayload{}))
	if err != nil {
		return "", errors.Wrap(err, "could not marshal verdict schema")
	}

	return fmt.Sprintf(`You are a crew pay auditor. Assess the following automatically
detected entitlement claim against the rules.

RULES:
%s

CLAIM:
%s

TRIP:
%s

Answer with a single JSON object matching this schema, nothing else:
%s

Recommend auto_approve only when your confidence exceeds 95.`,
		rulesCorpus, candidateJson, tripJson, schemaJson), nil
}
