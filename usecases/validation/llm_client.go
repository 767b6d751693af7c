package validation

import (
	"context"
	"sync"

	"github.com/checkmarble/llmberjack"
	"github.com/checkmarble/llmberjack/llms/openai"
	"github.com/pkg/errors"

	"github.com/crewledger/crewpay-backend/infra"
)

const validatorSystemInstruction = "You are a crew pay auditor. You are given an automatically detected " +
	"entitlement claim and the trip it was detected on, and you must assess its validity against the pay rules. " +
	"Reply factually and only in the requested JSON shape."

// LlmReasoningClient is the production ReasoningClient, backed by an
// OpenAI-compatible endpoint through llmberjack. The adapter is created
// lazily on first use and reused afterwards.
type LlmReasoningClient struct {
	config infra.AIConfiguration

	adapter *llmberjack.Llmberjack
	mu      sync.Mutex
}

func NewLlmReasoningClient(config infra.AIConfiguration) *LlmReasoningClient {
	return &LlmReasoningClient{config: config}
}

func (c *LlmReasoningClient) getAdapter() (*llmberjack.Llmberjack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.adapter != nil {
		return c.adapter, nil
	}

	opts := []openai.Opt{}
	if c.config.BaseUrl != "" {
		opts = append(opts, openai.WithBaseUrl(c.config.BaseUrl))
	}
	if c.config.ApiKey != "" {
		opts = append(opts, openai.WithApiKey(c.config.ApiKey))
	}

	provider, err := openai.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OpenAI provider")
	}

	adapter, err := llmberjack.New(llmberjack.WithProvider("main", provider))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LLM adapter")
	}

	c.adapter = adapter
	return c.adapter, nil
}

func (c *LlmReasoningClient) Review(ctx context.Context, prompt string) (string, error) {
	adapter, err := c.getAdapter()
	if err != nil {
		return "", err
	}

	response, err := llmberjack.NewUntypedRequest().
		WithModel(c.config.Model).
		WithThinking(false).
		WithInstruction(validatorSystemInstruction).
		WithText(llmberjack.RoleUser, prompt).
		Do(ctx, adapter)
	if err != nil {
		return "", errors.Wrap(err, "could not get claim validation from reasoning service")
	}

	answer, err := response.Get(0)
	if err != nil {
		return "", errors.Wrap(err, "could not read reasoning service answer")
	}
	return answer, nil
}
