package llm

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sashabaranov/go-openai"
	"github.com/spance/ollama-models-go/chatmodels"
	"github.com/spance/ollama-models-go/chatmodels/definitions"
)

const (
	DefaultBaseURL = "http://localhost:11434/v1"
	// DefaultAPIKey is sent when none is configured. Ollama ignores it.
	DefaultAPIKey = "ollama"
)

var ErrBackendUnavailable = errors.New("chat backend unavailable")

// ModelClient is a chat client bound to one model on an OpenAI-compatible
// backend. Building one does no I/O.
type ModelClient struct {
	config definitions.ModelConfig
	client *openai.Client
}

func newOpenAIClient(backend definitions.BackendConfig) *openai.Client {
	apiKey := backend.APIKey
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	openaiCfg := openai.DefaultConfig(apiKey)
	openaiCfg.BaseURL = DefaultBaseURL
	if backend.BaseURL != "" {
		openaiCfg.BaseURL = backend.BaseURL
	}
	return openai.NewClientWithConfig(openaiCfg)
}

func NewModelClient(backend definitions.BackendConfig, cfg definitions.ModelConfig) *ModelClient {
	return &ModelClient{
		config: cfg.Clone(),
		client: newOpenAIClient(backend),
	}
}

func (c *ModelClient) ModelName() string { return c.config.ModelIdentifier }

func (c *ModelClient) Stop() []string { return slices.Clone(c.config.StopSequences) }

// Client returns the underlying go-openai client.
func (c *ModelClient) Client() *openai.Client { return c.client }

// RequestTemplate returns a chat completion request with the model and stop
// sequences filled in. Callers add messages and sampling options.
func (c *ModelClient) RequestTemplate() openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.config.ModelIdentifier,
		Stop:  c.Stop(),
	}
}

// NewConstructor returns a registry constructor that builds ModelClients
// against backend.
func NewConstructor(backend definitions.BackendConfig) chatmodels.Constructor {
	return func(cfg definitions.ModelConfig) (chatmodels.Client, error) {
		return NewModelClient(backend, cfg), nil
	}
}

// ListModelIDs asks the backend which models it serves.
func ListModelIDs(ctx context.Context, backend definitions.BackendConfig) ([]string, error) {
	list, err := newOpenAIClient(backend).ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
