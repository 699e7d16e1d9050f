package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/health-agent/internal/domain/agent"
	"github.com/bryanwahyu/health-agent/internal/infra/ai/prompt"
)

const (
	maxTokens    = 1024
	defaultModel = "gpt-4o-mini"
)

// Client implements agent.Platform on an OpenAI-compatible API. Register
// creates an assistant; SendMessage runs a chat completion with the model
// and instructions of the assistant named by the message's AgentID.
type Client struct {
	*openai.Client
	Model string

	mu         sync.Mutex
	assistants map[string]assistantConfig
}

type assistantConfig struct {
	model        string
	instructions string
}

// NewClient builds a client. baseURL may be empty for the public API.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		Client:     openai.NewClientWithConfig(cfg),
		Model:      model,
		assistants: make(map[string]assistantConfig),
	}
}

func (c *Client) model() string {
	if c.Model == "" {
		return defaultModel
	}
	return c.Model
}

func (c *Client) Register(ctx context.Context, profile agent.AgentProfile) (string, error) {
	name := profile.Name
	desc := profile.Description
	instructions := prompt.GetAssistantInstructions()
	a, err := c.CreateAssistant(ctx, openai.AssistantRequest{
		Model:        c.model(),
		Name:         &name,
		Description:  &desc,
		Instructions: &instructions,
		Metadata:     map[string]any{"category": profile.Category},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create assistant: %w", mapError(err))
	}
	return a.ID, nil
}

// assistant resolves an assistant id to the model and instructions it was
// registered with. An empty id falls back to the client defaults.
func (c *Client) assistant(ctx context.Context, id string) (assistantConfig, error) {
	fallback := assistantConfig{model: c.model(), instructions: prompt.GetSystemPrompt()}
	if id == "" {
		return fallback, nil
	}

	c.mu.Lock()
	cached, ok := c.assistants[id]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	a, err := c.RetrieveAssistant(ctx, id)
	if err != nil {
		return assistantConfig{}, fmt.Errorf("failed to retrieve assistant %s: %w", id, mapError(err))
	}
	cfg := fallback
	if a.Model != "" {
		cfg.model = a.Model
	}
	if a.Instructions != nil && strings.TrimSpace(*a.Instructions) != "" {
		cfg.instructions = *a.Instructions
	}

	c.mu.Lock()
	c.assistants[id] = cfg
	c.mu.Unlock()
	return cfg, nil
}

func (c *Client) SendMessage(ctx context.Context, msg agent.Message) (string, error) {
	a, err := c.assistant(ctx, msg.AgentID)
	if err != nil {
		return "", err
	}
	model := a.model
	req := openai.ChatCompletionRequest{
		Model: model,
		User:  msg.SessionID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.instructions},
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetContextPrompt(msg.Metadata["health_data"])},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(msg.Content)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", mapError(err))
	}
	if len(resp.Choices) == 0 {
		return "", agent.ErrEmptyReply
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", agent.ErrEmptyReply
	}
	return content, nil
}

// mapError translates provider status codes into agent errors.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", agent.ErrQuotaExceeded, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", agent.ErrNotConfigured, err)
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", agent.ErrQuotaExceeded, err)
	}
	return err
}

var _ agent.Platform = (*Client)(nil)
