package llm

import (
	"context"
	"fmt"
	"time"

	ai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/nishanttomar21/openai-chatbot-assistant/messages"
)

// Fixed generation parameters for every completion request.
const (
	maxTokens        = 500
	temperature      = 0.7
	topP             = 0.95
	frequencyPenalty = 0
	presencePenalty  = 0
)

var (
	_ Completer = (*AzureClient)(nil)
	_ Moderator = (*AzureClient)(nil)
)

// ClientConfig carries the connection settings read once at startup.
type ClientConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Model      string
	Timeout    time.Duration
}

// AzureClient talks to an Azure OpenAI deployment for both chat completions
// and content moderation.
type AzureClient struct {
	client  *ai.Client
	model   string
	timeout time.Duration
}

// NewAzureClient creates a client for the configured deployment.
func NewAzureClient(cfg ClientConfig) *AzureClient {
	acfg := ai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		acfg.APIVersion = cfg.APIVersion
	}
	return &AzureClient{
		client:  ai.NewClientWithConfig(acfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Complete sends the ordered message list to the chat completion endpoint
// and returns the first candidate's text content.
func (c *AzureClient) Complete(ctx context.Context, msgs []messages.ChatMessage) (string, error) {
	timeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	zap.S().Debugw("completion_started", "model", c.model, "messages", len(msgs))

	resp, err := c.client.CreateChatCompletion(timeout, ai.ChatCompletionRequest{
		Model:            c.model,
		Messages:         MessagesToOpenAI(msgs),
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		TopP:             topP,
		FrequencyPenalty: frequencyPenalty,
		PresencePenalty:  presencePenalty,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Moderate classifies text against the moderation endpoint.
func (c *AzureClient) Moderate(ctx context.Context, text string) (*ModerationResult, error) {
	timeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	zap.S().Debugw("moderation_started", "chars", len(text))

	resp, err := c.client.Moderations(timeout, ai.ModerationRequest{Input: text})
	if err != nil {
		return nil, fmt.Errorf("moderation request failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("moderation returned no results")
	}
	return resultToModeration(resp.Results[0]), nil
}

// MessagesToOpenAI converts agnostic messages to the provider's format.
func MessagesToOpenAI(msgs []messages.ChatMessage) []ai.ChatCompletionMessage {
	result := make([]ai.ChatCompletionMessage, len(msgs))
	for i, msg := range msgs {
		result[i] = ai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return result
}
