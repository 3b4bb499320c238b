package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	systemPrompt = "You are an experienced fitness coach. Give clear, practical advice " +
		"on training, exercise form, recovery and nutrition. Keep answers short and " +
		"actionable, and recommend consulting a medical professional for anything " +
		"beyond general fitness guidance."

	defaultModel     = openai.GPT3Dot5Turbo
	maxReplyTokens   = 500
	replyTemperature = 0.7
	requestTimeout   = 30 * time.Second
)

// ErrNotConfigured is returned when no upstream API key was provided.
var ErrNotConfigured = errors.New("chat service is not configured")

// Client relays a single user message to the chat-completion API. It keeps
// no conversation state between calls.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a relay client. An empty API key yields an unconfigured client
// whose Reply always fails with ErrNotConfigured.
func New(apiKey, model string) *Client {
	if strings.TrimSpace(apiKey) == "" {
		return &Client{}
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{api: openai.NewClient(apiKey), model: model}
}

// Configured reports whether an upstream API key was provided.
func (c *Client) Configured() bool {
	return c != nil && c.api != nil
}

// Reply sends the message with the fixed coaching system prompt and returns
// the first completion's text.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
