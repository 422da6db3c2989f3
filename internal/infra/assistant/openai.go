// Package assistant wraps the OpenAI chat completion API for portfolio
// questions the rule-based knowledge base cannot answer.
package assistant

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client answers free-form visitor questions using a chat completion model,
// grounded in a snapshot of the portfolio content.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates an assistant client. baseURL may point at any
// OpenAI-compatible endpoint; empty means the default OpenAI API.
func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const systemPrompt = `You are the assistant on a personal portfolio site. Answer visitor questions about the owner using ONLY the portfolio content provided below. Be brief and factual. If the content does not cover the question, say you don't have that information. Never invent projects, employers, or dates.

Portfolio content:
%s`

// Answer produces a reply to a visitor question. portfolioContext is a plain
// text rendering of the portfolio content the model may draw from.
func (c *Client) Answer(ctx context.Context, portfolioContext, question string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(systemPrompt, portfolioContext)},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
