package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

// maxReplyTokens caps the remote response; chat answers are short.
const maxReplyTokens = 150

// AnthropicResponder answers via the Anthropic Messages API.
type AnthropicResponder struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicResponder(apiKey, model string) *AnthropicResponder {
	return &AnthropicResponder{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

func (r *AnthropicResponder) Respond(ctx context.Context, message string) (string, error) {
	resp, err := r.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     r.model,
		System:    SystemPrompt,
		MaxTokens: maxReplyTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(message),
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling chat backend: %w", err)
	}

	reply := resp.GetFirstContentText()
	if reply == "" {
		return "", errors.New("chat backend returned no text content")
	}
	return reply, nil
}
