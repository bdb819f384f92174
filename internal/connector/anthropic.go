package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicConnector implements Connector using the Anthropic messages API
type AnthropicConnector struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewAnthropicConnector(client anthropic.Client, model anthropic.Model, maxTokens int64) *AnthropicConnector {
	return &AnthropicConnector{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (ac *AnthropicConnector) Send(ctx context.Context, message string, history []Turn) (Reply, error) {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Content)))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))

	params := anthropic.MessageNewParams{
		Model:     ac.model,
		MaxTokens: ac.maxTokens,
		Messages:  messages,
	}

	stream := ac.client.Messages.NewStreaming(ctx, params)
	response := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := response.Accumulate(event); err != nil {
			return Reply{}, &ConnectorError{Provider: "anthropic", Err: fmt.Errorf("failed to accumulate response content stream: %w", err)}
		}
	}
	if stream.Err() != nil {
		return Reply{}, &ConnectorError{Provider: "anthropic", Err: fmt.Errorf("failed to stream response: %w", stream.Err())}
	}
	if response.StopReason == "" {
		return Reply{}, &ConnectorError{Provider: "anthropic", Err: fmt.Errorf("malformed message: missing stop reason")}
	}

	var sb strings.Builder
	for _, block := range response.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	content := sb.String()
	if content == "" {
		return Reply{}, &ConnectorError{Provider: "anthropic", Err: fmt.Errorf("response contained no text content")}
	}

	return Reply{Content: content}, nil
}
