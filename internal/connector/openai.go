package connector

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
)

// OpenAIConnector implements Connector using the OpenAI chat completions API
type OpenAIConnector struct {
	client openai.Client
	model  openai.ChatModel
}

func NewOpenAIConnector(client openai.Client, model openai.ChatModel) *OpenAIConnector {
	return &OpenAIConnector{
		client: client,
		model:  model,
	}
}

func (oc *OpenAIConnector) Send(ctx context.Context, message string, history []Turn) (Reply, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	resp, err := oc.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    oc.model,
		Messages: messages,
	})
	if err != nil {
		return Reply{}, &ConnectorError{Provider: "openai", Err: fmt.Errorf("chat completion failed: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return Reply{}, &ConnectorError{Provider: "openai", Err: fmt.Errorf("response contained no choices")}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return Reply{}, &ConnectorError{Provider: "openai", Err: fmt.Errorf("response contained no text content")}
	}

	return Reply{Content: content}, nil
}
