package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/anthropics/anthropic-sdk-go"
	anthropt "github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"github.com/promptpolish/promptpolish/internal/config"
	"github.com/promptpolish/promptpolish/internal/connector"
	"github.com/promptpolish/promptpolish/internal/transport"
)

func setupContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup graceful shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Println("Interrupt signal detected, shutting down gracefully...")
		cancel()
		<-interrupt
		log.Fatal("Forcing shutdown")
	}()

	return ctx
}

// createConnector builds the model connector for the configured provider
func createConnector(c config.Config) (connector.Connector, error) {
	rateLimitedHTTPClient := &http.Client{
		Transport: transport.WithRateLimitHandling(nil),
	}

	switch c.Provider {
	case "anthropic":
		client := anthropic.NewClient(
			anthropt.WithHTTPClient(rateLimitedHTTPClient),
			anthropt.WithAPIKey(c.AnthropicAPIKey),
			anthropt.WithMaxRetries(5),
		)
		model := anthropic.ModelClaudeSonnet4_0
		if c.Model != "" {
			model = anthropic.Model(c.Model)
		}
		return connector.NewAnthropicConnector(client, model, c.MaxOutputTokens), nil
	case "openai":
		client := openai.NewClient(
			openaiopt.WithHTTPClient(rateLimitedHTTPClient),
			openaiopt.WithAPIKey(c.OpenAIAPIKey),
			openaiopt.WithMaxRetries(5),
		)
		model := openai.ChatModelGPT4o
		if c.Model != "" {
			model = openai.ChatModel(c.Model)
		}
		return connector.NewOpenAIConnector(client, model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", c.Provider)
	}
}
