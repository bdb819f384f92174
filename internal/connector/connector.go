// Package connector provides clients for sending messages to LLM providers.
package connector

import (
	"context"
	"fmt"
)

// Roles used in conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in a model dialogue history
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the fixed-shape result of a model call
type Reply struct {
	Content string `json:"content"`
}

// Connector sends a message to a model provider, optionally replaying prior
// conversation turns for continuity. A single synchronous round-trip; no state
// survives a call.
type Connector interface {
	Send(ctx context.Context, message string, history []Turn) (Reply, error)
}

// ConnectorError indicates the model provider was unreachable, rejected the
// request, or returned a malformed or empty payload
type ConnectorError struct {
	Provider string
	Err      error
}

func (e *ConnectorError) Error() string {
	return fmt.Sprintf("%s connector: %v", e.Provider, e.Err)
}

func (e *ConnectorError) Unwrap() error {
	return e.Err
}
