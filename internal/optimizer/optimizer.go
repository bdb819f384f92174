// Package optimizer implements the prompt refinement orchestrator: it elicits
// clarifying questions for a draft prompt and synthesizes refined candidates
// under accumulating user feedback, carrying the full conversation history
// across every model call.
package optimizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptpolish/promptpolish/internal/connector"
)

// OptimizationError wraps a connector or template failure during a clarify or
// synthesize call. The session survives the failure; the caller may retry the
// same step.
type OptimizationError struct {
	Op  string
	Err error
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf("optimization failed during %s: %v", e.Op, e.Err)
}

func (e *OptimizationError) Unwrap() error {
	return e.Err
}

// Optimizer owns a single session's conversation log and drives the
// clarify/synthesize protocol. It is not safe for concurrent use; one session
// is live at a time.
type Optimizer struct {
	connector connector.Connector
	renderer  *promptRenderer

	// turns is append-only: each successful model round-trip appends exactly
	// two entries, the outgoing message then the returned content
	turns []connector.Turn
}

// New creates an Optimizer for one refinement session
func New(c connector.Connector) (*Optimizer, error) {
	renderer, err := newPromptRenderer()
	if err != nil {
		return nil, &OptimizationError{Op: "init", Err: err}
	}
	return &Optimizer{
		connector: c,
		renderer:  renderer,
	}, nil
}

// Clarify asks the model for clarifying questions about a draft prompt. It is
// the first call of a session and sends no prior context. Each non-blank line
// of the response becomes one question, in response order. The (request,
// response) pair is appended to the conversation log only if the call
// succeeds.
func (o *Optimizer) Clarify(ctx context.Context, draft string) ([]string, error) {
	message, err := o.renderer.renderClarifyMessage(draft)
	if err != nil {
		return nil, &OptimizationError{Op: "clarify", Err: err}
	}

	reply, err := o.connector.Send(ctx, message, nil)
	if err != nil {
		return nil, &OptimizationError{Op: "clarify", Err: err}
	}

	o.appendRoundTrip(message, reply.Content)

	var questions []string
	for _, line := range strings.Split(reply.Content, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// Synthesize asks the model for a refined prompt composed from the draft, the
// ordered question/answer pairs, and every refinement note accumulated so
// far. The full conversation log is sent as context so the model sees the
// clarify exchange and all prior synthesis attempts. Returns the trimmed
// response as the new candidate, superseding any previous one.
func (o *Optimizer) Synthesize(ctx context.Context, draft string, questions, answers, notes []string) (string, error) {
	if len(answers) != len(questions) {
		return "", &OptimizationError{
			Op:  "synthesize",
			Err: fmt.Errorf("answer count %d does not match question count %d", len(answers), len(questions)),
		}
	}

	message, err := o.renderer.renderOptimizeMessage(draft, questions, answers, notes)
	if err != nil {
		return "", &OptimizationError{Op: "synthesize", Err: err}
	}

	reply, err := o.connector.Send(ctx, message, o.turns)
	if err != nil {
		return "", &OptimizationError{Op: "synthesize", Err: err}
	}

	o.appendRoundTrip(message, reply.Content)

	return strings.TrimSpace(reply.Content), nil
}

// History returns a snapshot copy of the conversation log
func (o *Optimizer) History() []connector.Turn {
	snapshot := make([]connector.Turn, len(o.turns))
	copy(snapshot, o.turns)
	return snapshot
}

func (o *Optimizer) appendRoundTrip(request, response string) {
	o.turns = append(o.turns,
		connector.Turn{Role: connector.RoleUser, Content: request},
		connector.Turn{Role: connector.RoleAssistant, Content: response},
	)
}
