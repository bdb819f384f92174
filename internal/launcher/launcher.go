// Package launcher hands a finished prompt to an external chat application,
// either a locally installed CLI tool or a browser session.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DeliveryError indicates the external chat application could not be reached
// or refused the handoff
type DeliveryError struct {
	Target string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Target, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// toolCommands maps delivery targets to their CLI invocations. The prompt is
// appended as the final argument.
var toolCommands = map[string][]string{
	"claude": {"claude"},
	"gemini": {"gcloud", "ai", "models", "predict", "--model=gemini-pro"},
	"gpt-4":  {"openai", "api", "chat.completions.create", "-m", "gpt-4", "-g", "user"},
	"codex":  {"openai", "api", "completions.create", "-m", "code-davinci-002"},
}

var installHints = map[string]string{
	"claude": "see https://claude.ai/download for CLI installation",
	"gcloud": "install gcloud: https://cloud.google.com/sdk/docs/install",
	"openai": "install with: pip install openai",
}

// ChatLauncher spawns a locally installed CLI chat tool with the prompt as
// its argument
type ChatLauncher struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

func NewChatLauncher() *ChatLauncher {
	return &ChatLauncher{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Stdin = os.Stdin
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			return cmd.Run()
		},
	}
}

// Installed reports whether the CLI tool for target is available in PATH
func (cl *ChatLauncher) Installed(target string) bool {
	command, ok := toolCommands[target]
	if !ok {
		return false
	}
	_, err := cl.lookPath(command[0])
	return err == nil
}

// Deliver launches the chat tool for target with text as the prompt. Failures
// are reported to the caller and never re-enter the refinement flow.
func (cl *ChatLauncher) Deliver(ctx context.Context, text string, target string) error {
	command, ok := toolCommands[target]
	if !ok {
		return &DeliveryError{Target: target, Err: fmt.Errorf("unsupported target")}
	}

	tool := command[0]
	if _, err := cl.lookPath(tool); err != nil {
		hint := installHints[tool]
		if hint == "" {
			hint = "check the tool's documentation"
		}
		return &DeliveryError{Target: target, Err: fmt.Errorf("%s is not installed (%s)", tool, hint)}
	}

	args := append(append([]string{}, command[1:]...), text)
	if err := cl.run(ctx, tool, args...); err != nil {
		return &DeliveryError{Target: target, Err: err}
	}
	return nil
}
