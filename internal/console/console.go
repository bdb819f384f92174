// Package console implements the terminal interaction surface: it presents
// questions and candidate prompts to the user and collects typed answers. All
// prompts block and re-ask until a non-empty, well-typed response is given.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	originalPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Padding(0, 1)

	candidatePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("2")).
				Padding(0, 1)
)

// Console reads from in and writes styled output to out
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// readPassword reads a password without echo when stdin is a terminal
	readPassword func() (string, error)
}

func New() *Console {
	c := &Console{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		c.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			return string(b), err
		}
	}
	return c
}

// NewWithIO creates a Console over arbitrary streams, for tests
func NewWithIO(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// AskDraft prompts for the initial draft prompt
func (c *Console) AskDraft() (string, error) {
	fmt.Fprintln(c.out, titleStyle.Render("Welcome to PromptPolish!"))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, questionStyle.Render("What would you like help with?"))
	return c.askNonEmpty("→ ", "You need to enter something!")
}

// CollectAnswers asks each clarifying question in order and returns one
// non-empty answer per question
func (c *Console) CollectAnswers(questions []string) ([]string, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, questionStyle.Render("Let me ask a few questions to improve your prompt:"))
	fmt.Fprintln(c.out)

	answers := make([]string, 0, len(questions))
	for i, question := range questions {
		fmt.Fprintln(c.out, questionStyle.Render(fmt.Sprintf("%d. %s", i+1, question)))
		answer, err := c.askNonEmpty("   → ", "Please provide an answer.")
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// ShowComparison renders the original and candidate prompts side by side
func (c *Console) ShowComparison(original, candidate string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, originalPanelStyle.Render("ORIGINAL PROMPT\n\n"+original))
	fmt.Fprintln(c.out, candidatePanelStyle.Render("OPTIMIZED PROMPT\n\n"+candidate))
}

// AskApproval asks a y/n question and re-asks until it gets one
func (c *Console) AskApproval() (bool, error) {
	for {
		fmt.Fprint(c.out, "\nDo you approve this prompt? (y/n): ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(c.out, errorStyle.Render("Please enter 'y' for yes or 'n' for no."))
	}
}

// AskRefinementNote asks what the user would like to change about the
// rejected candidate
func (c *Console) AskRefinementNote() (string, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, questionStyle.Render("What would you like to refine?"))
	fmt.Fprintln(c.out, dimStyle.Render("Example: 'Make it more technical' or 'Add focus on security'"))
	return c.askNonEmpty("→ ", "Please tell us what you'd like to change.")
}

// AskLine prompts with label and returns a non-empty trimmed line
func (c *Console) AskLine(label string) (string, error) {
	return c.askNonEmpty(label, "Please enter a value.")
}

// AskPassword prompts for a password, hiding input when stdin is a terminal
func (c *Console) AskPassword(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if c.readPassword != nil {
		pwd, err := c.readPassword()
		fmt.Fprintln(c.out)
		return pwd, err
	}
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Successf prints a success-styled line
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints an error-styled line
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Infof prints a dim status line
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Printf prints an unstyled line
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) askNonEmpty(prompt, complaint string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
		fmt.Fprintln(c.out, errorStyle.Render(complaint))
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
