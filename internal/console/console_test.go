package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskDraft_RetriesUntilNonEmpty(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("\n   \nwrite a blog post\n"), &out)

	draft, err := c.AskDraft()
	require.NoError(t, err)

	assert.Equal(t, "write a blog post", draft)
	assert.Contains(t, out.String(), "You need to enter something!")
}

func TestAskDraft_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("  write a blog post  \n"), &out)

	draft, err := c.AskDraft()
	require.NoError(t, err)
	assert.Equal(t, "write a blog post", draft)
}

func TestCollectAnswers_OnePerQuestion(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("neural nets\n\nbeginners\n"), &out)

	answers, err := c.CollectAnswers([]string{"What topic?", "What audience?"})
	require.NoError(t, err)

	assert.Equal(t, []string{"neural nets", "beginners"}, answers)
	assert.Contains(t, out.String(), "1. What topic?")
	assert.Contains(t, out.String(), "2. What audience?")
	assert.Contains(t, out.String(), "Please provide an answer.")
}

func TestCollectAnswers_ZeroQuestions(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader(""), &out)

	answers, err := c.CollectAnswers(nil)
	require.NoError(t, err)
	assert.Empty(t, answers)
	assert.Empty(t, out.String())
}

func TestAskApproval(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("maybe\nY\n"), &out)

	approved, err := c.AskApproval()
	require.NoError(t, err)

	assert.True(t, approved)
	assert.Contains(t, out.String(), "Please enter 'y' for yes or 'n' for no.")
}

func TestAskApproval_Reject(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("n\n"), &out)

	approved, err := c.AskApproval()
	require.NoError(t, err)
	assert.False(t, approved)
}

func TestAskRefinementNote(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("be concise\n"), &out)

	note, err := c.AskRefinementNote()
	require.NoError(t, err)
	assert.Equal(t, "be concise", note)
}

func TestShowComparison_RendersBothPanels(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader(""), &out)

	c.ShowComparison("original text", "candidate text")

	assert.Contains(t, out.String(), "ORIGINAL PROMPT")
	assert.Contains(t, out.String(), "OPTIMIZED PROMPT")
	assert.Contains(t, out.String(), "original text")
	assert.Contains(t, out.String(), "candidate text")
}

func TestReadLine_EOF(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader(""), &out)

	_, err := c.AskDraft()
	assert.Error(t, err)
}

func TestAskPassword_FallsBackToPlainRead(t *testing.T) {
	var out bytes.Buffer
	c := NewWithIO(strings.NewReader("hunter2\n"), &out)

	pwd, err := c.AskPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pwd)
}
