package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClarifyMessage(t *testing.T) {
	pr, err := newPromptRenderer()
	require.NoError(t, err)

	message, err := pr.renderClarifyMessage("write a blog post")
	require.NoError(t, err)

	assert.Contains(t, message, "write a blog post")
	assert.Contains(t, message, "one question\nper line")
	// System prompt comes before the task instruction
	assert.True(t, strings.HasPrefix(message, "You are a prompt refinement assistant"))
}

func TestRenderOptimizeMessage_PracticesPreambleFirst(t *testing.T) {
	pr, err := newPromptRenderer()
	require.NoError(t, err)

	message, err := pr.renderOptimizeMessage("draft", []string{"Q?"}, []string{"A"}, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(message, "PROMPTING PRACTICES"))
	assert.Contains(t, message, "END PRACTICES")
	assert.Contains(t, message, "Q1: Q?")
	assert.Contains(t, message, "A1: A")
}

func TestRenderOptimizeMessage_EmptyQA(t *testing.T) {
	pr, err := newPromptRenderer()
	require.NoError(t, err)

	message, err := pr.renderOptimizeMessage("draft", nil, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, message, "Original draft prompt: draft")
	assert.NotContains(t, message, "Q1:")
}
