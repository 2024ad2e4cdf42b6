package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsightClientDefaultsToGemini(t *testing.T) {
	client, err := NewInsightClient("", "")
	require.NoError(t, err)
	gemini, ok := client.(*GeminiInsightClient)
	require.True(t, ok)
	assert.Equal(t, "gemini-2.5-flash-preview-09-2025", gemini.model)
}

func TestNewInsightClientOpenAI(t *testing.T) {
	client, err := NewInsightClient("openai", "gpt-4o")
	require.NoError(t, err)
	oa, ok := client.(*OpenAIInsightClient)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", oa.model)
}

func TestNewInsightClientUnknownProvider(t *testing.T) {
	_, err := NewInsightClient("llama-at-home", "")
	assert.Error(t, err)
}
