package service

import (
	"context"
	"strings"
	"testing"

	"grow-coach-be/internal/dto"
	"grow-coach-be/pkg/rag/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatStreamInjectsKnowledgeContext(t *testing.T) {
	knowledge := &fakeKnowledgeService{
		chunks: []prompt.RetrievedChunk{
			{Title: "Flower Week 1 (Part 1/3)", Content: "Flip to 12/12 and drop RH to 50%.", Similarity: 0.9},
		},
	}
	provider := &fakeLLM{deltas: []string{"Flip ", "to ", "12/12."}}

	svc := NewChatService(knowledge, provider, testLogger, 3)

	var got strings.Builder
	err := svc.ChatStream(context.Background(), &dto.ChatRequest{
		Messages: []dto.ChatMessage{
			{Role: "assistant", Content: "How can I help your grow?"},
			{Role: "user", Content: "when do I flip to flower?"},
		},
	}, func(delta string) error {
		got.WriteString(delta)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "Flip to 12/12.", got.String())
	assert.Equal(t, "when do I flip to flower?", knowledge.lastQuery,
		"retrieval should key off the latest user message")

	require.NotEmpty(t, provider.lastHistory)
	system := provider.lastHistory[0]
	assert.Equal(t, "system", system.Role)
	assert.Contains(t, system.Content, "Dr. Pesos")
	assert.Contains(t, system.Content, "[Source 1: Flower Week 1 (Part 1/3)]")
	assert.Contains(t, system.Content, "Flip to 12/12 and drop RH to 50%.")

	// conversation history follows the system message unchanged
	require.Len(t, provider.lastHistory, 3)
	assert.Equal(t, "assistant", provider.lastHistory[1].Role)
	assert.Equal(t, "user", provider.lastHistory[2].Role)
}

func TestChatStreamWithoutRetrievedChunks(t *testing.T) {
	knowledge := &fakeKnowledgeService{chunks: nil}
	provider := &fakeLLM{deltas: []string{"ok"}}

	svc := NewChatService(knowledge, provider, testLogger, 3)
	err := svc.ChatStream(context.Background(), &dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: "user", Content: "hello"}},
	}, func(string) error { return nil })

	require.NoError(t, err)
	system := provider.lastHistory[0].Content
	assert.NotContains(t, system, "RELEVANT KNOWLEDGE BASE CONTEXT",
		"no context banner when retrieval comes back empty")
}

func TestChatStreamAppendsGrowContext(t *testing.T) {
	week := 3
	knowledge := &fakeKnowledgeService{}
	provider := &fakeLLM{deltas: []string{"ok"}}

	svc := NewChatService(knowledge, provider, testLogger, 3)
	err := svc.ChatStream(context.Background(), &dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: "user", Content: "leaves are drooping"}},
		GrowContext: &dto.GrowContext{
			Stage:      "vegetative",
			Week:       &week,
			StrainType: "autoflower",
		},
	}, func(string) error { return nil })

	require.NoError(t, err)
	system := provider.lastHistory[0].Content
	assert.Contains(t, system, "USER'S CURRENT GROW CONTEXT")
	assert.Contains(t, system, "Stage: vegetative")
	assert.Contains(t, system, "Week 3")
	assert.Contains(t, system, "autoflower")
}

func TestChatStreamPropagatesProviderError(t *testing.T) {
	knowledge := &fakeKnowledgeService{}
	provider := &fakeLLM{streamErr: assert.AnError}

	svc := NewChatService(knowledge, provider, testLogger, 3)
	err := svc.ChatStream(context.Background(), &dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: "user", Content: "hi"}},
	}, func(string) error { return nil })

	assert.Error(t, err)
}
