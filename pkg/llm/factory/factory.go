package factory

import (
	"fmt"

	"grow-coach-be/pkg/llm"
	"grow-coach-be/pkg/llm/anthropic"
	"grow-coach-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, anthropicKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "anthropic":
		if anthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return anthropic.NewAnthropicProvider(anthropicKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
