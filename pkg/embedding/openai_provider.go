package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxInputChars is the character ceiling for text-embedding-3-small input.
// Longer text is silently truncated before the call.
const maxInputChars = 8191

// OpenAIProvider implements EmbeddingProvider using the OpenAI embeddings API
// (text-embedding-3-small, 1536 dimensions).
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type openaiEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openaiEmbeddingResponse struct {
	Data []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openai.com/v1/embeddings",
		model:   "text-embedding-3-small",
		client:  &http.Client{},
	}
}

func (p *OpenAIProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	reqBody := openaiEmbeddingRequest{
		Model: p.model,
		Input: text,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai embedding error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var openaiResp openaiEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &openaiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if openaiResp.Error != nil {
		return nil, fmt.Errorf("openai api returned error: %s", openaiResp.Error.Message)
	}

	if len(openaiResp.Data) == 0 {
		return nil, fmt.Errorf("empty embeddings from openai api")
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: openaiResp.Data[0].Embedding,
		},
	}, nil
}
