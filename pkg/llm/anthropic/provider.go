package anthropic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"grow-coach-be/pkg/llm"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1/messages"
	apiVersion     = "2023-06-01"

	// DefaultModel handles coaching chat; CalendarModel is the faster model
	// used for calendar generation where latency matters more than nuance.
	DefaultModel     = "claude-sonnet-4-6"
	CalendarModel    = "claude-haiku-4-5-20251001"
	defaultMaxTokens = 4096
)

// AnthropicProvider implements llm.LLMProvider against the Anthropic
// messages API, with SSE streaming support.
type AnthropicProvider struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, modelName string) *AnthropicProvider {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &AnthropicProvider{
		APIKey:    apiKey,
		BaseURL:   defaultBaseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Stream    bool               `json:"stream,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type anthropicStreamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

// buildRequest splits system messages out of the history (the messages API
// takes system instructions as a top-level field, not a message role).
func (p *AnthropicProvider) buildRequest(history []llm.Message, stream bool, opts ...llm.Option) *anthropicRequest {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}
	maxTokens := defaultMaxTokens
	if options.MaxTokens > 0 {
		maxTokens = options.MaxTokens
	}

	var systemParts []string
	messages := make([]anthropicMessage, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		if role == "system" {
			systemParts = append(systemParts, msg.Content)
			continue
		}
		messages = append(messages, anthropicMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	return &anthropicRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    strings.Join(systemParts, "\n\n"),
		Messages:  messages,
		Stream:    stream,
	}
}

func (p *AnthropicProvider) send(ctx context.Context, payload *anthropicRequest) (*http.Response, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("anthropic error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return resp, nil
}

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	resp, err := p.send(ctx, p.buildRequest(history, false, opts...))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var result anthropicResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("anthropic api error: %s", result.Error.Message)
	}

	var sb strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

func (p *AnthropicProvider) ChatStream(ctx context.Context, history []llm.Message, onDelta llm.StreamFunc, opts ...llm.Option) error {
	resp, err := p.send(ctx, p.buildRequest(history, true, opts...))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")

		var event anthropicStreamEvent
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			continue
		}
		if event.Type == "content_block_delta" && event.Delta.Type == "text_delta" {
			if err := onDelta(event.Delta.Text); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}
