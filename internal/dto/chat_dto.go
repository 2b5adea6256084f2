package dto

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// GrowContext is the user's current grow state, injected into the system
// prompt so coaching answers match the plant's stage.
type GrowContext struct {
	Stage      string `json:"stage"`
	Week       *int   `json:"week"`
	StrainType string `json:"strainType"`
}

type ChatRequest struct {
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	GrowContext *GrowContext  `json:"growContext"`
}

// ChatStreamChunk is one SSE frame payload: {"text": "..."} per token delta.
type ChatStreamChunk struct {
	Text string `json:"text,omitempty"`
	Err  string `json:"error,omitempty"`
}
