package embedding

// DisabledProvider is used when no embedding credentials are configured.
// It returns an empty vector and never errors, which downstream retrieval
// treats as "no context available" rather than a failure. Chat keeps working
// without RAG grounding.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	return &EmbeddingResponse{}, nil
}
