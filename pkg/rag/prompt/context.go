package prompt

import (
	"fmt"
	"strings"
)

// RetrievedChunk is the retrieval output consumed by prompt assembly.
type RetrievedChunk struct {
	Id         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

const contextBanner = "===================================================================="

// FormatKnowledgeContext renders retrieved guidebook chunks as a labeled
// context block for the LLM system prompt. Returns "" for zero chunks so
// callers can concatenate the result unconditionally.
func FormatKnowledgeContext(chunks []RetrievedChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	blocks := make([]string, len(chunks))
	for i, chunk := range chunks {
		blocks[i] = fmt.Sprintf("[Source %d: %s]\n%s", i+1, chunk.Title, chunk.Content)
	}
	context := strings.Join(blocks, "\n\n---\n\n")

	return fmt.Sprintf(`

%s
RELEVANT KNOWLEDGE BASE CONTEXT
%s
The following sections from the cultivation guidebook are relevant to this question. Use this knowledge to inform your response, citing specific guidance where applicable.

%s
%s`, contextBanner, contextBanner, context, contextBanner)
}

// FormatGrowContext renders the user's current grow state for injection into
// the system prompt. Unknown fields degrade to "Unknown" rather than being
// omitted, mirroring how the coaching prompt expects a complete block.
func FormatGrowContext(stage string, week *int, strainType string) string {
	if stage == "" && week == nil && strainType == "" {
		return ""
	}

	weekLine := "Unknown"
	if week != nil {
		weekLine = fmt.Sprintf("Week %d", *week)
	}
	if stage == "" {
		stage = "Unknown"
	}
	if strainType == "" {
		strainType = "Unknown"
	}

	return fmt.Sprintf(`

%s
USER'S CURRENT GROW CONTEXT
%s
The user is currently in the following grow stage — tailor your responses accordingly:
• Stage: %s
• Week: %s
• Strain type: %s`, contextBanner, contextBanner, stage, weekLine, strainType)
}
