package chunker

import (
	"strings"
	"testing"
)

func TestSplitShortDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single paragraph",
			text: "Flush plants two weeks before harvest.",
			want: "Flush plants two weeks before harvest.",
		},
		{
			name: "multiple paragraphs under limit",
			text: "Check pH daily.\n\nKeep RH at 60%.",
			want: "Check pH daily.\n\nKeep RH at 60%.",
		},
		{
			name: "leading and trailing whitespace trimmed",
			text: "  Top-dress with compost.  ",
			want: "Top-dress with compost.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, 1500, 200)
			if len(chunks) != 1 {
				t.Fatalf("chunk count = %d, want 1", len(chunks))
			}
			if chunks[0] != tt.want {
				t.Errorf("chunk = %q, want %q", chunks[0], tt.want)
			}
		})
	}
}

func TestSplitEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n\n"} {
		if chunks := Split(text, 1500, 200); len(chunks) != 0 {
			t.Errorf("Split(%q) = %d chunks, want 0", text, len(chunks))
		}
	}
}

func TestSplitParagraphBoundaries(t *testing.T) {
	text := "Para A is here.\n\nPara B is here.\n\nPara C is here."
	chunks := Split(text, 20, 5)

	if len(chunks) < 2 || len(chunks) > 3 {
		t.Fatalf("chunk count = %d, want 2-3", len(chunks))
	}

	// Every paragraph must survive in at least one chunk.
	joined := strings.Join(chunks, "\n")
	for _, para := range []string{"Para A is here.", "Para B is here.", "Para C is here."} {
		if !strings.Contains(joined, para) {
			t.Errorf("paragraph %q missing from chunks %q", para, chunks)
		}
	}
}

func TestSplitOverlapCarried(t *testing.T) {
	text := "First paragraph with enough text to fill a chunk.\n\nSecond paragraph continues the topic."
	chunks := Split(text, 60, 10)

	if len(chunks) != 2 {
		t.Fatalf("chunk count = %d, want 2", len(chunks))
	}

	overlapText := tail(chunks[0], 10)
	if !strings.HasPrefix(chunks[1], overlapText) {
		t.Errorf("second chunk %q does not start with overlap %q", chunks[1], overlapText)
	}
}

func TestSplitOversizedParagraphFallsBackToSentences(t *testing.T) {
	// One paragraph, no blank lines, well over maxSize.
	text := "Water daily in week one. Feed half strength in week two. Raise lights as plants stretch. Defoliate lower growth in week four."
	chunks := Split(text, 60, 10)

	if len(chunks) < 2 {
		t.Fatalf("chunk count = %d, want >= 2", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 60 {
			t.Errorf("chunk %d length %d exceeds maxSize 60: %q", i, len(c), c)
		}
	}
	joined := strings.Join(chunks, " ")
	for _, sentence := range []string{"Water daily", "Feed half strength", "Raise lights", "Defoliate lower"} {
		if !strings.Contains(joined, sentence) {
			t.Errorf("sentence %q missing from chunks", sentence)
		}
	}
}

func TestSplitIndivisibleSentenceExceedsMax(t *testing.T) {
	// A single sentence longer than maxSize cannot be split further; it is
	// emitted as-is rather than truncated.
	text := "Thisisonelongunbrokensentencewithoutanypunctuationthatcannotbedividedatall"
	chunks := Split(text, 20, 5)

	if len(chunks) != 1 {
		t.Fatalf("chunk count = %d, want 1", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("oversized sentence was altered: %q", chunks[0])
	}
}

func TestSplitOrderingStable(t *testing.T) {
	text := "Alpha block one.\n\nBravo block two.\n\nCharlie block three.\n\nDelta block four."
	chunks := Split(text, 35, 5)

	posAlpha := strings.Index(strings.Join(chunks, "|"), "Alpha")
	posDelta := strings.Index(strings.Join(chunks, "|"), "Delta")
	if posAlpha == -1 || posDelta == -1 || posAlpha > posDelta {
		t.Errorf("document order not preserved across chunks: %q", chunks)
	}
}
