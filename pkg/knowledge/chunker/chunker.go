package chunker

import (
	"regexp"
	"strings"
)

const (
	// DefaultChunkSize matches the guidebook ingestion default (characters).
	DefaultChunkSize = 1500
	// DefaultOverlap is carried from the tail of each chunk into the next.
	DefaultOverlap = 200
)

var (
	paragraphSep = regexp.MustCompile(`\n\n+`)
	sentenceEnd  = regexp.MustCompile(`[^.!?]+[.!?]+(\s|$)`)
)

// Split breaks a document into overlapping chunks bounded by maxSize characters.
// Paragraph boundaries are preferred; a single paragraph longer than maxSize
// falls back to sentence-level splitting. Overlap duplicates the tail of the
// previous chunk into the next one to preserve retrieval context across
// boundaries, so chunks are NOT a lossless partition of the input.
func Split(text string, maxSize, overlap int) []string {
	if maxSize <= 0 {
		maxSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []string
	current := ""

	for _, para := range paragraphSep.Split(text, -1) {
		if len(current)+len("\n\n")+len(para) <= maxSize {
			if current == "" {
				current = para
			} else {
				current = current + "\n\n" + para
			}
			continue
		}

		if current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
			current = tail(current, overlap) + "\n\n" + para
			continue
		}

		// Single paragraph exceeds maxSize: fall back to sentences.
		sentences := splitSentences(para)
		for _, sentence := range sentences {
			if len(current)+1+len(sentence) <= maxSize {
				if current == "" {
					current = sentence
				} else {
					current = current + " " + sentence
				}
			} else {
				if current != "" {
					chunks = append(chunks, strings.TrimSpace(current))
				}
				current = sentence
			}
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

// splitSentences cuts a paragraph on `.`, `!` or `?` followed by whitespace.
// A paragraph with no terminal punctuation is returned whole.
func splitSentences(para string) []string {
	matches := sentenceEnd.FindAllString(para, -1)
	if len(matches) == 0 {
		return []string{para}
	}
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m != "" {
			sentences = append(sentences, m)
		}
	}
	return sentences
}

// tail returns the last n characters of s (rune-safe).
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
