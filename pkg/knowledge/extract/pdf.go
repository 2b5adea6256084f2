package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	runsOfSpaces   = regexp.MustCompile(`[ \t]{2,}`)
	runsOfNewlines = regexp.MustCompile(`\n{4,}`)
)

// PDF extracts plain text from a PDF file. Extracted text is passed through
// NormalizeWhitespace because PDF extraction tends to produce ragged spacing.
// The title is the filename without extension.
func PDF(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text %s: %w", path, err)
	}

	raw, err := io.ReadAll(textReader)
	if err != nil {
		return nil, fmt.Errorf("read pdf text %s: %w", path, err)
	}

	filename := filepath.Base(path)
	title := strings.TrimSuffix(filename, filepath.Ext(filename))

	return &Document{
		Title:   title,
		Content: NormalizeWhitespace(string(raw)),
		File:    filename,
	}, nil
}

// NormalizeWhitespace collapses runs of 2+ spaces/tabs into one space and
// runs of 4+ newlines into a paragraph break, then trims the result.
func NormalizeWhitespace(text string) string {
	text = runsOfSpaces.ReplaceAllString(text, " ")
	text = runsOfNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
