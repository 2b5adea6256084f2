package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var h1Pattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Document is the extracted form of a knowledge source file, ready for chunking.
type Document struct {
	Title         string
	Content       string
	ChapterNumber int
	File          string
}

// Markdown reads a markdown chapter file. The title is the first top-level
// heading, falling back to the filename. Chapter number comes from a leading
// "NN-" filename prefix (0 when absent).
func Markdown(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	filename := filepath.Base(path)
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	chapterNumber := 0
	if idx := strings.Index(name, "-"); idx > 0 {
		if n, err := strconv.Atoi(name[:idx]); err == nil {
			chapterNumber = n
		}
	}

	title := name
	if m := h1Pattern.FindStringSubmatch(string(raw)); m != nil {
		title = strings.TrimSpace(m[1])
	}

	return &Document{
		Title:         title,
		Content:       string(raw),
		ChapterNumber: chapterNumber,
		File:          filename,
	}, nil
}
