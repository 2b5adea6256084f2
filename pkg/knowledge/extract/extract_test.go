package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMarkdown(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		filename    string
		content     string
		wantTitle   string
		wantChapter int
	}{
		{
			name:        "h1 title and chapter prefix",
			filename:    "03-vegetative-stage.md",
			content:     "# The Vegetative Stage\n\nKeep lights at 18/6.",
			wantTitle:   "The Vegetative Stage",
			wantChapter: 3,
		},
		{
			name:        "no heading falls back to filename",
			filename:    "appendix.md",
			content:     "Nutrient schedules by medium.",
			wantTitle:   "appendix",
			wantChapter: 0,
		},
		{
			name:        "non numeric prefix ignored",
			filename:    "intro-notes.md",
			content:     "## Not a top level heading\n\nBody.",
			wantTitle:   "intro-notes",
			wantChapter: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			doc, err := Markdown(path)
			if err != nil {
				t.Fatalf("Markdown() error: %v", err)
			}
			if doc.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", doc.Title, tt.wantTitle)
			}
			if doc.ChapterNumber != tt.wantChapter {
				t.Errorf("ChapterNumber = %d, want %d", doc.ChapterNumber, tt.wantChapter)
			}
			if doc.Content != tt.content {
				t.Errorf("Content altered: %q", doc.Content)
			}
			if doc.File != tt.filename {
				t.Errorf("File = %q, want %q", doc.File, tt.filename)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapse space runs",
			in:   "pH  should   stay\tbetween\t\t5.8 and 6.2",
			want: "pH should stay\tbetween 5.8 and 6.2",
		},
		{
			name: "collapse newline runs",
			in:   "Week one.\n\n\n\n\nWeek two.",
			want: "Week one.\n\nWeek two.",
		},
		{
			name: "three newlines kept",
			in:   "A\n\n\nB",
			want: "A\n\n\nB",
		},
		{
			name: "trims edges",
			in:   "  \n content \n ",
			want: "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.in); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
