package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerSpaceRun = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, collapses runs of spaces inside a line
// and keeps at most one blank line between blocks. Line structure is
// preserved because the field extractors work line by line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(innerSpaceRun.ReplaceAllString(line, " "))
	}

	return strings.TrimSpace(blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// Document is an ingested resume: its text plus provenance.
type Document struct {
	Text     string
	Metadata *Metadata
}

// IngestFromFile reads a resume from disk and extracts its text. The format
// is chosen from the file extension.
func (e *Extractor) IngestFromFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	res, err := e.Extract(content, FormatFromFilename(path))
	if err != nil {
		return nil, err
	}

	meta := NewMetadata(content, path)
	meta.Format = res.Format
	meta.Strategy = res.Strategy
	meta.Chars = len([]rune(res.Text))
	return &Document{Text: res.Text, Metadata: meta}, nil
}
