package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"line endings", "a\r\nb\rc", "a\nb\nc"},
		{"inner spaces", "Line    with \t multiple   spaces", "Line with multiple spaces"},
		{"non-breaking space", "John\u00a0Smith", "John Smith"},
		{"blank line runs", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"surrounding whitespace", "\n\n  Title  \n", "Title"},
		{"bullets kept", "- Item 1\n* Item 2", "- Item 1\n* Item 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestIngestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Smith\nGo developer"), 0o644))

	doc, err := NewExtractor(nil).IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith\nGo developer", doc.Text)
	assert.Equal(t, FormatText, doc.Metadata.Format)
	assert.Equal(t, "text", doc.Metadata.Strategy)
	assert.Equal(t, 23, doc.Metadata.Chars)
	assert.True(t, doc.Metadata.TextExtracted())
	assert.Len(t, doc.Metadata.Hash, 64)
	assert.NotEmpty(t, doc.Metadata.Timestamp)
}

func TestIngestFromFile_NotFound(t *testing.T) {
	_, err := NewExtractor(nil).IngestFromFile(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestMetadata_ToJSON(t *testing.T) {
	meta := NewMetadata([]byte("abc"), "resume.txt")
	meta.Format = FormatText
	b, err := meta.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"format": "txt"`)
	assert.Contains(t, string(b), `"hash": "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"`)
}
