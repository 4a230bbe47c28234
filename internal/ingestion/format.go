// Package ingestion turns uploaded or downloaded resume documents into plain
// text. Each format has an ordered list of extraction strategies; the first
// one that yields non-empty text wins and failures never escape.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

// UnsupportedFormatError is returned when no extractor exists for a format.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", string(e.Format))
}

// Valid reports whether f has an extractor.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatDOC, FormatText, FormatHTML:
		return true
	}
	return false
}

// FormatFromFilename maps a file extension to a Format. Unknown extensions
// are treated as plain text.
func FormatFromFilename(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".doc":
		return FormatDOC
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// DetectFormat picks a format from an HTTP media type, sniffing the body when
// the media type is missing or generic.
func DetectFormat(mediaType string, body []byte) Format {
	switch mediaType {
	case "application/pdf":
		return FormatPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FormatDOCX
	case "application/msword":
		return FormatDOC
	case "text/html", "application/xhtml+xml":
		return FormatHTML
	case "text/plain":
		return FormatText
	}

	switch {
	case bytes.HasPrefix(body, []byte("%PDF")):
		return FormatPDF
	case bytes.HasPrefix(body, []byte("PK\x03\x04")):
		return FormatDOCX
	case bytes.HasPrefix(body, []byte("\xD0\xCF\x11\xE0")):
		return FormatDOC
	}

	head := strings.ToLower(string(body[:min(len(body), 512)]))
	if strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html") {
		return FormatHTML
	}
	return FormatText
}
