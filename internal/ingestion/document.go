package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/fetch"
)

type strategy struct {
	name string
	fn   func(data []byte) (string, error)
}

// strategies lists the extraction strategies per format in priority order.
var strategies = map[Format][]strategy{
	FormatPDF: {
		{"pdf_plain_text", pdfPlainText},
		{"pdf_pages", pdfPages},
		{"pdf_docconv", pdfDocconv},
	},
	FormatDOCX: {
		{"docx_paragraphs", docxParagraphs},
		{"docx_docconv", docxDocconv},
	},
	FormatDOC: {
		{"doc_docconv", docDocconv},
		{"doc_text", decodeText},
	},
	FormatText: {
		{"text", decodeText},
	},
	FormatHTML: {
		{"html_main_text", htmlMainText},
	},
}

// Extraction is the outcome of running a format's strategies.
type Extraction struct {
	Text     string
	Format   Format
	Strategy string
}

// Extractor runs extraction strategies and logs the ones that fail.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an Extractor. A nil logger discards output.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract returns the text of data. Exhausting every strategy yields an
// empty Extraction and no error; only an unknown format is an error.
func (e *Extractor) Extract(data []byte, format Format) (Extraction, error) {
	list, ok := strategies[format]
	if !ok {
		return Extraction{}, &UnsupportedFormatError{Format: format}
	}

	for _, s := range list {
		text, err := runStrategy(s, data)
		if err != nil {
			e.logger.Debug("extraction strategy failed",
				zap.String("format", string(format)),
				zap.String("strategy", s.name),
				zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) != "" {
			return Extraction{Text: text, Format: format, Strategy: s.name}, nil
		}
	}

	e.logger.Warn("no text extracted", zap.String("format", string(format)), zap.Int("bytes", len(data)))
	return Extraction{Format: format}, nil
}

// Extract is a convenience wrapper around a silent Extractor.
func Extract(data []byte, format Format) (string, error) {
	res, err := NewExtractor(nil).Extract(data, format)
	return res.Text, err
}

// runStrategy converts panics from third-party parsers on malformed input
// into ordinary errors.
func runStrategy(s strategy, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", s.name, r)
		}
	}()
	return s.fn(data)
}

func pdfPlainText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return CleanText(string(b)), nil
}

func pdfPages(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return CleanText(strings.Join(pages, "\n")), nil
}

func pdfDocconv(data []byte) (string, error) {
	text, _, err := docconv.ConvertPDF(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("docconv PDF conversion failed: %w", err)
	}
	return CleanText(text), nil
}

// docxParagraphs reads word/document.xml and joins the text of each w:p
// element with newlines.
func docxParagraphs(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer func() { _ = rc.Close() }()

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

func docxDocconv(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("docconv DOCX conversion failed: %w", err)
	}
	return text, nil
}

func docDocconv(data []byte) (string, error) {
	text, _, err := docconv.ConvertDoc(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("docconv DOC conversion failed: %w", err)
	}
	return CleanText(text), nil
}

func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

func htmlMainText(data []byte) (string, error) {
	return fetch.ExtractMainText(string(data), fetch.ResumePageSelectors())
}
