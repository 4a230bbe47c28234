package ingestion

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the document cannot be downloaded
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when HTML cannot be parsed
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// URLOptions configures IngestFromURL.
type URLOptions struct {
	// UseBrowser renders short HTML pages in headless Chrome.
	UseBrowser bool
	Fetch      *fetch.Options
}

// IngestFromURL downloads a resume and extracts its text. PDF and Word
// documents go through the regular strategies; HTML pages use host-specific
// selectors and, when enabled, a headless browser for client-rendered pages.
func (e *Extractor) IngestFromURL(ctx context.Context, urlStr string, opts URLOptions) (*Document, error) {
	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	format := DetectFormat(result.MediaType(), result.Body)
	meta := NewMetadata(result.Body, urlStr)
	meta.Format = format
	log := e.logger.With(zap.String("url", urlStr), zap.String("format", string(format)))

	if format != FormatHTML {
		res, err := e.Extract(result.Body, format)
		if err != nil {
			return nil, err
		}
		meta.Strategy = res.Strategy
		meta.Chars = len([]rune(res.Text))
		log.Debug("extracted document", zap.String("strategy", res.Strategy), zap.Int("chars", meta.Chars))
		return &Document{Text: res.Text, Metadata: meta}, nil
	}

	platform := fetch.DetectPlatform(urlStr)
	meta.Platform = string(platform)
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	meta.Strategy = "html_main_text"

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		log.Debug("content too short, rendering in browser", zap.Int("chars", len(text)))
		rendered, browserErr := fetch.WithBrowser(ctx, urlStr, fetch.DefaultBrowserTimeout, e.logger)
		if browserErr != nil {
			log.Warn("browser rendering failed, keeping HTTP content", zap.Error(browserErr))
		} else if browserText, err := fetch.ExtractMainText(rendered, contentSelectors, noiseSelectors...); err == nil {
			text = browserText
			meta.Strategy = "html_browser"
		}
	}

	text = CleanText(text)
	meta.Chars = len([]rune(text))
	return &Document{Text: text, Metadata: meta}, nil
}
