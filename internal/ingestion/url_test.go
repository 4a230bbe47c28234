package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "not-a-url", "example.com", "http://"} {
		t.Run(u, func(t *testing.T) {
			_, err := NewExtractor(nil).IngestFromURL(context.Background(), u, URLOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
		})
	}
}

func TestIngestFromURL_HTMLPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html><body>
<nav>Home | Blog</nav>
<div id="resume">
<h1>Jane Doe</h1>
<ul><li>Go</li><li>Kubernetes</li></ul>
</div>
<footer>Footer</footer>
</body></html>`))
	}))
	defer server.Close()

	doc, err := NewExtractor(nil).IngestFromURL(context.Background(), server.URL, URLOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo\nKubernetes", doc.Text)
	assert.Equal(t, FormatHTML, doc.Metadata.Format)
	assert.Equal(t, "html_main_text", doc.Metadata.Strategy)
	assert.Equal(t, "unknown", doc.Metadata.Platform)
}

func TestIngestFromURL_PlainTextDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("John Smith\n5+ years of experience"))
	}))
	defer server.Close()

	doc, err := NewExtractor(nil).IngestFromURL(context.Background(), server.URL, URLOptions{})
	require.NoError(t, err)
	assert.Equal(t, "John Smith\n5+ years of experience", doc.Text)
	assert.Equal(t, "text", doc.Metadata.Strategy)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewExtractor(nil).IngestFromURL(context.Background(), server.URL, URLOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
	assert.Contains(t, err.Error(), "403")
}
