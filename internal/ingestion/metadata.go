package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes where an ingested document came from and how its text
// was obtained.
type Metadata struct {
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex digest of the raw bytes
	Format    Format `json:"format"`
	Strategy  string `json:"strategy,omitempty"`
	Chars     int    `json:"chars"`
	Platform  string `json:"platform,omitempty"`
}

// NewMetadata creates a Metadata for raw document bytes.
func NewMetadata(raw []byte, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(raw),
	}
}

func computeHash(raw []byte) string {
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:])
}

// TextExtracted reports whether any strategy produced text.
func (m *Metadata) TextExtracted() bool {
	return m.Chars > 0
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return b, nil
}
