package domain

import (
	"crypto/sha1" //nolint:gosec // non-cryptographic id generation
	"encoding/hex"
	"time"
)

// Analysis is one successful round trip to the sentiment endpoint.
type Analysis struct {
	ID         string
	Text       string
	Response   string
	Label      string
	Confidence float64
	Endpoint   string
	AnalyzedAt time.Time
}

// TextID returns the stable identifier used to dedupe publishes of the same text.
func TextID(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
