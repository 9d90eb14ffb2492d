package sentiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EscapeMode selects how the text is embedded into the request body.
type EscapeMode string

const (
	// EscapeJSON encodes the text with a real JSON encoder.
	EscapeJSON EscapeMode = "json"
	// EscapeQuotes only replaces `"` with `\"`. Backslashes and control
	// characters pass through untouched, which can yield invalid JSON.
	EscapeQuotes EscapeMode = "quotes"
)

// ParseEscapeMode maps a config value onto an EscapeMode.
func ParseEscapeMode(raw string) (EscapeMode, error) {
	switch EscapeMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", EscapeJSON:
		return EscapeJSON, nil
	case EscapeQuotes:
		return EscapeQuotes, nil
	default:
		return "", fmt.Errorf("unknown escape mode %q", raw)
	}
}

// BuildRequestBody renders the `{"text": ...}` payload. Both modes produce the
// same bytes for text without quotes, backslashes or control characters.
func BuildRequestBody(text string, mode EscapeMode) ([]byte, error) {
	switch mode {
	case EscapeQuotes:
		return []byte(`{"text": "` + strings.ReplaceAll(text, `"`, `\"`) + `"}`), nil
	case EscapeJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(text); err != nil {
			return nil, fmt.Errorf("encode text: %w", err)
		}
		encoded := bytes.TrimRight(buf.Bytes(), "\n")

		out := make([]byte, 0, len(encoded)+len(`{"text": }`))
		out = append(out, `{"text": `...)
		out = append(out, encoded...)
		out = append(out, '}')
		return out, nil
	default:
		return nil, fmt.Errorf("unknown escape mode %q", mode)
	}
}
