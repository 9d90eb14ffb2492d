package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Label is the normalized sentiment class.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Result is the success payload returned by the endpoint.
type Result struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	Sentiment       Label     `json:"sentiment"`
	ConfidenceScore float64   `json:"confidenceScore"`
	Timestamp       time.Time `json:"timestamp"`
	Source          string    `json:"source"`
	Status          string    `json:"status"`
}

// NormalizeLabel maps English and Portuguese labels onto a Label; anything
// unrecognized is neutral.
func NormalizeLabel(raw string) Label {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive", "positivo":
		return Positive
	case "negative", "negativo":
		return Negative
	default:
		return Neutral
	}
}

// ParseResult decodes a 200 body into a Result.
func ParseResult(raw string) (Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if strings.TrimSpace(string(res.Sentiment)) == "" {
		return Result{}, fmt.Errorf("%w: sentiment field missing", ErrMalformedResult)
	}
	res.Sentiment = NormalizeLabel(string(res.Sentiment))
	return res, nil
}
