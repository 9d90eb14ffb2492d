package publishers

import (
	"encoding/json"
	"time"

	"github.com/Adda-Baaj/sentiment-client/internal/domain"
)

// Event represents the payload published downstream for one analysis.
type Event struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Label      string          `json:"label,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
	RawBody    string          `json:"raw_body,omitempty"`
	Endpoint   string          `json:"endpoint"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// NewEvent constructs an Event for the given analysis. Valid JSON responses are
// embedded as-is; anything else is carried as a string.
func NewEvent(a domain.Analysis) Event {
	evt := Event{
		ID:         a.ID,
		Text:       a.Text,
		Label:      a.Label,
		Confidence: a.Confidence,
		Endpoint:   a.Endpoint,
		AnalyzedAt: a.AnalyzedAt.UTC(),
	}
	if evt.ID == "" {
		evt.ID = domain.TextID(a.Text)
	}
	if evt.AnalyzedAt.IsZero() {
		evt.AnalyzedAt = time.Now().UTC()
	}
	if json.Valid([]byte(a.Response)) {
		evt.Response = json.RawMessage(a.Response)
	} else {
		evt.RawBody = a.Response
	}
	return evt
}

// attributes returns the message attributes shared by queue/topic sinks.
func (e Event) attributes() map[string]string {
	attrs := map[string]string{"sentiment_id": e.ID}
	if e.Label != "" {
		attrs["sentiment_label"] = e.Label
	}
	return attrs
}
