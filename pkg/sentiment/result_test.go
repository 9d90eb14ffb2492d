package sentiment

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeLabel(t *testing.T) {
	cases := map[string]Label{
		"positive":  Positive,
		"POSITIVO":  Positive,
		" negativo": Negative,
		"Negative":  Negative,
		"neutral":   Neutral,
		"mixed":     Neutral,
		"":          Neutral,
	}
	for raw, want := range cases {
		if got := NormalizeLabel(raw); got != want {
			t.Fatalf("NormalizeLabel(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseResult(t *testing.T) {
	raw := `{"id":3,"text":"A entrega foi realizada dentro do prazo previsto.","sentiment":"neutral","confidenceScore":0.72,"timestamp":"2025-03-01T10:00:00.000Z","source":"local_api","status":"success"}`

	res, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.ID != 3 || res.Sentiment != Neutral || res.Status != "success" {
		t.Fatalf("unexpected result %+v", res)
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !res.Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", res.Timestamp, want)
	}
}

func TestParseResultRejectsMalformedBodies(t *testing.T) {
	for _, raw := range []string{`not json`, `{"id":1}`, `"internal error"`} {
		if _, err := ParseResult(raw); !errors.Is(err, ErrMalformedResult) {
			t.Fatalf("ParseResult(%q) error = %v, want ErrMalformedResult", raw, err)
		}
	}
}
