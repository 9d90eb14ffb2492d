package sentiment

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildRequestBodyPlainTextMatchesBothModes(t *testing.T) {
	text := "Estou muito satisfeito com o serviço prestado."
	want := `{"text": "` + text + `"}`

	for _, mode := range []EscapeMode{EscapeQuotes, EscapeJSON} {
		got, err := BuildRequestBody(text, mode)
		if err != nil {
			t.Fatalf("%s: BuildRequestBody: %v", mode, err)
		}
		if string(got) != want {
			t.Fatalf("%s: body = %s, want %s", mode, got, want)
		}
	}
}

func TestBuildRequestBodyEscapesEveryQuote(t *testing.T) {
	text := `she said "great" and "awful"`
	want := `{"text": "she said \"great\" and \"awful\""}`

	for _, mode := range []EscapeMode{EscapeQuotes, EscapeJSON} {
		got, err := BuildRequestBody(text, mode)
		if err != nil {
			t.Fatalf("%s: BuildRequestBody: %v", mode, err)
		}
		if string(got) != want {
			t.Fatalf("%s: body = %s, want %s", mode, got, want)
		}
		if n := strings.Count(string(got), `\"`); n != 4 {
			t.Fatalf("%s: expected 4 escaped quotes, got %d", mode, n)
		}
	}
}

func TestBuildRequestBodyQuotesModeLeavesBackslashes(t *testing.T) {
	got, err := BuildRequestBody(`C:\temp`+"\n", EscapeQuotes)
	if err != nil {
		t.Fatalf("BuildRequestBody: %v", err)
	}
	if string(got) != "{\"text\": \"C:\\temp\n\"}" {
		t.Fatalf("unexpected body %q", got)
	}
	var decoded map[string]string
	if err := json.Unmarshal(got, &decoded); err == nil {
		t.Fatalf("expected quote-only escaping to produce invalid JSON for control characters")
	}
}

func TestBuildRequestBodyJSONModeRoundTrips(t *testing.T) {
	texts := []string{
		`C:\temp`,
		"line one\nline two\ttabbed",
		`already \"escaped\"`,
		"<b>html & stuff</b>",
		"emoji 😀 and ünïcödé",
	}
	for _, text := range texts {
		got, err := BuildRequestBody(text, EscapeJSON)
		if err != nil {
			t.Fatalf("BuildRequestBody(%q): %v", text, err)
		}
		var decoded struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("body %s is not valid JSON: %v", got, err)
		}
		if decoded.Text != text {
			t.Fatalf("round trip = %q, want %q", decoded.Text, text)
		}
	}
}

func TestBuildRequestBodyRejectsUnknownMode(t *testing.T) {
	if _, err := BuildRequestBody("x", EscapeMode("xml")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestParseEscapeMode(t *testing.T) {
	cases := map[string]EscapeMode{
		"":         EscapeJSON,
		"JSON":     EscapeJSON,
		" quotes ": EscapeQuotes,
	}
	for raw, want := range cases {
		got, err := ParseEscapeMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseEscapeMode(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseEscapeMode("yaml"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
