package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EndpointURL != "http://localhost:5000/api/spring-sentiment" {
		t.Fatalf("unexpected endpoint %q", cfg.EndpointURL)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Fatalf("unexpected connect timeout %v", cfg.ConnectTimeout)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("expected request timeout to default to zero, got %v", cfg.RequestTimeout)
	}
	if cfg.EscapeMode != "json" {
		t.Fatalf("unexpected escape mode %q", cfg.EscapeMode)
	}
	if cfg.StorageType != "none" {
		t.Fatalf("unexpected storage type %q", cfg.StorageType)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SENTIMENT_ENDPOINT_URL", "http://sentiment.internal:8080/api/spring-sentiment")
	t.Setenv("SENTIMENT_CONNECT_TIMEOUT_MS", "250")
	t.Setenv("SENTIMENT_REQUEST_TIMEOUT_MS", "1500")
	t.Setenv("SENTIMENT_ESCAPE_MODE", "QUOTES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EndpointURL != "http://sentiment.internal:8080/api/spring-sentiment" {
		t.Fatalf("endpoint override ignored: %q", cfg.EndpointURL)
	}
	if cfg.ConnectTimeout != 250*time.Millisecond {
		t.Fatalf("connect timeout = %v", cfg.ConnectTimeout)
	}
	if cfg.RequestTimeout != 1500*time.Millisecond {
		t.Fatalf("request timeout = %v", cfg.RequestTimeout)
	}
	if cfg.EscapeMode != "quotes" {
		t.Fatalf("escape mode = %q", cfg.EscapeMode)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SENTIMENT_CONNECT_TIMEOUT_MS": "0",
		"SENTIMENT_REQUEST_TIMEOUT_MS": "-1",
		"SENTIMENT_ESCAPE_MODE":        "xml",
		"STORAGE_TTL_SECONDS":          "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}
