package samples

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package samples provides the texts the demo driver sends for analysis.

var defaults = []string{
	"Estou muito satisfeito com o serviço prestado.",
	"O produto não funcionou corretamente, estou muito insatisfeito.",
	"A entrega foi realizada dentro do prazo previsto.",
}

// Default returns a copy of the built-in sample sentences.
func Default() []string {
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

type file struct {
	Samples []string `json:"samples" yaml:"samples"`
}

// Load reads samples from a YAML/JSON file. An empty path yields the defaults.
func Load(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples file: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read samples file: %w", err)
	}

	parsed, err := parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(parsed.Samples))
	for _, s := range parsed.Samples {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("samples file contains no samples entries")
	}
	return out, nil
}

type unmarshalFn func([]byte, any) error

func parse(data []byte, ext string) (file, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		exts []string
		fn   unmarshalFn
	}{
		{name: "yaml", exts: []string{".yaml", ".yml"}, fn: yaml.Unmarshal},
		{name: "json", exts: []string{".json"}, fn: json.Unmarshal},
	}

	known := false
	for _, d := range decoders {
		known = known || hasExt(d.exts, ext)
	}

	var lastErr error
	for _, d := range decoders {
		if known && !hasExt(d.exts, ext) {
			continue
		}
		var out file
		if err := d.fn(data, &out); err != nil {
			lastErr = fmt.Errorf("decode %s samples: %w", d.name, err)
			continue
		}
		return out, nil
	}

	if lastErr != nil {
		return file{}, fmt.Errorf("samples file format not recognized (expected YAML or JSON): %w", lastErr)
	}
	return file{}, errors.New("samples file format not recognized (expected YAML or JSON)")
}

func hasExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
