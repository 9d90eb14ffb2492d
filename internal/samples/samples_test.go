package samples

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("  ")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 default samples, got %d", len(got))
	}
	got[0] = "mutated"
	if Default()[0] == "mutated" {
		t.Fatalf("Default must return a copy")
	}
}

func TestDefaultKeepsPortugueseSentences(t *testing.T) {
	want := []string{
		"Estou muito satisfeito com o serviço prestado.",
		"O produto não funcionou corretamente, estou muito insatisfeito.",
		"A entrega foi realizada dentro do prazo previsto.",
	}
	got := Default()
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadYAMLTrimsAndDropsBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.yaml")
	raw := `
samples:
  - "  Estou muito feliz com o atendimento da loja!  "
  - ""
  - O livro chegou no prazo estipulado.
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0] != "Estou muito feliz com o atendimento da loja!" {
		t.Fatalf("unexpected samples %#v", got)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.json")
	if err := os.WriteFile(path, []byte(`{"samples":["one","two"]}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[1] != "two" {
		t.Fatalf("unexpected samples %#v", got)
	}
}

func TestLoadUnknownExtensionTriesAllDecoders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	if err := os.WriteFile(path, []byte(`{"samples":["only"]}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0] != "only" {
		t.Fatalf("unexpected samples %#v", got)
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.yaml")
	if err := os.WriteFile(path, []byte("samples: []\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty samples list")
	}
}
