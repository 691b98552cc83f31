package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/weft/pkg/adapters/file"
	"github.com/aretw0/weft/pkg/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "greeting.yaml", "template:\n  - raw: hello\n")
	writeFile(t, dir, "other.yml", "template:\n  - raw: other\n")
	writeFile(t, dir, "notes.txt", "not a template")

	loader, err := file.NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	names, err := loader.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(names) != 2 || names[0] != "greeting" || names[1] != "other" {
		t.Errorf("expected [greeting other], got %v", names)
	}

	nodes, err := loader.GetTemplate("greeting")
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if len(nodes) != 1 || string(nodes[0].Bytes) != "hello" {
		t.Errorf("unexpected template content: %v", nodes)
	}

	if _, err := loader.GetTemplate("notes"); !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("non-yaml files must not be indexed, got %v", err)
	}
}

func TestLoader_BrokenDocumentFailsLazily(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", "template:\n  - raw: ok\n")
	writeFile(t, dir, "broken.yaml", "template:\n  - {}\n")

	// Indexing must succeed even with a broken document present.
	loader, err := file.NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	if _, err := loader.GetTemplate("good"); err != nil {
		t.Errorf("good template failed: %v", err)
	}
	if _, err := loader.GetTemplate("broken"); err == nil {
		t.Error("broken template must fail on load")
	}
}

func TestLoader_MissingDirectory(t *testing.T) {
	if _, err := file.NewLoader(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing directory must fail")
	}
}
