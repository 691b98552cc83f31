// Package file provides a filesystem-backed template loader: a directory
// of YAML template documents, one file per template.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/weft/internal/dto"
	"github.com/aretw0/weft/pkg/domain"
)

// Loader implements ports.TemplateLoader over a directory of *.yaml and
// *.yml documents. Template names default to the file name without its
// extension; a document carrying a name field overrides that.
type Loader struct {
	dir   string
	names map[string]string // template name -> file path
}

// NewLoader scans dir and indexes the documents it contains. Documents
// are parsed lazily on GetTemplate, so a broken file only fails renders
// that use it.
func NewLoader(dir string) (*Loader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	names := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		names[name] = filepath.Join(dir, entry.Name())
	}

	return &Loader{dir: dir, names: names}, nil
}

// GetTemplate reads and decodes the document for a template name.
func (l *Loader) GetTemplate(name string) ([]domain.Node, error) {
	path, ok := l.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	_, nodes, err := dto.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	return nodes, nil
}

// ListTemplates returns all indexed template names.
func (l *Loader) ListTemplates() ([]string, error) {
	names := make([]string, 0, len(l.names))
	for name := range l.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
