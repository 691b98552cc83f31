// Package memory provides in-memory implementations of the weft ports,
// used by tests and embedded hosts.
package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/weft/pkg/domain"
)

// Loader implements ports.TemplateLoader using an in-memory map.
type Loader struct {
	templates map[string][]domain.Node
}

// NewLoader creates a Loader over the provided templates.
func NewLoader(templates map[string][]domain.Node) *Loader {
	if templates == nil {
		templates = make(map[string][]domain.Node)
	}
	return &Loader{templates: templates}
}

// Add registers a template under a name. Useful for test setup.
func (l *Loader) Add(name string, nodes []domain.Node) error {
	if name == "" {
		return fmt.Errorf("template missing name")
	}
	l.templates[name] = nodes
	return nil
}

// GetTemplate retrieves the syntax tree of a template by name.
func (l *Loader) GetTemplate(name string) ([]domain.Node, error) {
	nodes, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
	}
	return nodes, nil
}

// ListTemplates returns all available template names.
func (l *Loader) ListTemplates() ([]string, error) {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}
