package ports

import "github.com/aretw0/weft/pkg/domain"

// TemplateLoader defines how named template documents are retrieved.
// This allows the storage layer (filesystem, memory, remote) to be
// decoupled from the render surface.
type TemplateLoader interface {
	// GetTemplate retrieves the syntax tree of a template by name.
	// It returns domain.ErrTemplateNotFound when the name is unknown.
	GetTemplate(name string) ([]domain.Node, error)

	// ListTemplates returns the names of all available templates, used
	// for introspection endpoints and tooling.
	ListTemplates() ([]string, error)
}
