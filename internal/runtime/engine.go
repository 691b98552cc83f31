// Package runtime implements the evaluator/serializer core of weft: the
// recursive resolution of template syntax trees into output bytes.
package runtime

import (
	"log/slog"

	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/registry"
)

// Engine evaluates syntax trees against a rendering context. It holds no
// per-render state; one engine serves any number of renders.
type Engine struct {
	tags   *registry.Registry
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// The engine is the BodyRenderer handed to tag implementations.
var _ ports.BodyRenderer = (*Engine)(nil)

// NewEngine creates an engine over a tag registry. A nil logger disables
// engine logging.
func NewEngine(tags *registry.Registry, logger *slog.Logger, hooks domain.LifecycleHooks) *Engine {
	if tags == nil {
		tags = registry.New()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		tags:   tags,
		logger: logger,
		hooks:  hooks,
	}
}

// Tags exposes the registry so hosts can register custom tags.
func (e *Engine) Tags() *registry.Registry {
	return e.tags
}
