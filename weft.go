package weft

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/internal/runtime"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/registry"
	"github.com/aretw0/weft/pkg/tags"
)

// Version is the library version, reported by the CLI.
const Version = "0.4.1"

// Engine is the high-level entry point for the weft library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	rt     *runtime.Engine
	tags   *registry.Registry
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger injects an application logger. Without it the engine is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTags replaces the default built-in tag catalog with a custom registry.
func WithTags(r *registry.Registry) Option {
	return func(e *Engine) {
		e.tags = r
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New creates a rendering engine. By default it carries the built-in tag
// catalog and a no-op logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		tags:   tags.Default(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rt = runtime.NewEngine(e.tags, e.logger, e.hooks)
	return e
}

// Tags exposes the registry so hosts can add custom tags after New.
func (e *Engine) Tags() *registry.Registry {
	return e.tags
}

// Render serializes a template syntax tree against plain Go data and
// blocks until the output is complete or the first failure aborts it.
func (e *Engine) Render(ctx context.Context, nodes []domain.Node, data map[string]any) ([]byte, error) {
	return e.RenderContext(ctx, nodes, domain.ContextFromAny(data))
}

// RenderContext is Render over an existing rendering context. The context
// is shared by reference: tag mutations are left in place for the caller,
// whether the render succeeds or fails.
func (e *Engine) RenderContext(ctx context.Context, nodes []domain.Node, data *domain.Context) ([]byte, error) {
	start := time.Now()
	out, err := e.rt.Serialize(ctx, nodes, data).Await(ctx)
	if err != nil {
		e.logger.Error("render failed", "error", err, "nodes", len(nodes))
	} else {
		e.logger.Debug("render complete", "nodes", len(nodes), "bytes", len(out))
	}
	if hook := e.hooks.OnRender; hook != nil {
		hook(ctx, &domain.RenderEvent{
			Nodes:    len(nodes),
			Bytes:    len(out),
			Duration: time.Since(start),
			Err:      err,
		})
	}
	return out, err
}

// RenderNamed resolves a template by name through a loader and renders it.
func (e *Engine) RenderNamed(ctx context.Context, loader ports.TemplateLoader, name string, data map[string]any) ([]byte, error) {
	nodes, err := loader.GetTemplate(name)
	if err != nil {
		return nil, err
	}
	return e.Render(ctx, nodes, data)
}

// Serializer exposes the engine as a ports.BodyRenderer for hosts that
// compose renders manually (custom tags, streaming callers).
func (e *Engine) Serializer() ports.BodyRenderer {
	return e.rt
}
