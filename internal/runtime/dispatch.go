package runtime

import (
	"context"
	"time"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
)

// renderTag dispatches a tag invocation: it resolves every parameter,
// invokes the registered implementation, and follows the chain of
// alternates while the current tag declines to produce a value.
func (e *Engine) renderTag(ctx context.Context, node domain.Node, data *domain.Context) *future.Result[*domain.Value] {
	impl, ok := e.tags.Lookup(node.Name)
	if !ok {
		return future.Err[*domain.Value](&domain.UnknownTagError{Name: node.Name, Source: node.Source})
	}

	// Parameters resolve eagerly so independent subtrees (including slow
	// tags) are in flight together; All re-imposes parameter order.
	params := make([]*future.Result[*domain.Value], len(node.Params))
	for i, p := range node.Params {
		params[i] = e.resolve(ctx, p, data)
	}

	return future.Then(future.All(params...), func(resolved []*domain.Value) *future.Result[*domain.Value] {
		call := &domain.ParsedTag{
			Name:       node.Name,
			Parameters: make([]domain.Value, len(resolved)),
			Body:       node.Body,
			Source:     node.Source,
		}
		for i, v := range resolved {
			call.Parameters[i] = orNull(v)
		}

		e.logger.Debug("rendering tag", "tag", node.Name, "params", len(call.Parameters), "body_nodes", len(call.Body))

		start := time.Now()
		result := impl.Render(ctx, call, data, e)
		if hook := e.hooks.OnTagRender; hook != nil {
			result.OnDone(func(_ *domain.Value, err error) {
				hook(ctx, &domain.TagEvent{Name: node.Name, Duration: time.Since(start), Err: err})
			})
		}

		return future.Then(result, func(v *domain.Value) *future.Result[*domain.Value] {
			if v != nil {
				return future.Of(v)
			}
			// The tag declined. Fall through to the chained alternate,
			// or resolve to nothing when the chain ends.
			if node.Chained == nil {
				return future.Of[*domain.Value](nil)
			}
			if node.Chained.Kind != domain.NodeTag {
				return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
					Reason: "chained node must be a tag",
					Source: node.Chained.Source,
				})
			}
			return e.renderTag(ctx, *node.Chained, data)
		})
	})
}
