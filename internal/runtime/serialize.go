package runtime

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
)

// Serialize resolves each top-level node to a byte chunk and joins the
// chunks in source order once all of them are ready. Only raw and tag
// nodes are valid at the top level; anything else fails the whole render
// before any resolution starts.
//
// Chunk resolution is eager: a slow tag never delays the start of its
// siblings, and the final concatenation never reorders output.
func (e *Engine) Serialize(ctx context.Context, nodes []domain.Node, data *domain.Context) *future.Result[[]byte] {
	chunks := make([]*future.Result[[]byte], len(nodes))
	for i, node := range nodes {
		node := node // per-iteration copy: go directive is below 1.22
		switch node.Kind {
		case domain.NodeRaw:
			chunks[i] = future.Of(node.Bytes)
		case domain.NodeTag:
			chunks[i] = future.Map(e.renderTag(ctx, node, data), func(v *domain.Value) ([]byte, error) {
				if v == nil {
					// A declining tag with no remaining chain contributes
					// an empty chunk. Not an error.
					return nil, nil
				}
				s, ok := v.StringValue()
				if !ok {
					return nil, &domain.UnexpectedSyntaxError{
						Reason: fmt.Sprintf("tag %q produced a %s value, which cannot be written as text", node.Name, v.Kind()),
						Source: node.Source,
					}
				}
				return []byte(s), nil
			})
		default:
			return future.Err[[]byte](&domain.UnexpectedSyntaxError{
				Reason: fmt.Sprintf("%s node is not valid at the top level of a template", node.Kind),
				Source: node.Source,
			})
		}
	}

	return future.Map(future.All(chunks...), func(parts [][]byte) ([]byte, error) {
		var buf bytes.Buffer
		for _, part := range parts {
			buf.Write(part)
		}
		return buf.Bytes(), nil
	})
}
