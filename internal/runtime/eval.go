package runtime

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
)

// resolve evaluates a single node to a value. A completed nil value means
// the node resolved to nothing (a declining tag); identifiers never
// resolve to nothing, they degrade to null.
func (e *Engine) resolve(ctx context.Context, node domain.Node, data *domain.Context) *future.Result[*domain.Value] {
	switch node.Kind {
	case domain.NodeIdentifier:
		v, ok := data.Fetch(node.Path)
		if !ok {
			v = domain.Null()
		}
		return future.Of(&v)
	case domain.NodeConstant:
		return e.resolveConstant(ctx, node, data)
	case domain.NodeExpression:
		return e.resolveExpression(ctx, node, data)
	case domain.NodeNot:
		return e.resolveNot(ctx, node, data)
	case domain.NodeTag:
		return e.renderTag(ctx, node, data)
	default:
		return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
			Reason: fmt.Sprintf("%s node cannot be evaluated as a value", node.Kind),
			Source: node.Source,
		})
	}
}

func (e *Engine) resolveConstant(ctx context.Context, node domain.Node, data *domain.Context) *future.Result[*domain.Value] {
	c := node.Constant
	if c == nil {
		return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
			Reason: "constant node without payload",
			Source: node.Source,
		})
	}
	switch c.Kind {
	case domain.ConstantBool:
		return completed(domain.Bool(c.Bool))
	case domain.ConstantInt:
		return completed(domain.Int(c.Int))
	case domain.ConstantFloat:
		return completed(domain.Float(c.Float))
	case domain.ConstantString:
		// Interpolated string: serialize the nested tree against the
		// live context and decode the bytes as text.
		return future.Map(e.Serialize(ctx, c.Nodes, data), func(raw []byte) (*domain.Value, error) {
			if !utf8.Valid(raw) {
				return nil, &domain.EncodingError{Detail: "interpolated string did not serialize to valid UTF-8"}
			}
			v := domain.String(string(raw))
			return &v, nil
		})
	default:
		return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
			Reason: "unknown constant kind",
			Source: node.Source,
		})
	}
}

func (e *Engine) resolveExpression(ctx context.Context, node domain.Node, data *domain.Context) *future.Result[*domain.Value] {
	if node.LHS == nil || node.RHS == nil {
		return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
			Reason: "expression node missing an operand",
			Source: node.Source,
		})
	}

	// Both operands are always evaluated; there is no short-circuit.
	// "or" starts the right operand first, everything else the left.
	// The asymmetry is observable through operand side effects and is
	// kept on purpose.
	var lhs, rhs *future.Result[*domain.Value]
	if node.Op == domain.OpOr {
		rhs = e.resolve(ctx, *node.RHS, data)
		lhs = e.resolve(ctx, *node.LHS, data)
	} else {
		lhs = e.resolve(ctx, *node.LHS, data)
		rhs = e.resolve(ctx, *node.RHS, data)
	}

	op := node.Op
	return future.Map(future.All(lhs, rhs), func(operands []*domain.Value) (*domain.Value, error) {
		l := orNull(operands[0])
		r := orNull(operands[1])
		v := applyOperator(op, l, r)
		return &v, nil
	})
}

// applyOperator implements the weak-typing operator table: logical
// operators treat only explicit false as false, and numeric operators
// degrade to boolean false when either operand fails float coercion.
func applyOperator(op domain.Operator, l, r domain.Value) domain.Value {
	switch op {
	case domain.OpEqual:
		return domain.Bool(l.Equal(r))
	case domain.OpNotEqual:
		return domain.Bool(!l.Equal(r))
	case domain.OpAnd:
		return domain.Bool(!l.IsFalse() && !r.IsFalse())
	case domain.OpOr:
		return domain.Bool(!l.IsFalse() || !r.IsFalse())
	}

	lf, lok := l.AsFloat()
	rf, rok := r.AsFloat()
	if !lok || !rok {
		return domain.Bool(false)
	}

	switch op {
	case domain.OpAdd:
		return domain.Float(lf + rf)
	case domain.OpSubtract:
		return domain.Float(lf - rf)
	case domain.OpMultiply:
		return domain.Float(lf * rf)
	case domain.OpDivide:
		return domain.Float(lf / rf)
	case domain.OpGreaterThan:
		return domain.Bool(lf > rf)
	case domain.OpLessThan:
		return domain.Bool(lf < rf)
	default:
		return domain.Bool(false)
	}
}

func (e *Engine) resolveNot(ctx context.Context, node domain.Node, data *domain.Context) *future.Result[*domain.Value] {
	if node.Operand == nil {
		return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
			Reason: "not node missing operand",
			Source: node.Source,
		})
	}
	operand := *node.Operand

	switch operand.Kind {
	case domain.NodeIdentifier:
		// Absent or explicit false negate to true; any other present
		// value negates to false.
		v, ok := data.Fetch(operand.Path)
		return completed(domain.Bool(!ok || v.IsFalse()))
	case domain.NodeConstant:
		c := operand.Constant
		if c == nil {
			break
		}
		switch c.Kind {
		case domain.ConstantBool:
			return completed(domain.Bool(!c.Bool))
		case domain.ConstantInt:
			// A numeric constant counts as true only when it equals
			// exactly 1. 0 and 2 negate identically. Odd, but fixed
			// behavior; see the evaluator tests.
			return completed(domain.Bool(c.Int != 1))
		case domain.ConstantFloat:
			return completed(domain.Bool(c.Float != 1))
		case domain.ConstantString:
			return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
				Reason: "cannot negate a string constant",
				Source: operand.Source,
			})
		}
	}

	return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{
		Reason: fmt.Sprintf("cannot negate %s node", operand.Kind),
		Source: operand.Source,
	})
}

func completed(v domain.Value) *future.Result[*domain.Value] {
	return future.Of(&v)
}

func orNull(v *domain.Value) domain.Value {
	if v == nil {
		return domain.Null()
	}
	return *v
}
