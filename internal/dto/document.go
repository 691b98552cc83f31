// Package dto decodes template documents (templates interchanged as
// structured syntax trees in YAML or JSON) into domain nodes. Weft does
// not parse template source text; hosts that want file-based templates
// ship them in this document form.
package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/weft/pkg/domain"
)

// Document is the on-disk/wire form of a template.
type Document struct {
	Name     string    `mapstructure:"name"`
	Template []NodeDoc `mapstructure:"template"`
}

// NodeDoc is one node of a template document. Exactly one of the fields
// must be set; the field name selects the node kind.
type NodeDoc struct {
	Raw   *string  `mapstructure:"raw"`
	Const any      `mapstructure:"const"`
	Ident string   `mapstructure:"ident"`
	Expr  *ExprDoc `mapstructure:"expr"`
	Not   *NodeDoc `mapstructure:"not"`
	Tag   *TagDoc  `mapstructure:"tag"`
}

// ExprDoc is a binary expression node.
type ExprDoc struct {
	Op  string  `mapstructure:"op"`
	LHS NodeDoc `mapstructure:"lhs"`
	RHS NodeDoc `mapstructure:"rhs"`
}

// TagDoc is a tag invocation node.
type TagDoc struct {
	Name   string    `mapstructure:"name"`
	Params []NodeDoc `mapstructure:"params"`
	Body   []NodeDoc `mapstructure:"body"`
	Chain  *NodeDoc  `mapstructure:"chain"`
}

// ParseYAML decodes a YAML (or JSON, which YAML subsumes) template
// document into its name and syntax tree.
func ParseYAML(data []byte) (string, []domain.Node, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return FromMap(raw)
}

// FromMap decodes an already-unmarshalled document (e.g. an inline JSON
// body) into its name and syntax tree.
func FromMap(raw map[string]any) (string, []domain.Node, error) {
	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return "", nil, fmt.Errorf("invalid document structure: %w", err)
	}
	nodes, err := toNodes(doc.Template)
	if err != nil {
		return "", nil, err
	}
	return doc.Name, nodes, nil
}

func toNodes(docs []NodeDoc) ([]domain.Node, error) {
	nodes := make([]domain.Node, len(docs))
	for i, d := range docs {
		n, err := d.toNode()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes[i] = n
	}
	return nodes, nil
}

func (d NodeDoc) toNode() (domain.Node, error) {
	switch {
	case d.Raw != nil:
		return domain.Raw(*d.Raw), nil
	case d.Const != nil:
		return constNode(d.Const)
	case d.Ident != "":
		return domain.Ident(splitPath(d.Ident)...), nil
	case d.Expr != nil:
		return d.Expr.toNode()
	case d.Not != nil:
		operand, err := d.Not.toNode()
		if err != nil {
			return domain.Node{}, fmt.Errorf("not operand: %w", err)
		}
		return domain.Not(operand), nil
	case d.Tag != nil:
		return d.Tag.toNode()
	default:
		return domain.Node{}, fmt.Errorf("node must set one of raw, const, ident, expr, not, tag")
	}
}

func constNode(c any) (domain.Node, error) {
	switch t := c.(type) {
	case bool:
		return domain.ConstBool(t), nil
	case int:
		return domain.ConstInt(int64(t)), nil
	case int64:
		return domain.ConstInt(t), nil
	case uint64:
		return domain.ConstInt(int64(t)), nil
	case float64:
		return domain.ConstFloat(t), nil
	case map[string]any:
		// Interpolated string constant: { str: [ ...nodes ] }
		inner, ok := t["str"]
		if !ok {
			return domain.Node{}, fmt.Errorf("const object must have a 'str' node list")
		}
		var docs []NodeDoc
		if err := mapstructure.Decode(inner, &docs); err != nil {
			return domain.Node{}, fmt.Errorf("invalid const str nodes: %w", err)
		}
		nodes, err := toNodes(docs)
		if err != nil {
			return domain.Node{}, err
		}
		return domain.ConstString(nodes...), nil
	default:
		return domain.Node{}, fmt.Errorf("unsupported const type %T", c)
	}
}

func (e *ExprDoc) toNode() (domain.Node, error) {
	op, err := parseOperator(e.Op)
	if err != nil {
		return domain.Node{}, err
	}
	lhs, err := e.LHS.toNode()
	if err != nil {
		return domain.Node{}, fmt.Errorf("expr lhs: %w", err)
	}
	rhs, err := e.RHS.toNode()
	if err != nil {
		return domain.Node{}, fmt.Errorf("expr rhs: %w", err)
	}
	return domain.Expr(op, lhs, rhs), nil
}

func (t *TagDoc) toNode() (domain.Node, error) {
	if t.Name == "" {
		return domain.Node{}, fmt.Errorf("tag must have a name")
	}
	params, err := toNodes(t.Params)
	if err != nil {
		return domain.Node{}, fmt.Errorf("tag %q params: %w", t.Name, err)
	}
	body, err := toNodes(t.Body)
	if err != nil {
		return domain.Node{}, fmt.Errorf("tag %q body: %w", t.Name, err)
	}
	node := domain.TagWithBody(t.Name, params, body)
	if t.Chain != nil {
		chained, err := t.Chain.toNode()
		if err != nil {
			return domain.Node{}, fmt.Errorf("tag %q chain: %w", t.Name, err)
		}
		node = node.Chain(chained)
	}
	return node, nil
}

var operatorAliases = map[string]domain.Operator{
	"==":  domain.OpEqual,
	"eq":  domain.OpEqual,
	"!=":  domain.OpNotEqual,
	"ne":  domain.OpNotEqual,
	"&&":  domain.OpAnd,
	"and": domain.OpAnd,
	"||":  domain.OpOr,
	"or":  domain.OpOr,
	"+":   domain.OpAdd,
	"add": domain.OpAdd,
	"-":   domain.OpSubtract,
	"sub": domain.OpSubtract,
	"*":   domain.OpMultiply,
	"mul": domain.OpMultiply,
	"/":   domain.OpDivide,
	"div": domain.OpDivide,
	">":   domain.OpGreaterThan,
	"gt":  domain.OpGreaterThan,
	"<":   domain.OpLessThan,
	"lt":  domain.OpLessThan,
}

func parseOperator(s string) (domain.Operator, error) {
	op, ok := operatorAliases[s]
	if !ok {
		return "", fmt.Errorf("unknown operator %q", s)
	}
	return op, nil
}

func splitPath(ident string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(ident); i++ {
		if ident[i] == '.' {
			segments = append(segments, ident[start:i])
			start = i + 1
		}
	}
	return append(segments, ident[start:])
}
