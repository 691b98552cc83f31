package domain

// NodeKind identifies the syntactic role of a Node.
type NodeKind int

const (
	NodeRaw NodeKind = iota
	NodeConstant
	NodeIdentifier
	NodeExpression
	NodeNot
	NodeTag
)

func (k NodeKind) String() string {
	switch k {
	case NodeRaw:
		return "raw"
	case NodeConstant:
		return "constant"
	case NodeIdentifier:
		return "identifier"
	case NodeExpression:
		return "expression"
	case NodeNot:
		return "not"
	case NodeTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Operator names a binary expression operator.
type Operator string

const (
	OpEqual       Operator = "=="
	OpNotEqual    Operator = "!="
	OpAnd         Operator = "&&"
	OpOr          Operator = "||"
	OpAdd         Operator = "+"
	OpSubtract    Operator = "-"
	OpMultiply    Operator = "*"
	OpDivide      Operator = "/"
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"
)

// Source locates a node in the original template for diagnostics.
type Source struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Node is one element of a template syntax tree. Nodes are produced by the
// host parser and treated as immutable by the engine. The fields in use
// depend on Kind; the rest stay zero.
type Node struct {
	Kind NodeKind

	// Raw
	Bytes []byte

	// Constant
	Constant *Constant

	// Identifier
	Path []string

	// Expression
	Op  Operator
	LHS *Node
	RHS *Node

	// Not
	Operand *Node

	// Tag. Chained, if set, must itself be a tag node; the dispatcher
	// validates this when the chain is actually followed.
	Name    string
	Params  []Node
	Body    []Node
	Chained *Node

	Source Source
}

// ConstantKind identifies the payload of a Constant.
type ConstantKind int

const (
	ConstantBool ConstantKind = iota
	ConstantInt
	ConstantFloat
	// ConstantString holds a nested syntax tree: an interpolated string is
	// serialized against the live context and decoded as UTF-8 text.
	ConstantString
)

// Constant is the payload of a NodeConstant node.
type Constant struct {
	Kind  ConstantKind
	Bool  bool
	Int   int64
	Float float64
	Nodes []Node
}

// Raw builds a raw text node.
func Raw(text string) Node {
	return Node{Kind: NodeRaw, Bytes: []byte(text)}
}

// RawBytes builds a raw node from a byte slice.
func RawBytes(b []byte) Node {
	return Node{Kind: NodeRaw, Bytes: b}
}

// ConstBool builds a boolean constant node.
func ConstBool(b bool) Node {
	return Node{Kind: NodeConstant, Constant: &Constant{Kind: ConstantBool, Bool: b}}
}

// ConstInt builds an integer constant node.
func ConstInt(i int64) Node {
	return Node{Kind: NodeConstant, Constant: &Constant{Kind: ConstantInt, Int: i}}
}

// ConstFloat builds a float constant node.
func ConstFloat(f float64) Node {
	return Node{Kind: NodeConstant, Constant: &Constant{Kind: ConstantFloat, Float: f}}
}

// ConstString builds an interpolated string constant from its nested
// syntax tree.
func ConstString(nodes ...Node) Node {
	return Node{Kind: NodeConstant, Constant: &Constant{Kind: ConstantString, Nodes: nodes}}
}

// Ident builds an identifier node from path segments.
func Ident(path ...string) Node {
	return Node{Kind: NodeIdentifier, Path: path}
}

// Expr builds a binary expression node.
func Expr(op Operator, lhs, rhs Node) Node {
	return Node{Kind: NodeExpression, Op: op, LHS: &lhs, RHS: &rhs}
}

// Not builds a logical negation node.
func Not(operand Node) Node {
	return Node{Kind: NodeNot, Operand: &operand}
}

// Tag builds a tag invocation node. Body and chain are attached with
// TagWithBody / Chain when needed.
func Tag(name string, params ...Node) Node {
	return Node{Kind: NodeTag, Name: name, Params: params}
}

// TagWithBody builds a tag invocation node carrying body nodes.
func TagWithBody(name string, params []Node, body []Node) Node {
	return Node{Kind: NodeTag, Name: name, Params: params, Body: body}
}

// Chain returns a copy of the tag node with an alternate to fall through
// to when the tag declines to produce a value.
func (n Node) Chain(next Node) Node {
	n.Chained = &next
	return n
}
