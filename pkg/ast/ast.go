package ast

import "github.com/firo1919/orlang/pkg/lexer"

type NodeType string

const (
	NodeAssign              NodeType = "Assign"
	NodeBinary              NodeType = "Binary"
	NodeGrouping            NodeType = "Grouping"
	NodeLiteral             NodeType = "Literal"
	NodeLogical             NodeType = "Logical"
	NodeUnary               NodeType = "Unary"
	NodeVariable            NodeType = "Variable"
	NodeBlock               NodeType = "Block"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeIf                  NodeType = "If"
	NodePrint               NodeType = "Print"
	NodeVar                 NodeType = "Var"
	NodeWhile               NodeType = "While"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. Both sets are closed: only types in this package
// carry the unexported markers.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expressions

type Assign struct {
	nodeImpl
	expressionMarker

	Name  lexer.Token `json:"name"`
	Value Expression  `json:"value"`
}

func NewAssign(name lexer.Token, value Expression) *Assign {
	return &Assign{nodeImpl: newNodeImpl(NodeAssign), Name: name, Value: value}
}

type Binary struct {
	nodeImpl
	expressionMarker

	Left     Expression  `json:"left"`
	Operator lexer.Token `json:"operator"`
	Right    Expression  `json:"right"`
}

func NewBinary(left Expression, operator lexer.Token, right Expression) *Binary {
	return &Binary{nodeImpl: newNodeImpl(NodeBinary), Left: left, Operator: operator, Right: right}
}

type Grouping struct {
	nodeImpl
	expressionMarker

	Expression Expression `json:"expression"`
}

func NewGrouping(expr Expression) *Grouping {
	return &Grouping{nodeImpl: newNodeImpl(NodeGrouping), Expression: expr}
}

// Literal holds nil, bool, float64 or string.
type Literal struct {
	nodeImpl
	expressionMarker

	Value any `json:"value"`
}

func NewLiteral(value any) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Value: value}
}

type Logical struct {
	nodeImpl
	expressionMarker

	Left     Expression  `json:"left"`
	Operator lexer.Token `json:"operator"`
	Right    Expression  `json:"right"`
}

func NewLogical(left Expression, operator lexer.Token, right Expression) *Logical {
	return &Logical{nodeImpl: newNodeImpl(NodeLogical), Left: left, Operator: operator, Right: right}
}

type Unary struct {
	nodeImpl
	expressionMarker

	Operator lexer.Token `json:"operator"`
	Right    Expression  `json:"right"`
}

func NewUnary(operator lexer.Token, right Expression) *Unary {
	return &Unary{nodeImpl: newNodeImpl(NodeUnary), Operator: operator, Right: right}
}

type Variable struct {
	nodeImpl
	expressionMarker

	Name lexer.Token `json:"name"`
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}
