package ast

import "github.com/firo1919/orlang/pkg/lexer"

type Block struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlock(statements []Statement) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Statements: statements}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

// If carries an optional Else branch (nil when absent).
type If struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

func NewIf(condition Expression, then Statement, elseBranch Statement) *If {
	return &If{nodeImpl: newNodeImpl(NodeIf), Condition: condition, Then: then, Else: elseBranch}
}

type Print struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrint(expr Expression) *Print {
	return &Print{nodeImpl: newNodeImpl(NodePrint), Expression: expr}
}

// Var declares Name in the current scope. Initializer is nil when omitted.
type Var struct {
	nodeImpl
	statementMarker

	Name        lexer.Token `json:"name"`
	Initializer Expression  `json:"initializer,omitempty"`
}

func NewVar(name lexer.Token, initializer Expression) *Var {
	return &Var{nodeImpl: newNodeImpl(NodeVar), Name: name, Initializer: initializer}
}

type While struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func NewWhile(condition Expression, body Statement) *While {
	return &While{nodeImpl: newNodeImpl(NodeWhile), Condition: condition, Body: body}
}
