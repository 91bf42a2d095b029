package parser

import (
	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/lexer"
)

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

// assignment is right-associative. An invalid target is recorded but does
// not abandon the statement.
func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.KindEqual) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := expr.(*ast.Variable); ok {
			return ast.NewAssign(variable.Name, value), nil
		}
		p.record(p.errorAt(equals, "Invalid assignment target."))
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expression, error) {
	return p.logical(p.and, lexer.KindOr)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.logical(p.equality, lexer.KindAnd)
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(p.comparison, lexer.KindBangEqual, lexer.KindEqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.term, lexer.KindGreater, lexer.KindGreaterEqual, lexer.KindLess, lexer.KindLessEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, lexer.KindMinus, lexer.KindPlus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binary(p.unary, lexer.KindSlash, lexer.KindStar)
}

// binary parses one left-associative precedence level, folding each operator
// into a new node around the operand built so far.
func (p *Parser) binary(operand func() (ast.Expression, error), operators ...lexer.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) logical(operand func() (ast.Expression, error), operator lexer.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operator) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(lexer.KindBang, lexer.KindMinus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(operator, right), nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.match(lexer.KindFalse):
		return ast.NewLiteral(false), nil
	case p.match(lexer.KindTrue):
		return ast.NewLiteral(true), nil
	case p.match(lexer.KindNil):
		return ast.NewLiteral(nil), nil
	case p.match(lexer.KindNumber, lexer.KindString):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(lexer.KindIdentifier):
		return ast.NewVariable(p.previous()), nil
	case p.match(lexer.KindLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.KindRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}
	return nil, p.errorAt(p.peek(), "Expect expression.")
}
