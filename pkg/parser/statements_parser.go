package parser

import (
	"errors"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/lexer"
)

// declaration parses one declaration or statement. On a syntax error the
// error is recorded, the parser resynchronizes and nil is returned.
func (p *Parser) declaration() ast.Statement {
	var (
		stmt ast.Statement
		err  error
	)
	if p.match(lexer.KindVar) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			p.record(parseErr)
		}
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	name, err := p.consume(lexer.KindIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(lexer.KindEqual) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return ast.NewVar(name, initializer), nil
}

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(lexer.KindFor):
		return p.forStatement()
	case p.match(lexer.KindIf):
		return p.ifStatement()
	case p.match(lexer.KindPrint):
		return p.printStatement()
	case p.match(lexer.KindWhile):
		return p.whileStatement()
	case p.match(lexer.KindLeftBrace):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.NewBlock(statements), nil
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars hama (init; cond; incr) body into a block holding
// the initializer and a while loop whose body runs the increment last.
func (p *Parser) forStatement() (ast.Statement, error) {
	if _, err := p.consume(lexer.KindLeftParen, "Expect '(' after 'hama'."); err != nil {
		return nil, err
	}

	var (
		initializer ast.Statement
		err         error
	)
	switch {
	case p.match(lexer.KindSemicolon):
	case p.match(lexer.KindVar):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expression
	if !p.check(lexer.KindSemicolon) {
		if condition, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !p.check(lexer.KindRightParen) {
		if increment, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.KindRightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if increment != nil {
		body = ast.NewBlock([]ast.Statement{body, ast.NewExpressionStatement(increment)})
	}
	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = ast.NewWhile(condition, body)
	if initializer != nil {
		body = ast.NewBlock([]ast.Statement{initializer, body})
	}
	return body, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	if _, err := p.consume(lexer.KindLeftParen, "Expect '(' after 'yoo'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindRightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(lexer.KindElse) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return ast.NewIf(condition, thenBranch, elseBranch), nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.NewPrint(value), nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	if _, err := p.consume(lexer.KindLeftParen, "Expect '(' after 'yeroo'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindRightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(condition, body), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

// block parses declarations up to the closing brace. Declarations inside the
// block recover on their own, so an error here is only a missing '}'.
func (p *Parser) block() ([]ast.Statement, error) {
	statements := []ast.Statement{}
	for !p.check(lexer.KindRightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := p.consume(lexer.KindRightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}
