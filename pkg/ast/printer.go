package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/firo1919/orlang/pkg/lexer"
)

// Format renders a node in parenthesized prefix form, e.g. (* (- 123) (group 45.67)).
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// FormatProgram renders each statement on its own line.
func FormatProgram(statements []Statement) string {
	lines := make([]string, 0, len(statements))
	for _, stmt := range statements {
		lines = append(lines, Format(stmt))
	}
	return strings.Join(lines, "\n")
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString(lexer.KeywordNil)
	case *Assign:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *Binary:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *Grouping:
		parenthesize(b, "group", n.Expression)
	case *Literal:
		b.WriteString(formatLiteral(n.Value))
	case *Logical:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *Unary:
		parenthesize(b, n.Operator.Lexeme, n.Right)
	case *Variable:
		b.WriteString(n.Name.Lexeme)
	case *Block:
		nodes := make([]Node, 0, len(n.Statements))
		for _, stmt := range n.Statements {
			nodes = append(nodes, stmt)
		}
		parenthesize(b, "block", nodes...)
	case *ExpressionStatement:
		parenthesize(b, ";", n.Expression)
	case *If:
		if n.Else == nil {
			parenthesize(b, lexer.KeywordIf, n.Condition, n.Then)
			return
		}
		parenthesize(b, lexer.KeywordIf, n.Condition, n.Then, n.Else)
	case *Print:
		parenthesize(b, lexer.KeywordPrint, n.Expression)
	case *Var:
		if n.Initializer == nil {
			parenthesize(b, lexer.KeywordVar+" "+n.Name.Lexeme)
			return
		}
		parenthesize(b, lexer.KeywordVar+" "+n.Name.Lexeme, n.Initializer)
	case *While:
		parenthesize(b, lexer.KeywordWhile, n.Condition, n.Body)
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func parenthesize(b *strings.Builder, name string, nodes ...Node) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, node := range nodes {
		b.WriteByte(' ')
		writeNode(b, node)
	}
	b.WriteByte(')')
}

func formatLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return lexer.KeywordNil
	case bool:
		if v {
			return lexer.KeywordTrue
		}
		return lexer.KeywordFalse
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
