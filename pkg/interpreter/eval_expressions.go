package interpreter

import (
	"errors"
	"fmt"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/lexer"
	"github.com/firo1919/orlang/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return runtime.FromLiteral(n.Value), nil
	case *ast.Grouping:
		return i.evaluateExpression(n.Expression, env)
	case *ast.Variable:
		return i.evaluateVariable(n, env)
	case *ast.Assign:
		return i.evaluateAssign(n, env)
	case *ast.Unary:
		return i.evaluateUnary(n, env)
	case *ast.Binary:
		return i.evaluateBinary(n, env)
	case *ast.Logical:
		return i.evaluateLogical(n, env)
	default:
		return nil, fmt.Errorf("interpreter: unsupported expression %T", node)
	}
}

func (i *Interpreter) evaluateVariable(expr *ast.Variable, env *runtime.Environment) (runtime.Value, error) {
	value, err := env.Get(expr.Name.Lexeme)
	if err != nil {
		return nil, undefinedVariable(expr.Name, err)
	}
	return value, nil
}

func (i *Interpreter) evaluateAssign(expr *ast.Assign, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpression(expr.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(expr.Name.Lexeme, value); err != nil {
		return nil, undefinedVariable(expr.Name, err)
	}
	return value, nil
}

func (i *Interpreter) evaluateUnary(expr *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case lexer.KindBang:
		return runtime.BoolValue{Val: !runtime.Truthy(right)}, nil
	case lexer.KindMinus:
		num, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, newRuntimeError(expr.Operator, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	}
	return nil, newRuntimeError(expr.Operator, fmt.Sprintf("Unsupported unary operator %s.", expr.Operator.Lexeme))
}

func (i *Interpreter) evaluateBinary(expr *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr.Operator, left, right)
}

// evaluateLogical short-circuits and yields the operand that decided the
// result rather than a coerced boolean.
func (i *Interpreter) evaluateLogical(expr *ast.Logical, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	if expr.Operator.Kind == lexer.KindOr {
		if runtime.Truthy(left) {
			return left, nil
		}
	} else if !runtime.Truthy(left) {
		return left, nil
	}
	return i.evaluateExpression(expr.Right, env)
}

func undefinedVariable(name lexer.Token, err error) error {
	var undefined *runtime.UndefinedVariableError
	if errors.As(err, &undefined) {
		return newRuntimeError(name, undefined.Error())
	}
	return err
}
