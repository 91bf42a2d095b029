package interpreter

import (
	"fmt"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		_, err := i.evaluateExpression(n.Expression, env)
		return err
	case *ast.Print:
		return i.evaluatePrint(n, env)
	case *ast.Var:
		return i.evaluateVar(n, env)
	case *ast.Block:
		return i.evaluateBlock(n, env)
	case *ast.If:
		return i.evaluateIf(n, env)
	case *ast.While:
		return i.evaluateWhile(n, env)
	default:
		return fmt.Errorf("interpreter: unsupported statement %T", node)
	}
}

func (i *Interpreter) evaluatePrint(stmt *ast.Print, env *runtime.Environment) error {
	value, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(i.out, runtime.Stringify(value)); err != nil {
		return fmt.Errorf("interpreter: write output: %w", err)
	}
	return nil
}

func (i *Interpreter) evaluateVar(stmt *ast.Var, env *runtime.Environment) error {
	var value runtime.Value = runtime.NilValue{}
	if stmt.Initializer != nil {
		val, err := i.evaluateExpression(stmt.Initializer, env)
		if err != nil {
			return err
		}
		value = val
	}
	env.Define(stmt.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) evaluateBlock(block *ast.Block, env *runtime.Environment) error {
	scope := runtime.NewEnvironment(env)
	for _, stmt := range block.Statements {
		if err := i.evaluateStatement(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluateIf(stmt *ast.If, env *runtime.Environment) error {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return err
	}
	if runtime.Truthy(cond) {
		return i.evaluateStatement(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.evaluateStatement(stmt.Else, env)
	}
	return nil
}

func (i *Interpreter) evaluateWhile(loop *ast.While, env *runtime.Environment) error {
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return err
		}
		if !runtime.Truthy(cond) {
			return nil
		}
		if err := i.evaluateStatement(loop.Body, env); err != nil {
			return err
		}
	}
}
