package interpreter

import (
	"fmt"

	"github.com/firo1919/orlang/pkg/lexer"
	"github.com/firo1919/orlang/pkg/runtime"
)

func applyBinaryOperator(op lexer.Token, left, right runtime.Value) (runtime.Value, error) {
	switch op.Kind {
	case lexer.KindEqualEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case lexer.KindBangEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case lexer.KindPlus:
		return evaluatePlus(op, left, right)
	case lexer.KindMinus, lexer.KindStar, lexer.KindSlash:
		return evaluateArithmetic(op, left, right)
	case lexer.KindGreater, lexer.KindGreaterEqual, lexer.KindLess, lexer.KindLessEqual:
		return evaluateComparison(op, left, right)
	}
	return nil, newRuntimeError(op, fmt.Sprintf("Unsupported binary operator %s.", op.Lexeme))
}

func evaluatePlus(op lexer.Token, left, right runtime.Value) (runtime.Value, error) {
	switch lv := left.(type) {
	case runtime.NumberValue:
		if rv, ok := right.(runtime.NumberValue); ok {
			return runtime.NumberValue{Val: lv.Val + rv.Val}, nil
		}
	case runtime.StringValue:
		if rv, ok := right.(runtime.StringValue); ok {
			return runtime.StringValue{Val: lv.Val + rv.Val}, nil
		}
	}
	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func evaluateArithmetic(op lexer.Token, left, right runtime.Value) (runtime.Value, error) {
	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	switch op.Kind {
	case lexer.KindMinus:
		return runtime.NumberValue{Val: l - r}, nil
	case lexer.KindStar:
		return runtime.NumberValue{Val: l * r}, nil
	default:
		if r == 0 {
			return nil, newRuntimeError(op, "Division by zero.")
		}
		return runtime.NumberValue{Val: l / r}, nil
	}
}

func evaluateComparison(op lexer.Token, left, right runtime.Value) (runtime.Value, error) {
	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	var result bool
	switch op.Kind {
	case lexer.KindGreater:
		result = l > r
	case lexer.KindGreaterEqual:
		result = l >= r
	case lexer.KindLess:
		result = l < r
	default:
		result = l <= r
	}
	return runtime.BoolValue{Val: result}, nil
}

func numberOperands(op lexer.Token, left, right runtime.Value) (float64, float64, error) {
	lv, lok := left.(runtime.NumberValue)
	rv, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return lv.Val, rv.Val, nil
}
