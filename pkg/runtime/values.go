package runtime

import (
	"math"
	"strconv"

	"github.com/firo1919/orlang/pkg/lexer"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is implemented by every Orlang runtime value.
type Value interface {
	Kind() Kind
}

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// FromLiteral converts a literal payload produced by the lexer or parser.
// Unsupported payloads map to nil.
func FromLiteral(literal any) Value {
	switch v := literal.(type) {
	case bool:
		return BoolValue{Val: v}
	case float64:
		return NumberValue{Val: v}
	case string:
		return StringValue{Val: v}
	}
	return NilValue{}
}

// Truthy reports whether v counts as true in a condition: nil and false are
// falsey, everything else is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, NilValue:
		return false
	case BoolValue:
		return val.Val
	}
	return true
}

// Equal compares two values. Values of different kinds are never equal.
func Equal(a, b Value) bool {
	if a == nil {
		a = NilValue{}
	}
	if b == nil {
		b = NilValue{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NilValue:
		return true
	case BoolValue:
		return av.Val == b.(BoolValue).Val
	case NumberValue:
		return av.Val == b.(NumberValue).Val
	case StringValue:
		return av.Val == b.(StringValue).Val
	}
	return false
}

// Stringify renders a value the way barreessi displays it.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil, NilValue:
		return lexer.KeywordNil
	case BoolValue:
		if val.Val {
			return lexer.KeywordTrue
		}
		return lexer.KeywordFalse
	case NumberValue:
		return formatNumber(val.Val)
	case StringValue:
		return val.Val
	}
	return "<unknown>"
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
