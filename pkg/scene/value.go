package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	flex "github.com/grindlemire/go-flex"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute size
	UnitPercent             // Percentage of the parent size
	UnitExpr                // Expression of the parent size
)

// Value represents a position or dimension that can be fixed, percentage,
// an expression of the parent size, or auto.
type Value struct {
	Amount float64
	Unit   Unit
	Source string

	program *vm.Program
}

// exprEnv is the environment size expressions are evaluated in.
type exprEnv struct {
	Parent float64 `expr:"parent"`
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute size.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the parent size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Expr compiles an expression of the parent size, such as "parent / 2 - 10".
func Expr(source string) (Value, error) {
	program, err := expr.Compile(source, expr.Env(exprEnv{}), expr.AsFloat64())
	if err != nil {
		return Value{}, fmt.Errorf("compile %q: %w", source, err)
	}
	return Value{Unit: UnitExpr, Source: source, program: program}, nil
}

// ParseValue parses the textual forms used in scene documents: "" or
// "auto", a number, a percentage ("50%"), or an expression.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "auto":
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid percentage %q", s)
		}
		return Percent(p), nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Fixed(n), nil
	}
	return Expr(s)
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve computes the actual value given the parent size. An expression
// that fails to evaluate resolves to 0; use Eval to see the error.
func (v Value) Resolve(parent float64) float64 {
	f, _ := v.Eval(parent)
	return f
}

// Eval computes the actual value given the parent size.
func (v Value) Eval(parent float64) (float64, error) {
	switch v.Unit {
	case UnitFixed:
		return v.Amount, nil
	case UnitPercent:
		return parent * v.Amount / 100.0, nil
	case UnitExpr:
		out, err := expr.Run(v.program, exprEnv{Parent: parent})
		if err != nil {
			return 0, fmt.Errorf("eval %q: %w", v.Source, err)
		}
		f, _ := out.(float64)
		return f, nil
	default:
		return 0, nil
	}
}

func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	case UnitExpr:
		return v.Source
	default:
		return "auto"
	}
}

// source is the plain value a Subject reports; relative units report 0
// and resolve through sizeFunc instead.
func (v Value) source() float64 {
	if v.Unit == UnitFixed {
		return v.Amount
	}
	return 0
}

// sizeFunc reports evaluation failures to onErr and lays the box out as
// if the value were 0.
func (v Value) sizeFunc(onErr func(parent float64, err error)) flex.SizeFunc {
	if v.Unit != UnitPercent && v.Unit != UnitExpr {
		return nil
	}
	return func(parent float64) float64 {
		f, err := v.Eval(parent)
		if err != nil && onErr != nil {
			onErr(parent, err)
		}
		return f
	}
}
