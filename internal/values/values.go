// Package values implements the constant-value representation produced by
// constant evaluation. The evaluator itself is an external collaborator
// (spec.md §1); this package only defines the value shape the semantic core
// stores in parameter symbols, enum values, and generate-loop bookkeeping.
package values

import "fmt"

// Kind discriminates the payload carried by a Value.
type Kind int

const (
	// Unset marks a value that has not been computed yet; distinct from Bad.
	Unset Kind = iota
	Integer
	Real
	String
	Bool
	// Bad marks a value that failed to evaluate or convert. Bad values are
	// never re-derived; they are a terminal sentinel (spec.md §4.3's
	// evaluateConstantAndConvert: "on conversion failure the value is
	// tagged bad but no exception is raised").
	Bad
)

// Value is a tagged constant value. Only the field matching Kind is
// meaningful.
type Value struct {
	Str    string
	Kind   Kind
	Int    int64
	Real   float64
	Bool   bool
	Width  int
	Signed bool
}

// BadValue is the shared bad sentinel returned on evaluation/conversion
// failure and installed into a cyclic lazy cell.
var BadValue = Value{Kind: Bad}

// UnsetValue is the zero value of a Value not yet computed.
var UnsetValue = Value{Kind: Unset}

// IsBad reports whether v is the bad sentinel.
func (v Value) IsBad() bool { return v.Kind == Bad }

// NewInt constructs a signed or unsigned integral constant of the given bit width.
func NewInt(val int64, width int, signed bool) Value {
	return Value{Kind: Integer, Int: val, Width: width, Signed: signed}
}

// NewBool constructs a single-bit value carrying a boolean interpretation,
// used for generate/if conditions and genvar-loop termination checks.
func NewBool(b bool) Value {
	i := int64(0)
	if b {
		i = 1
	}

	return Value{Kind: Bool, Bool: b, Int: i, Width: 1, Signed: false}
}

// Truthy follows the SystemVerilog rule that any nonzero integral value is
// true in a condition context; a Bad value is never truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Integer:
		return v.Int != 0
	case Real:
		return v.Real != 0
	default:
		return false
	}
}

// String renders the value for diagnostics and test failure messages.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return fmt.Sprintf("%d", v.Int)
	case Real:
		return fmt.Sprintf("%g", v.Real)
	case Bool:
		return fmt.Sprintf("%t", v.Bool)
	case String:
		return v.Str
	case Bad:
		return "<bad>"
	default:
		return "<unset>"
	}
}
