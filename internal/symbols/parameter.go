package symbols

import (
	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
	"github.com/orizon-lang/svsema/internal/values"
)

// ParameterSymbol is a `parameter` or `localparam` declaration within an
// instance. Its type and value are lazily bound against the instance's
// own scope, so a parameter expression may reference an earlier sibling
// parameter without forcing evaluation order at construction time
// (spec.md §4.3).
type ParameterSymbol struct {
	*header

	isLocalParam bool
	typ          *Lazy[Symbol]
	value        *Lazy[values.Value]
}

// IsLocalParam reports whether this is a `localparam` (not overridable at
// instantiation).
func (s *ParameterSymbol) IsLocalParam() bool { return s.isLocalParam }

// Type returns the parameter's resolved type, forcing resolution on
// first access.
func (s *ParameterSymbol) Type() Symbol { return s.typ.Get() }

// Value returns the parameter's resolved constant value, forcing
// evaluation on first access. A parameter with no default and no
// override resolves to values.BadValue with a MissingRequiredParameter
// diagnostic already reported.
func (s *ParameterSymbol) Value() values.Value { return s.value.Get() }

// newParameterSymbol builds a parameter belonging to instanceScope. Its
// type, and a default value, are bound against instanceScope (so a later
// parameter's default may reference an earlier sibling); an override
// value, if present, is bound against outerScope instead, the
// instantiation site's own scope, since that is where the override
// expression's names are visible (spec.md §4.3).
func newParameterSymbol(
	factory *Factory,
	parent Symbol,
	instanceScope, outerScope *Scope,
	at position.Span,
	name string,
	typeSyntax syntax.DataType,
	defaultExpr, overrideExpr syntax.Expression,
	isLocalParam bool,
) *ParameterSymbol {
	s := &ParameterSymbol{
		header:       newHeader(factory, Parameter, name, at, parent),
		isLocalParam: isLocalParam,
	}

	s.typ = NewLazy(
		func() Symbol {
			if typeSyntax == nil {
				return nil
			}

			return factory.Checker().BindType(instanceScope, typeSyntax)
		},
		func() Symbol { return nil },
	)

	s.value = NewLazy(
		func() values.Value {
			if overrideExpr != nil {
				return outerScope.EvaluateConstantAndConvert(overrideExpr, s.typ.Get())
			}

			if defaultExpr != nil {
				return instanceScope.EvaluateConstantAndConvert(defaultExpr, s.typ.Get())
			}

			factory.Diagnostics().Report(diagnostics.MissingRequiredParameter, at,
				"parameter '"+name+"' has no default value and was not overridden")

			return values.BadValue
		},
		func() values.Value {
			factory.Diagnostics().Report(diagnostics.CyclicDependency, at,
				"cyclic dependency evaluating parameter '"+name+"'")

			return values.BadValue
		},
	)

	factory.track(s)

	return s
}
