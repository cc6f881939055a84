package symbols

import (
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// VariableSymbol is an ordinary data declaration (a net, a variable, or a
// struct/interface member depending on context). Its type is lazily
// bound against the scope it was declared in.
type VariableSymbol struct {
	*header

	typeSyntax syntax.DataType
	scope      *Scope
	typ        *Lazy[Symbol]
	init       *Lazy[BoundExpression]
	initSyntax syntax.Expression
}

func newVariableSymbol(factory *Factory, parent Symbol, scope *Scope, at position.Span, name string, typeSyntax syntax.DataType, initSyntax syntax.Expression) *VariableSymbol {
	s := &VariableSymbol{
		header:     newHeader(factory, Variable, name, at, parent),
		typeSyntax: typeSyntax,
		scope:      scope,
		initSyntax: initSyntax,
	}
	s.typ = NewLazy(func() Symbol { return factory.Checker().BindType(scope, typeSyntax) }, func() Symbol { return nil })
	s.init = NewLazy(func() BoundExpression {
		if initSyntax == nil {
			return BoundExpression{}
		}

		return factory.Checker().BindExpression(scope, initSyntax)
	}, func() BoundExpression { return BoundExpression{Bad: true} })
	factory.track(s)

	return s
}

// Type returns the variable's resolved type, forcing resolution on first access.
func (s *VariableSymbol) Type() Symbol { return s.typ.Get() }

// Initializer returns the bound initializer expression, or the zero
// BoundExpression if the declaration had none.
func (s *VariableSymbol) Initializer() BoundExpression { return s.init.Get() }

// FormalArgumentDirection is the direction of a function/task argument.
type FormalArgumentDirection int

const (
	DirectionIn FormalArgumentDirection = iota
	DirectionOut
	DirectionInOut
	DirectionRef
)

func (d FormalArgumentDirection) String() string {
	switch d {
	case DirectionIn:
		return "input"
	case DirectionOut:
		return "output"
	case DirectionInOut:
		return "inout"
	case DirectionRef:
		return "ref"
	default:
		return "input"
	}
}

func parseDirection(s string) FormalArgumentDirection {
	switch s {
	case "out":
		return DirectionOut
	case "inout":
		return DirectionInOut
	case "ref":
		return DirectionRef
	default:
		return DirectionIn
	}
}

// FormalArgumentSymbol is one argument of a SubroutineSymbol.
type FormalArgumentSymbol struct {
	*header

	Direction  FormalArgumentDirection
	typeSyntax syntax.DataType
	scope      *Scope
	typ        *Lazy[Symbol]
}

func newFormalArgumentSymbol(factory *Factory, parent Symbol, scope *Scope, arg *syntax.FormalArgument) *FormalArgumentSymbol {
	s := &FormalArgumentSymbol{
		header:     newHeader(factory, FormalArgument, arg.Name, arg.Span(), parent),
		Direction:  parseDirection(arg.Direction),
		typeSyntax: arg.TypeSyntax,
		scope:      scope,
	}
	s.typ = NewLazy(func() Symbol { return factory.Checker().BindType(scope, arg.TypeSyntax) }, func() Symbol { return nil })
	factory.track(s)

	return s
}

// Type returns the argument's resolved type, forcing resolution on first access.
func (s *FormalArgumentSymbol) Type() Symbol { return s.typ.Get() }
