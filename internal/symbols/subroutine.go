package symbols

import (
	"github.com/orizon-lang/svsema/internal/syntax"
)

// SystemFunction identifies a builtin system task/function ($display,
// $clog2, and so on); NotSystem marks a user-defined subroutine.
type SystemFunction int

const (
	NotSystem SystemFunction = iota
	SystemDisplay
	SystemClog2
	SystemBits
	SystemSize
	SystemCast
)

// systemFunctions maps the subset of system-task/function names this
// front end recognizes by name; anything else names a user subroutine.
var systemFunctions = map[string]SystemFunction{
	"$display": SystemDisplay,
	"$clog2":   SystemClog2,
	"$bits":    SystemBits,
	"$size":    SystemSize,
	"$cast":    SystemCast,
}

// SubroutineSymbol is a function or task declaration; also a scope, since
// its formal arguments and local variables are its members.
type SubroutineSymbol struct {
	*header
	*Scope

	IsTask         bool
	systemFunction SystemFunction
	returnType     syntax.DataType
	body           []syntax.Statement
	retTyp         *Lazy[Symbol]
	arguments      []*FormalArgumentSymbol
}

func newSubroutineSymbol(factory *Factory, parent Symbol, decl *syntax.FunctionDeclaration) *SubroutineSymbol {
	s := &SubroutineSymbol{
		IsTask:         decl.IsTask,
		systemFunction: systemFunctions[decl.Name],
		returnType:     decl.ReturnType,
		body:           decl.Body,
	}
	s.header = newHeader(factory, Subroutine, decl.Name, decl.Span(), parent)
	s.Scope = NewScope(factory, func(b *MemberBuilder) { s.fill(factory, decl, b) })
	s.Scope.SetOwner(s)
	s.retTyp = NewLazy(func() Symbol {
		if decl.IsTask || decl.ReturnType == nil {
			return factory.Builtins().Void
		}

		return factory.Checker().BindType(s.Scope, decl.ReturnType)
	}, func() Symbol { return nil })
	factory.track(s)

	return s
}

func (s *SubroutineSymbol) fill(factory *Factory, decl *syntax.FunctionDeclaration, b *MemberBuilder) {
	for _, arg := range decl.Arguments {
		fa := newFormalArgumentSymbol(factory, s, s.Scope, arg)
		s.arguments = append(s.arguments, fa)
		b.Add(fa)
	}
}

// IsSystemFunction reports whether this subroutine is a recognized
// builtin system task/function rather than a user declaration.
func (s *SubroutineSymbol) IsSystemFunction() bool { return s.systemFunction != NotSystem }

// SystemFunctionKind returns which builtin this subroutine is, or
// NotSystem for a user-defined subroutine.
func (s *SubroutineSymbol) SystemFunctionKind() SystemFunction { return s.systemFunction }

// ReturnType returns the resolved return type, forcing resolution on
// first access. A task's return type is always void.
func (s *SubroutineSymbol) ReturnType() Symbol { return s.retTyp.Get() }

// Arguments returns the subroutine's formal arguments in declaration order.
func (s *SubroutineSymbol) Arguments() []*FormalArgumentSymbol {
	s.ensureInit()

	return s.arguments
}

// Body binds and returns the subroutine's statement body via the
// external checker, each call re-binding rather than caching, since a
// bound body is only needed during elaboration-time checking in this
// front end, not repeatedly at runtime.
func (s *SubroutineSymbol) Body() BoundStatementList {
	return s.Factory().Checker().BindStatementList(s.Scope, s.body)
}
