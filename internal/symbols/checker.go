package symbols

import (
	"github.com/orizon-lang/svsema/internal/syntax"
	"github.com/orizon-lang/svsema/internal/values"
)

// BoundExpression is the result of binding a syntax.Expression against a
// scope: its resolved type, and its constant value if it happens to be a
// constant expression.
type BoundExpression struct {
	Type          Symbol
	ConstantValue values.Value
	Bad           bool
}

// BoundStatement is the result of binding a single syntax.Statement.
type BoundStatement struct {
	Bad bool
}

// BoundStatementList is the result of binding a statement sequence that
// forms one procedural body (spec.md §4.2's body-binding entry point used
// by SequentialBlockSymbol/ProceduralBlockSymbol/SubroutineSymbol).
type BoundStatementList struct {
	Statements []BoundStatement
}

// Checker is the external semantic-checker collaborator this package
// consumes (spec.md §1/§6): everything about expression typing, statement
// binding, and constant evaluation/conversion lives outside this package.
// The interface is declared here, the consumer, rather than in the
// collaborator's own package, so a concrete checker implementation can
// import this package without creating a cycle.
type Checker interface {
	// BindExpression resolves the type (and, for constants, the value) of
	// expr evaluated in scope.
	BindExpression(scope *Scope, expr syntax.Expression) BoundExpression

	// BindStatement binds one procedural statement against scope.
	BindStatement(scope *Scope, stmt syntax.Statement) BoundStatement

	// BindStatementList binds a statement sequence sharing one scope.
	BindStatementList(scope *Scope, stmts []syntax.Statement) BoundStatementList

	// BindType resolves a syntax.DataType to the type symbol it names,
	// e.g. a NamedType("int") to the builtin IntegralType for int. Returns
	// nil on failure.
	BindType(scope *Scope, dt syntax.DataType) Symbol

	// EvaluateConstant evaluates expr to a constant value. Returns
	// values.BadValue if expr is not a constant expression.
	EvaluateConstant(scope *Scope, expr syntax.Expression) values.Value

	// ConvertConstant converts val to targetType's representation,
	// e.g. truncating/extending an integral to a parameter's declared
	// width. Returns values.BadValue on a failed conversion (spec.md §4.3:
	// "tagged bad but no exception is raised").
	ConvertConstant(scope *Scope, val values.Value, targetType Symbol) values.Value
}
