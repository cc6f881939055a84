// Package checker is a reference implementation of the symbols.Checker
// collaborator: enough expression typing, statement binding, and
// constant evaluation to drive the semantic core's tests without a real
// parser or a full SystemVerilog type system behind it. It hand-builds
// answers from the syntax tree the way the front end's own tests build
// HIR fixtures directly rather than parsing source text.
package checker

import (
	"github.com/orizon-lang/svsema/internal/symbols"
	"github.com/orizon-lang/svsema/internal/syntax"
	"github.com/orizon-lang/svsema/internal/values"
)

// Reference is a minimal, self-contained symbols.Checker: constant
// folding over integer/boolean literals and identifiers, and Direct/Local
// name-to-type binding good enough for parameters, generate conditions,
// and genvar loops. It reports no diagnostics of its own; every failure
// it detects (an unresolved identifier, a non-constant expression) simply
// yields values.BadValue, or a nil type from BindType.
type Reference struct{}

// New builds a Reference checker.
func New() *Reference { return &Reference{} }

// BindExpression evaluates expr's constant value when possible; it leaves
// the result's Type field nil.
func (r *Reference) BindExpression(scope *symbols.Scope, expr syntax.Expression) symbols.BoundExpression {
	val := r.EvaluateConstant(scope, expr)

	return symbols.BoundExpression{ConstantValue: val, Bad: val.IsBad()}
}

// BindStatement binds one statement; this reference checker only
// recognizes expression statements as potentially failing.
func (r *Reference) BindStatement(scope *symbols.Scope, stmt syntax.Statement) symbols.BoundStatement {
	switch st := stmt.(type) {
	case *syntax.ExpressionStatement:
		return symbols.BoundStatement{Bad: r.BindExpression(scope, st.Expression).Bad}
	case *syntax.BlockStatement:
		for _, inner := range st.Statements {
			if r.BindStatement(scope, inner).Bad {
				return symbols.BoundStatement{Bad: true}
			}
		}

		return symbols.BoundStatement{}
	default:
		return symbols.BoundStatement{}
	}
}

// BindStatementList binds every statement in stmts against scope.
func (r *Reference) BindStatementList(scope *symbols.Scope, stmts []syntax.Statement) symbols.BoundStatementList {
	out := symbols.BoundStatementList{Statements: make([]symbols.BoundStatement, 0, len(stmts))}

	for _, stmt := range stmts {
		out.Statements = append(out.Statements, r.BindStatement(scope, stmt))
	}

	return out
}

// BindType resolves a NamedType to a builtin type symbol, or failing
// that to a user type visible by Local lookup (an enum, typedef, or
// interface used as a modport-less type reference).
func (r *Reference) BindType(scope *symbols.Scope, dt syntax.DataType) symbols.Symbol {
	named, ok := dt.(*syntax.NamedType)
	if !ok {
		return nil
	}

	if builtin := scope.Owner().Factory().Builtins().Lookup(named.Name); builtin != nil {
		return builtin
	}

	return symbols.Lookup(scope, named.Name, symbols.Local, named.Span())
}

// EvaluateConstant folds expr to a constant value: integer literals are
// themselves constant, identifiers fold to the constant value of the
// symbol they resolve to (a parameter or genvar, directly or through a
// wildcard import's implicit import; any other symbol, enum values
// included, folds to values.BadValue), and
// binary/unary expressions fold their operands according to op.
func (r *Reference) EvaluateConstant(scope *symbols.Scope, expr syntax.Expression) values.Value {
	switch e := expr.(type) {
	case *syntax.IntegerLiteral:
		return values.NewInt(e.Value, e.Width, e.Signed)

	case *syntax.Identifier:
		sym := symbols.Lookup(scope, e.Name, symbols.Local, e.Span())
		if sym == nil {
			return values.BadValue
		}

		return constantOf(sym)

	case *syntax.UnaryExpression:
		operand := r.EvaluateConstant(scope, e.Operand)
		if operand.IsBad() {
			return values.BadValue
		}

		return evalUnary(e.Op, operand)

	case *syntax.BinaryExpression:
		left := r.EvaluateConstant(scope, e.Left)
		right := r.EvaluateConstant(scope, e.Right)

		if left.IsBad() || right.IsBad() {
			return values.BadValue
		}

		return evalBinary(e.Op, left, right)

	default:
		return values.BadValue
	}
}

// ConvertConstant truncates or extends val to targetType's declared
// width when targetType is an integral type; any other target type
// passes val through unchanged.
func (r *Reference) ConvertConstant(scope *symbols.Scope, val values.Value, targetType symbols.Symbol) values.Value {
	it, ok := symbols.TryAs[*symbols.IntegralTypeSymbol](targetType)
	if !ok || val.Kind != values.Integer {
		return val
	}

	mask := int64(1)<<uint(it.Width) - 1
	truncated := val.Int & mask

	if it.Signed && it.Width > 0 && truncated&(int64(1)<<uint(it.Width-1)) != 0 {
		truncated |= ^mask
	}

	return values.NewInt(truncated, it.Width, it.Signed)
}

func constantOf(sym symbols.Symbol) values.Value {
	switch s := sym.(type) {
	case *symbols.ParameterSymbol:
		return s.Value()
	case *symbols.GenvarSymbol:
		return s.Value()
	case *symbols.ImplicitImportSymbol:
		return constantOf(s.Target())
	default:
		return values.BadValue
	}
}

func evalUnary(op string, operand values.Value) values.Value {
	switch op {
	case "-":
		return values.NewInt(-operand.Int, operand.Width, operand.Signed)
	case "!":
		return values.NewBool(!operand.Truthy())
	case "++":
		return values.NewInt(operand.Int+1, operand.Width, operand.Signed)
	case "--":
		return values.NewInt(operand.Int-1, operand.Width, operand.Signed)
	default:
		return values.BadValue
	}
}

func evalBinary(op string, left, right values.Value) values.Value {
	width := left.Width
	if right.Width > width {
		width = right.Width
	}

	signed := left.Signed && right.Signed

	switch op {
	case "+":
		return values.NewInt(left.Int+right.Int, width, signed)
	case "-":
		return values.NewInt(left.Int-right.Int, width, signed)
	case "*":
		return values.NewInt(left.Int*right.Int, width, signed)
	case "<":
		return values.NewBool(left.Int < right.Int)
	case "<=":
		return values.NewBool(left.Int <= right.Int)
	case ">":
		return values.NewBool(left.Int > right.Int)
	case ">=":
		return values.NewBool(left.Int >= right.Int)
	case "==":
		return values.NewBool(left.Int == right.Int)
	case "!=":
		return values.NewBool(left.Int != right.Int)
	case "&&":
		return values.NewBool(left.Truthy() && right.Truthy())
	case "||":
		return values.NewBool(left.Truthy() || right.Truthy())
	default:
		return values.BadValue
	}
}
