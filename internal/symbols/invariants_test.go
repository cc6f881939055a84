package symbols_test

import (
	"testing"

	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/symbols"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// Two parameters whose defaults reference each other detect the cycle
// instead of recursing forever, report CyclicDependency exactly once, and
// both resolve to a bad value.
func TestParameterCyclicDependency(t *testing.T) {
	top := moduleDecl("Top", []*syntax.ParameterDeclaration{
		paramDecl("int", "A", ident("B"), false),
		paramDecl("int", "B", ident("A"), false),
	}, nil)

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	a := symbols.As[*symbols.ParameterSymbol](mustMember(t, topInst, "A"))
	b := symbols.As[*symbols.ParameterSymbol](mustMember(t, topInst, "B"))

	if !a.Value().IsBad() {
		t.Fatal("expected A's value to be bad after a cyclic default reference")
	}

	if !b.Value().IsBad() {
		t.Fatal("expected B's value to be bad after a cyclic default reference")
	}

	if bag.Count(diagnostics.CyclicDependency) != 1 {
		t.Fatalf("expected exactly one CyclicDependency diagnostic, got %d", bag.Count(diagnostics.CyclicDependency))
	}
}

// A Lazy cell is forced at most once: repeated Value() calls on the same
// parameter do not re-evaluate its default or report a diagnostic twice.
func TestParameterValueMemoizedAcrossRepeatedAccess(t *testing.T) {
	top := moduleDecl("Top", []*syntax.ParameterDeclaration{
		paramDecl("int", "W", intLit(8), false),
	}, nil)

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)
	w := symbols.As[*symbols.ParameterSymbol](mustMember(t, topInst, "W"))

	first := w.Value()
	second := w.Value()

	if first != second {
		t.Fatalf("expected the same memoized value across repeated Value() calls, got %v and %v", first, second)
	}

	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
}

// A parameter default may forward-reference a sibling parameter declared
// later in the same body, since the enclosing scope is fully filled
// before any value is forced.
func TestParameterDefaultForwardReferencesSibling(t *testing.T) {
	top := moduleDecl("Top", []*syntax.ParameterDeclaration{
		paramDecl("int", "B", ident("C"), false),
		paramDecl("int", "C", intLit(42), false),
	}, nil)

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)
	b := symbols.As[*symbols.ParameterSymbol](mustMember(t, topInst, "B"))

	if got := b.Value(); got.Int != 42 {
		t.Fatalf("B = %v, want 42 (forward reference to C, declared later)", got)
	}

	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
}

// A parameter with neither a default nor an override reports
// MissingRequiredParameter and resolves to a bad value.
func TestParameterMissingRequiredValue(t *testing.T) {
	top := moduleDecl("Top", []*syntax.ParameterDeclaration{
		paramDecl("int", "W", nil, false),
	}, nil)

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)
	w := symbols.As[*symbols.ParameterSymbol](mustMember(t, topInst, "W"))

	if !w.Value().IsBad() {
		t.Fatal("expected a bad value for a parameter with no default and no override")
	}

	if bag.Count(diagnostics.MissingRequiredParameter) != 1 {
		t.Fatalf("expected exactly one MissingRequiredParameter diagnostic, got %d", bag.Count(diagnostics.MissingRequiredParameter))
	}
}

// TryAs is the non-trapping counterpart of As: a kind mismatch is an
// ordinary false return, not a panic.
func TestTryAsDoesNotPanicOnKindMismatch(t *testing.T) {
	top := moduleDecl("Top", []*syntax.ParameterDeclaration{
		paramDecl("int", "W", intLit(8), false),
	}, nil)

	factory, _ := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	w := mustMember(t, topInst, "W")
	if _, ok := symbols.TryAs[*symbols.InstanceSymbol](w); ok {
		t.Fatal("expected TryAs to fail for a kind mismatch, not succeed")
	}
}

// As is a checked downcast that panics, rather than silently returning a
// zero value, when the symbol's actual kind does not match.
func TestAsPanicsOnKindMismatch(t *testing.T) {
	top := moduleDecl("Top", []*syntax.ParameterDeclaration{
		paramDecl("int", "W", intLit(8), false),
	}, nil)

	factory, _ := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)
	w := mustMember(t, topInst, "W")

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected As to panic on a kind mismatch")
		}
	}()

	symbols.As[*symbols.InstanceSymbol](w)
}
