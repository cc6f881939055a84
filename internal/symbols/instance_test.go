package symbols_test

import (
	"strconv"
	"testing"

	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/symbols"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// Instantiating an undeclared definition reports UndeclaredIdentifier and
// produces no instance member at all.
func TestInstantiateUnknownDefinition(t *testing.T) {
	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.HierarchyInstantiation{
			DefinitionName: "Ghost",
			Instances:      []*syntax.HierarchicalInstance{{Name: "u_ghost"}},
		},
	})

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	if _, ok := topInst.Member("u_ghost"); ok {
		t.Fatal("expected no instance member for an undeclared definition")
	}

	if bag.Count(diagnostics.UndeclaredIdentifier) != 1 {
		t.Fatalf("expected exactly one UndeclaredIdentifier diagnostic, got %d", bag.Count(diagnostics.UndeclaredIdentifier))
	}
}

// Overriding a name the definition declares no parameter for reports
// UndeclaredIdentifier, and the override has no effect on any real
// parameter.
func TestInstantiateOverrideOfUnknownParameter(t *testing.T) {
	leaf := moduleDecl("Leaf", []*syntax.ParameterDeclaration{
		paramDecl("int", "W", intLit(8), false),
	}, nil)

	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.HierarchyInstantiation{
			DefinitionName: "Leaf",
			Parameters:     []*syntax.ParamAssignment{{Name: "GHOST", Expr: intLit(1)}},
			Instances:      []*syntax.HierarchicalInstance{{Name: "u_leaf"}},
		},
	})

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{leaf, top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)
	leafInst := symbols.As[*symbols.InstanceSymbol](mustMember(t, topInst, "u_leaf"))
	w := symbols.As[*symbols.ParameterSymbol](mustMember(t, leafInst, "W"))

	if got := w.Value(); got.Int != 8 {
		t.Fatalf("W = %v, want 8 (unaffected by an override naming no real parameter)", got)
	}

	if bag.Count(diagnostics.UndeclaredIdentifier) != 1 {
		t.Fatalf("expected exactly one UndeclaredIdentifier diagnostic, got %d", bag.Count(diagnostics.UndeclaredIdentifier))
	}
}

// A single HierarchyInstantiation entry with an array range expands to
// one InstanceSymbol per element, each named "<base>[<index>]".
func TestInstantiateArrayRange(t *testing.T) {
	leaf := moduleDecl("Leaf", nil, nil)

	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.HierarchyInstantiation{
			DefinitionName: "Leaf",
			Instances: []*syntax.HierarchicalInstance{
				{Name: "u_leaf", Array: &syntax.InstanceRange{Left: 3, Right: 0}},
			},
		},
	})

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{leaf, top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	for i := 3; i >= 0; i-- {
		name := "u_leaf[" + strconv.Itoa(i) + "]"
		if _, ok := topInst.Member(name); !ok {
			t.Fatalf("expected instance member %q for array range [3:0]", name)
		}
	}

	if len(topInst.Members()) != 4 {
		t.Fatalf("got %d instance members, want 4", len(topInst.Members()))
	}

	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
}

// An ascending array range ("[0:3]") still produces one instance per
// element, indexed in the declared direction.
func TestInstantiateArrayRangeAscending(t *testing.T) {
	leaf := moduleDecl("Leaf", nil, nil)

	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.HierarchyInstantiation{
			DefinitionName: "Leaf",
			Instances: []*syntax.HierarchicalInstance{
				{Name: "u_leaf", Array: &syntax.InstanceRange{Left: 0, Right: 2}},
			},
		},
	})

	factory, _ := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{leaf, top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	for i := 0; i <= 2; i++ {
		name := "u_leaf[" + strconv.Itoa(i) + "]"
		if _, ok := topInst.Member(name); !ok {
			t.Fatalf("expected instance member %q for array range [0:2]", name)
		}
	}

	if len(topInst.Members()) != 3 {
		t.Fatalf("got %d instance members, want 3", len(topInst.Members()))
	}
}
