package symbols_test

import (
	"testing"

	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/symbols"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// Explicit import of a package that was never declared reports
// MissingPackage and leaves the import's Target nil.
func TestExplicitImportUnknownPackage(t *testing.T) {
	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.ExplicitImport{PackageName: "nope", ImportName: "X"},
	})

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	imp := symbols.As[*symbols.ExplicitImportSymbol](mustMember(t, topInst, "X"))
	if imp.Target() != nil {
		t.Fatalf("expected a nil Target for an import of an unknown package, got %v", imp.Target())
	}

	if bag.Count(diagnostics.MissingPackage) != 1 {
		t.Fatalf("expected exactly one MissingPackage diagnostic, got %d", bag.Count(diagnostics.MissingPackage))
	}
}

// Explicit import of a member the named package does not declare reports
// MissingImportedMember.
func TestExplicitImportUnknownMember(t *testing.T) {
	pkg := &syntax.PackageDeclaration{Name: "defs", Body: nil}
	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.ExplicitImport{PackageName: "defs", ImportName: "GHOST"},
	})

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{pkg, top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	imp := symbols.As[*symbols.ExplicitImportSymbol](mustMember(t, topInst, "GHOST"))
	if imp.Target() != nil {
		t.Fatalf("expected a nil Target for an unknown imported member, got %v", imp.Target())
	}

	if bag.Count(diagnostics.MissingImportedMember) != 1 {
		t.Fatalf("expected exactly one MissingImportedMember diagnostic, got %d", bag.Count(diagnostics.MissingImportedMember))
	}
}

// A wildcard import of an unknown package reports MissingPackage; a
// subsequent Local lookup against its wildcarded names simply misses
// rather than raising a second diagnostic.
func TestWildcardImportUnknownPackage(t *testing.T) {
	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.WildcardImport{PackageName: "nope"},
	})

	factory, bag := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	if sym := symbols.Lookup(topInst.Scope, "WIDTH", symbols.Local, position.Span{}); sym != nil {
		t.Fatalf("expected no member resolved through an unresolvable wildcard import, got %v", sym)
	}

	if bag.Count(diagnostics.MissingPackage) != 1 {
		t.Fatalf("expected exactly one MissingPackage diagnostic, got %d", bag.Count(diagnostics.MissingPackage))
	}
}

// Looking up the same wildcard-imported name twice returns the same
// ImplicitImportSymbol identity, rather than re-resolving and minting a
// new stand-in symbol on every lookup.
func TestWildcardImportCachesImplicitImportIdentity(t *testing.T) {
	pkg := &syntax.PackageDeclaration{
		Name: "defs",
		Body: []syntax.Item{paramDecl("int", "WIDTH", intLit(32), true)},
	}
	top := moduleDecl("Top", nil, []syntax.Item{
		&syntax.WildcardImport{PackageName: "defs"},
	})

	factory, _ := newFactory()
	factory.Root().AddCompilationUnit(&syntax.CompilationUnit{Items: []syntax.Item{pkg, top}})

	topDef := symbols.As[*symbols.DefinitionSymbol](mustMember(t, factory.Root(), "Top"))
	topInst := factory.Instantiate(topDef, "top", nil)

	first := symbols.Lookup(topInst.Scope, "WIDTH", symbols.Local, position.Span{})
	if first == nil {
		t.Fatal("WIDTH not visible via wildcard import")
	}

	// Now a direct member of the instance's own scope: a second lookup
	// must find it straight off, without consulting the wildcard import
	// again.
	second, ok := topInst.Member("WIDTH")
	if !ok {
		t.Fatal("WIDTH not visible on second lookup")
	}

	if first != second {
		t.Fatal("expected the same ImplicitImportSymbol identity across repeated lookups")
	}
}
