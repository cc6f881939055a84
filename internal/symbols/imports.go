package symbols

import (
	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
)

// ExplicitImportSymbol is `import pkg::name;`: a member of the importing
// scope that, once resolved, forwards to the named package member.
type ExplicitImportSymbol struct {
	*header

	packageName string
	importName  string
	target      *Lazy[Symbol]
}

func newExplicitImportSymbol(factory *Factory, parent Symbol, at position.Span, packageName, importName string) *ExplicitImportSymbol {
	s := &ExplicitImportSymbol{
		header:      newHeader(factory, ExplicitImport, importName, at, parent),
		packageName: packageName,
		importName:  importName,
	}
	s.target = NewLazy(func() Symbol { return s.resolve() }, func() Symbol { return nil })
	factory.track(s)

	return s
}

func (s *ExplicitImportSymbol) resolve() Symbol {
	root := s.Root()

	rootSym, ok := TryAs[*RootSymbol](root)
	if !ok {
		return nil
	}

	pkg, ok := rootSym.packages.Lookup(s.packageName, "")
	if !ok {
		s.Factory().Diagnostics().Report(diagnostics.MissingPackage, s.Location(),
			"unknown package '"+s.packageName+"'")

		return nil
	}

	member, ok := pkg.Member(s.importName)
	if !ok {
		s.Factory().Diagnostics().Report(diagnostics.MissingImportedMember, s.Location(),
			"package '"+s.packageName+"' has no member '"+s.importName+"'")

		return nil
	}

	return member
}

// Target returns the imported symbol, resolving on first access.
func (s *ExplicitImportSymbol) Target() Symbol { return s.target.Get() }

// PackageName is the package named by the import.
func (s *ExplicitImportSymbol) PackageName() string { return s.packageName }

// WildcardImportSymbol is `import pkg::*;`. Unlike an explicit import it
// is not itself a named member; Resolve is consulted by Local-mode lookup
// as a fallback once the scope's own member map misses (spec.md §4.4).
type WildcardImportSymbol struct {
	*header

	packageName string
	pkg         *Lazy[*PackageSymbol]
}

func newWildcardImportSymbol(factory *Factory, parent Symbol, at position.Span, packageName string) *WildcardImportSymbol {
	s := &WildcardImportSymbol{
		header:      newHeader(factory, WildcardImport, "import "+packageName+"::*", at, parent),
		packageName: packageName,
	}
	s.pkg = NewLazy(func() *PackageSymbol { return s.resolvePackage() }, func() *PackageSymbol { return nil })
	factory.track(s)

	return s
}

func (s *WildcardImportSymbol) resolvePackage() *PackageSymbol {
	root := s.Root()

	rootSym, ok := TryAs[*RootSymbol](root)
	if !ok {
		return nil
	}

	pkg, ok := rootSym.packages.Lookup(s.packageName, "")
	if !ok {
		s.Factory().Diagnostics().Report(diagnostics.MissingPackage, s.Location(),
			"unknown package '"+s.packageName+"'")

		return nil
	}

	return pkg
}

// Resolve looks up name in the wildcarded package, or returns nil if the
// package is unresolvable or has no such member.
func (s *WildcardImportSymbol) Resolve(name string) Symbol {
	pkg := s.pkg.Get()
	if pkg == nil {
		return nil
	}

	sym, ok := pkg.Member(name)
	if !ok {
		return nil
	}

	return sym
}

// ImplicitImportSymbol is the stable member a scope installs into its own
// member map the first time a wildcard import supplies a given name, so
// repeated lookups of that name return the same symbol identity instead
// of re-resolving the wildcard import each time (mirrors how the scope's
// own member map, not the wildcard import list, is the durable home for
// a name once resolved).
type ImplicitImportSymbol struct {
	*header

	target Symbol
}

func newImplicitImportSymbol(factory *Factory, parent Symbol, name string, target Symbol) *ImplicitImportSymbol {
	s := &ImplicitImportSymbol{
		header: newHeader(factory, ImplicitImport, name, target.Location(), parent),
		target: target,
	}
	factory.track(s)

	return s
}

// Target returns the symbol this implicit import stands in for.
func (s *ImplicitImportSymbol) Target() Symbol { return s.target }
