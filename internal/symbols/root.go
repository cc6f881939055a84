package symbols

import (
	"github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// RootSymbol is the design root: its own parent, the ultimate ancestor of
// every other symbol, and the starting scope for Definition-mode lookup
// (spec.md §4.1/§4.4). Its members are every top-level module, interface,
// and program definition, and every package, merged across all registered
// compilation units,
// the way SystemVerilog definitions are visible compilation-wide
// regardless of which source file declared them.
type RootSymbol struct {
	*header
	*Scope

	units    []*CompilationUnitSymbol
	pending  []*syntax.CompilationUnit
	packages *PackageTable
}

func newRootSymbol(factory *Factory) *RootSymbol {
	s := &RootSymbol{packages: newPackageTable()}
	s.header = newHeader(factory, Root, "$root", position.Span{}, nil)
	s.header.parent = s
	s.Scope = NewScope(factory, func(b *MemberBuilder) { s.fill(b) })
	s.Scope.SetOwner(s)
	factory.track(s)

	return s
}

// AddCompilationUnit registers a parsed compilation unit's top-level
// items for elaboration. Must be called before the root's members are
// first accessed (before any lookup runs); the arena has no incremental
// recompilation story (spec.md §1, Non-goals).
func (s *RootSymbol) AddCompilationUnit(cu *syntax.CompilationUnit) {
	s.pending = append(s.pending, cu)
}

func (s *RootSymbol) fill(b *MemberBuilder) {
	for _, cu := range s.pending {
		unit := newCompilationUnitSymbol(s.Factory(), s, cu)
		s.units = append(s.units, unit)

		for _, item := range cu.Items {
			switch it := item.(type) {
			case *syntax.ModuleDeclaration:
				b.Add(newDefinitionSymbol(s.Factory(), unit, it))
			case *syntax.PackageDeclaration:
				pkg := newPackageSymbol(s.Factory(), unit, it)
				b.Add(pkg)
				s.packages.Register(pkg, it.Version)
			}
		}
	}
}

// Packages returns the compilation-wide package table.
func (s *RootSymbol) Packages() *PackageTable { return s.packages }

// CompilationUnitSymbol corresponds to one parsed source file's worth of
// top-level syntax. It holds no members of its own in this model -
// definitions and packages are merged directly into the root's scope -
// but it is kept as a distinct symbol so diagnostics and tooling can
// still report which unit a definition came from via FindAncestor.
type CompilationUnitSymbol struct {
	*header

	unit *syntax.CompilationUnit
}

func newCompilationUnitSymbol(factory *Factory, parent Symbol, cu *syntax.CompilationUnit) *CompilationUnitSymbol {
	s := &CompilationUnitSymbol{
		header: newHeader(factory, CompilationUnit, "", cu.Span(), parent),
		unit:   cu,
	}
	factory.track(s)

	return s
}

// PackageSymbol is a SystemVerilog package: a named scope whose members
// (parameters, typedefs, functions, data declarations) are visible both
// by explicit import and wildcard import (spec.md §3).
type PackageSymbol struct {
	*header
	*Scope

	version *semver.Version
}

func newPackageSymbol(factory *Factory, parent Symbol, decl *syntax.PackageDeclaration) *PackageSymbol {
	s := &PackageSymbol{}
	s.header = newHeader(factory, Package, decl.Name, decl.Span(), parent)
	s.Scope = NewScope(factory, func(b *MemberBuilder) { fillBody(factory, s, decl.Body, b) })
	s.Scope.SetOwner(s)

	if decl.Version != "" {
		if v, err := semver.NewVersion(decl.Version); err == nil {
			s.version = v
		}
	}

	factory.track(s)

	return s
}

// Version returns the package's semver version, or nil if it declared none.
func (s *PackageSymbol) Version() *semver.Version { return s.version }

// PackageTable is the compilation-wide package registry, keyed by name
// with an optional semver constraint for disambiguating multiple
// registered versions of the same package name.
type PackageTable struct {
	byName map[string][]*PackageSymbol
}

func newPackageTable() *PackageTable {
	return &PackageTable{byName: make(map[string][]*PackageSymbol)}
}

// Register records pkg under its own name. versionHint is unused beyond
// having already been parsed onto pkg by newPackageSymbol; it is accepted
// here to keep call sites reading naturally.
func (t *PackageTable) Register(pkg *PackageSymbol, versionHint string) {
	t.byName[pkg.Name()] = append(t.byName[pkg.Name()], pkg)
}

// Lookup finds the package named name. If constraint is non-empty and
// more than one package of that name is registered, the first registered
// package whose version satisfies the semver constraint wins; with no
// constraint, or only one candidate, the first (and ordinarily only)
// registered package of that name wins.
func (t *PackageTable) Lookup(name, constraint string) (*PackageSymbol, bool) {
	candidates := t.byName[name]
	if len(candidates) == 0 {
		return nil, false
	}

	if constraint == "" || len(candidates) == 1 {
		return candidates[0], true
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return candidates[0], true
	}

	for _, pkg := range candidates {
		if pkg.version != nil && c.Check(pkg.version) {
			return pkg, true
		}
	}

	return candidates[0], true
}
