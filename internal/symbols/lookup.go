package symbols

import (
	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
)

// Lookup resolves name starting from scope using mode's algorithm
// (spec.md §4.4). at is the location used both for visibility checks and
// for any diagnostic the lookup itself reports; it is frequently not the
// scope's own location, e.g. a reference expression mid-body.
func Lookup(scope *Scope, name string, mode LookupMode, at position.Span) Symbol {
	switch mode {
	case Direct:
		sym, ok := scope.Member(name)
		if !ok {
			return nil
		}

		return sym

	case Local:
		return lookupLocal(scope, name, at)

	case Scoped:
		if sym := lookupLocal(scope, name, at); sym != nil {
			return sym
		}

		root := scope.Owner().FindAncestor(Root)
		if root == nil {
			return nil
		}

		pkg, ok := As[*RootSymbol](root).packages.Lookup(name, "")
		if !ok {
			return nil
		}

		return pkg

	case Callable:
		sym := lookupLocal(scope, name, at)
		if sym == nil {
			return nil
		}

		if sym.Kind() != Subroutine {
			scope.factory.Diagnostics().Report(diagnostics.UndeclaredIdentifier, at,
				"'"+name+"' is not callable")

			return nil
		}

		return sym

	case Definition:
		root := scope.Owner().FindAncestor(Root)
		if root == nil {
			return nil
		}

		sym, ok := As[*RootSymbol](root).Member(name)
		if !ok || !sym.Kind().IsDefinition() {
			return nil
		}

		return sym
	}

	return nil
}

// lookupLocal implements the Local algorithm: this scope's own members,
// then its wildcard imports, then the parent scope, repeating up the
// hierarchy (spec.md §4.4). A member found in this scope's own table
// must additionally be visible at at (spec.md §3): a symbol whose own
// declaration lies strictly after at is not yet in scope, and the
// lookup fails outright rather than continuing to search an enclosing
// scope for an earlier, same-named declaration.
func lookupLocal(scope *Scope, name string, at position.Span) Symbol {
	for s := scope; s != nil; s = parentScopeOf(s) {
		if sym, ok := s.Member(name); ok {
			if sym.Kind() != ImplicitImport && !visibleAt(sym, at) {
				return nil
			}

			return sym
		}

		for _, wi := range s.WildcardImports() {
			if sym := wi.Resolve(name); sym != nil {
				implicit := newImplicitImportSymbol(s.factory, s.Owner(), name, sym)
				s.cacheImplicitImport(implicit)

				return implicit
			}
		}
	}

	return nil
}

// visibleAt reports whether sym's own declaration location is lexically
// at or before at, i.e. whether at is entitled to see it (spec.md §3: "a
// symbol is visible only to lookups whose lookup_location is lexically
// at or after its own location"). Package members and other
// compilation-wide declarations resolved outside lookupLocal (wildcard
// imports, the package table, Definition mode) are not subject to this
// check: they name units elaborated independently of any one use site,
// not a lexically-ordered local declaration.
func visibleAt(sym Symbol, at position.Span) bool {
	return !at.Start.Before(sym.Location().Start)
}

// parentScopeOf returns the nearest enclosing ScopeCapable ancestor of
// scope's owner, or nil once the hierarchy is exhausted.
func parentScopeOf(s *Scope) *Scope {
	owner := s.Owner()
	if owner == nil {
		return nil
	}

	p := owner.Parent()
	if p == owner {
		return nil
	}

	for p != nil {
		if sc, ok := TryAs[ScopeCapable](p); ok {
			return sc.AsScope()
		}

		if p.Parent() == p {
			return nil
		}

		p = p.Parent()
	}

	return nil
}
