package symbols

import (
	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
	"github.com/orizon-lang/svsema/internal/values"
)

// scopeState tracks whether a Scope's member map has been filled yet.
type scopeState int

const (
	scopeUninitialized scopeState = iota
	scopeInitializing
	scopeInitialized
)

// ScopeCapable is implemented by every symbol that can hold members:
// instances, packages, generate constructs and their blocks, sequential
// blocks, subroutines, enum types, dynamic scopes, and the compilation
// root. Its methods are promoted for free by any
// struct that embeds *Scope.
type ScopeCapable interface {
	Symbol
	Members() []Symbol
	Member(name string) (Symbol, bool)
	AsScope() *Scope
}

// Scope is the member-table and deferred-fill engine embedded by every
// scope-bearing symbol (spec.md §4.1). Members are not computed at
// construction time; the first access to the member table runs fillFn
// once (the fillMembers virtual in the original design, modeled here as a
// constructor-supplied closure instead of an override point).
type Scope struct {
	owner           Symbol
	factory         *Factory
	fillFn          func(*MemberBuilder)
	members         map[string]Symbol
	order           []string
	wildcardImports []*WildcardImportSymbol
	state           scopeState
}

// NewScope constructs a scope owned by owner, filled lazily by fill.
// fill may be nil for scopes with no declared members (e.g. a builtin
// type symbol that implements ScopeCapable only for uniformity).
func NewScope(factory *Factory, fill func(*MemberBuilder)) *Scope {
	return &Scope{
		factory: factory,
		fillFn:  fill,
		members: make(map[string]Symbol),
	}
}

// SetOwner records the symbol this scope belongs to; called once, right
// after construction, by the owning symbol's constructor.
func (s *Scope) SetOwner(owner Symbol) { s.owner = owner }

// Owner returns the symbol this scope belongs to.
func (s *Scope) Owner() Symbol { return s.owner }

// AsScope satisfies ScopeCapable for types that embed *Scope directly.
func (s *Scope) AsScope() *Scope { return s }

func (s *Scope) ensureInit() {
	if s.state == scopeInitialized {
		return
	}

	if s.state == scopeInitializing {
		// Re-entrant access while still filling: a fill closure that looks
		// itself up (e.g. a generate block referencing its own genvar) sees
		// whatever has been added so far rather than recursing.
		return
	}

	s.state = scopeInitializing

	if s.fillFn != nil {
		s.fillFn(&MemberBuilder{scope: s})
	}

	s.state = scopeInitialized
}

// markDirty discards the filled member table, forcing the next access to
// re-run fillFn. Ordinary scopes never need this; it exists for
// DynamicScopeSymbol's append model, which overrides the rebuild behavior
// itself rather than calling this (see dynamicscope.go).
func (s *Scope) markDirty() {
	s.state = scopeUninitialized
	s.members = make(map[string]Symbol)
	s.order = nil
	s.wildcardImports = nil
}

// Members returns every declared member, in declaration order, filling
// the scope first if needed.
func (s *Scope) Members() []Symbol {
	s.ensureInit()

	out := make([]Symbol, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.members[name])
	}

	return out
}

// Member looks up name directly in this scope's own member map (the
// Direct lookup mode primitive), filling the scope first if needed.
func (s *Scope) Member(name string) (Symbol, bool) {
	s.ensureInit()

	sym, ok := s.members[name]

	return sym, ok
}

// WildcardImports returns the scope's wildcard import declarations,
// filling the scope first if needed.
func (s *Scope) WildcardImports() []*WildcardImportSymbol {
	s.ensureInit()

	return s.wildcardImports
}

func (s *Scope) addMember(sym Symbol, at position.Span) {
	if existing, ok := s.members[sym.Name()]; ok {
		s.factory.Diagnostics().Report(diagnostics.DuplicateDefinition, at, "duplicate definition of '"+sym.Name()+"', previous declaration at "+existing.Location().String())

		return
	}

	s.members[sym.Name()] = sym
	s.order = append(s.order, sym.Name())
}

// EvaluateConstant evaluates expr against this scope via the external
// checker (spec.md §4.3).
func (s *Scope) EvaluateConstant(expr syntax.Expression) values.Value {
	return s.factory.Checker().EvaluateConstant(s, expr)
}

// EvaluateConstantAndConvert evaluates expr and converts the result to
// targetType's representation; a failed conversion yields a bad value
// without raising (spec.md §4.3).
func (s *Scope) EvaluateConstantAndConvert(expr syntax.Expression, targetType Symbol) values.Value {
	v := s.EvaluateConstant(expr)
	if v.IsBad() {
		return v
	}

	return s.factory.Checker().ConvertConstant(s, v, targetType)
}

// cacheImplicitImport installs sym directly into the member map without
// the duplicate-name check addMember performs, since it is only called
// once lookupLocal has already established no member of that name
// exists. Used to give a wildcard-imported name a stable identity after
// its first lookup.
func (s *Scope) cacheImplicitImport(sym Symbol) {
	s.members[sym.Name()] = sym
	s.order = append(s.order, sym.Name())
}

// MemberBuilder is the only way a fillFn closure may populate its scope,
// keeping the mutation surface narrow and the duplicate-name check
// centralized in addMember.
type MemberBuilder struct {
	scope *Scope
}

// Add declares sym as a member, reporting DuplicateDefinition if a member
// of that name already exists.
func (b *MemberBuilder) Add(sym Symbol) {
	b.scope.addMember(sym, sym.Location())
}

// AddWildcardImport records a wildcard import for Local/Scoped lookup
// fallback.
func (b *MemberBuilder) AddWildcardImport(w *WildcardImportSymbol) {
	b.scope.wildcardImports = append(b.scope.wildcardImports, w)
}

// Scope exposes the underlying scope to fillFn closures that need to
// construct child symbols parented to it.
func (b *MemberBuilder) Scope() *Scope { return b.scope }
