package symbols

import (
	"fmt"

	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// InstanceSymbol is one elaborated instantiation of a DefinitionSymbol.
// Its Kind is ModuleInstance, InterfaceInstance, or the generic Instance
// kind for a program instantiation; all three share this one
// representation, tagged rather than split into three structs, the way
// GenerateBlockSymbol serves both if-generate and loop-generate bodies.
type InstanceSymbol struct {
	*header
	*Scope

	Definition *DefinitionSymbol
}

func instanceKindFor(def *DefinitionSymbol) Kind {
	switch def.Kind() {
	case Interface:
		return InterfaceInstance
	case Program:
		return Instance
	default:
		return ModuleInstance
	}
}

// newInstanceSymbol builds one instance of def named name, parented to
// parent. outerScope is the scope the instantiation statement itself
// lives in (where override expressions and the definition name are
// resolved); the instance's own scope is used to bind parameter defaults
// and the rest of the definition's body.
func newInstanceSymbol(factory *Factory, parent Symbol, outerScope *Scope, def *DefinitionSymbol, name string, at position.Span, overrides map[string]syntax.Expression) *InstanceSymbol {
	def.validateOverrides(factory, at, overrides)

	s := &InstanceSymbol{Definition: def}
	s.header = newHeader(factory, instanceKindFor(def), name, at, parent)
	s.Scope = NewScope(factory, func(b *MemberBuilder) { s.fill(factory, outerScope, overrides, b) })
	s.Scope.SetOwner(s)
	factory.track(s)

	return s
}

func (s *InstanceSymbol) fill(factory *Factory, outerScope *Scope, overrides map[string]syntax.Expression, b *MemberBuilder) {
	for _, p := range s.Definition.Parameters {
		override := overrides[p.Name]
		if p.IsLocalParam {
			// Already reported by validateOverrides; a rejected override
			// falls back to the declared default rather than taking effect.
			override = nil
		}

		ps := newParameterSymbol(factory, s, s.Scope, outerScope, p.Location, p.Name, p.TypeSyntax, p.DefaultExpr, override, p.IsLocalParam)
		b.Add(ps)
	}

	fillBody(factory, s, s.Definition.body, b)
}

// Instantiate builds one top-level instance of def, named name, with
// overrides bound against the compilation root's own scope. This is the
// entry point a driver uses to elaborate a design once every definition
// and package has been registered, the way a real compilation elaborates
// its configured top-level module.
func (f *Factory) Instantiate(def *DefinitionSymbol, name string, overrides map[string]syntax.Expression) *InstanceSymbol {
	return newInstanceSymbol(f, f.Root(), f.Root().Scope, def, name, def.Location(), overrides)
}

// elaborateHierarchyInstantiation builds one InstanceSymbol per entry in
// hi.Instances (expanding any array ranges), adding each to b. scope is
// both the instantiating scope (for definition-name and override-value
// resolution) and owner's own scope (so Direct/Local lookups inside the
// enclosing body see the new instances as ordinary members).
func elaborateHierarchyInstantiation(factory *Factory, owner Symbol, scope *Scope, hi *syntax.HierarchyInstantiation, b *MemberBuilder) {
	defSym := Lookup(scope, hi.DefinitionName, Definition, hi.Span())
	if defSym == nil {
		factory.Diagnostics().Report(diagnostics.UndeclaredIdentifier, hi.Span(),
			"unknown definition '"+hi.DefinitionName+"'")

		return
	}

	def, ok := TryAs[*DefinitionSymbol](defSym)
	if !ok {
		return
	}

	overrides := make(map[string]syntax.Expression, len(hi.Parameters))
	for _, pa := range hi.Parameters {
		overrides[pa.Name] = pa.Expr
	}

	for _, inst := range hi.Instances {
		if inst.Array == nil {
			b.Add(newInstanceSymbol(factory, owner, scope, def, inst.Name, inst.Span(), overrides))

			continue
		}

		for i := 0; i < inst.Array.Count(); i++ {
			idx := inst.Array.IndexAt(i)
			name := fmt.Sprintf("%s[%d]", inst.Name, idx)
			b.Add(newInstanceSymbol(factory, owner, scope, def, name, inst.Span(), overrides))
		}
	}
}
