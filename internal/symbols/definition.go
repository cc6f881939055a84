package symbols

import (
	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// ParameterInfo is one declared parameter of a DefinitionSymbol's port
// parameter list, not yet bound to any instance. A definition's own body
// keeps its syntax unelaborated until instantiated; parameters are the
// exception, listed up front so instantiation can validate overrides
// against them without re-scanning the body. A duplicate declarator name
// is diagnosed once, against its first occurrence, and dropped rather
// than appended (spec.md §4.7) — this runs whether or not the
// definition is ever instantiated.
type ParameterInfo struct {
	Name         string
	TypeSyntax   syntax.DataType
	DefaultExpr  syntax.Expression
	Location     position.Span
	IsLocalParam bool
}

// DefinitionSymbol is a module, interface, or program declaration: a
// template for instantiation, not itself a scope. Its members only come
// into existence once instantiated (spec.md §4.6), since a parameterized
// definition's member types and values can differ per instantiation.
type DefinitionSymbol struct {
	*header

	ElementKind syntax.DesignElementKind
	Parameters  []ParameterInfo
	body        []syntax.Item
}

func definitionKind(ek syntax.DesignElementKind) Kind {
	switch ek {
	case syntax.ElementInterface:
		return Interface
	case syntax.ElementProgram:
		return Program
	default:
		return Module
	}
}

func newDefinitionSymbol(factory *Factory, parent Symbol, decl *syntax.ModuleDeclaration) *DefinitionSymbol {
	s := &DefinitionSymbol{
		ElementKind: decl.ElementKind,
		body:        decl.Body,
	}
	s.header = newHeader(factory, definitionKind(decl.ElementKind), decl.Name, decl.Span(), parent)

	seen := make(map[string]position.Span)

	for _, pd := range decl.PortParams {
		for _, dcl := range pd.Declarators {
			if prev, ok := seen[dcl.Name]; ok {
				factory.Diagnostics().Report(diagnostics.DuplicateDefinition, dcl.Span(),
					"duplicate definition of '"+dcl.Name+"', previous declaration at "+prev.String())

				continue
			}

			seen[dcl.Name] = dcl.Span()
			s.Parameters = append(s.Parameters, ParameterInfo{
				Name:         dcl.Name,
				TypeSyntax:   pd.TypeSyntax,
				DefaultExpr:  dcl.Initializer,
				Location:     dcl.Span(),
				IsLocalParam: pd.IsLocalParam,
			})
		}
	}

	factory.track(s)

	return s
}

// validateOverrides reports ParamOverrideOfLocal for any name in
// overrides that names a localparam rather than an overridable
// parameter, and reports UndeclaredIdentifier for any override name this
// definition declares no parameter for at all.
func (s *DefinitionSymbol) validateOverrides(factory *Factory, at position.Span, overrides map[string]syntax.Expression) {
	for name := range overrides {
		found := false

		for _, p := range s.Parameters {
			if p.Name != name {
				continue
			}

			found = true

			if p.IsLocalParam {
				factory.Diagnostics().Report(diagnostics.ParamOverrideOfLocal, at,
					"cannot override localparam '"+name+"' of '"+s.Name()+"'")
			}

			break
		}

		if !found {
			factory.Diagnostics().Report(diagnostics.UndeclaredIdentifier, at,
				"'"+s.Name()+"' has no parameter '"+name+"' to override")
		}
	}
}
