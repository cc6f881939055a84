package symbols

import "github.com/orizon-lang/svsema/internal/syntax"

// fillBody elaborates one scope-bearing symbol's declared items into
// members of b's scope. It is shared by every construct with a body of
// declarations: packages, instances, and generate blocks.
func fillBody(factory *Factory, owner Symbol, items []syntax.Item, b *MemberBuilder) {
	ownerScope := b.Scope()

	for _, item := range items {
		switch it := item.(type) {
		case *syntax.ParameterDeclaration:
			for _, dcl := range it.Declarators {
				b.Add(newParameterSymbol(factory, owner, ownerScope, ownerScope, dcl.Span(), dcl.Name, it.TypeSyntax, dcl.Initializer, nil, it.IsLocalParam))
			}

		case *syntax.DataDeclaration:
			for _, dcl := range it.Declarators {
				b.Add(newVariableSymbol(factory, owner, ownerScope, dcl.Span(), dcl.Name, it.TypeSyntax, dcl.Initializer))
			}

		case *syntax.FunctionDeclaration:
			b.Add(newSubroutineSymbol(factory, owner, it))

		case *syntax.TypedefDeclaration:
			typeSyntax := it.TypeSyntax
			b.Add(newTypeAliasSymbol(factory, owner, it.Span(), it.Name, func() Symbol {
				return factory.Checker().BindType(ownerScope, typeSyntax)
			}))

		case *syntax.ProceduralBlockDeclaration:
			b.Add(newProceduralBlockSymbol(factory, owner, it.Span(), parseProceduralBlockKind(it.Kind), it.Body))

		case *syntax.HierarchyInstantiation:
			elaborateHierarchyInstantiation(factory, owner, ownerScope, it, b)

		case *syntax.ExplicitImport:
			b.Add(newExplicitImportSymbol(factory, owner, it.Span(), it.PackageName, it.ImportName))

		case *syntax.WildcardImport:
			b.AddWildcardImport(newWildcardImportSymbol(factory, owner, it.Span(), it.PackageName))

		case *syntax.IfGenerate:
			b.Add(newIfGenerateSymbol(factory, owner, ownerScope, it))

		case *syntax.LoopGenerate:
			b.Add(newLoopGenerateSymbol(factory, owner, ownerScope, it))
		}
	}
}

func parseProceduralBlockKind(s string) ProceduralBlockKind {
	switch s {
	case "always":
		return ProceduralAlways
	case "always_comb":
		return ProceduralAlwaysComb
	case "always_ff":
		return ProceduralAlwaysFF
	case "always_latch":
		return ProceduralAlwaysLatch
	case "final":
		return ProceduralFinal
	default:
		return ProceduralInitial
	}
}
