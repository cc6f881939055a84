package symbols

import (
	"fmt"

	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
	"github.com/orizon-lang/svsema/internal/values"
)

// GenvarSymbol is a generate-loop induction variable, bound to a fixed
// constant value for the lifetime of one GenerateBlockSymbol iteration.
type GenvarSymbol struct {
	*header

	value values.Value
}

func newGenvarSymbol(factory *Factory, parent Symbol, name string, at position.Span, value values.Value) *GenvarSymbol {
	s := &GenvarSymbol{header: newHeader(factory, Genvar, name, at, parent), value: value}
	factory.track(s)

	return s
}

// Value returns the genvar's constant value for this iteration.
func (s *GenvarSymbol) Value() values.Value { return s.value }

// GenerateBlockSymbol is one elaborated generate-construct body: either
// the taken branch of an IfGenerateSymbol, or one iteration of a
// LoopGenerateSymbol.
type GenerateBlockSymbol struct {
	*header
	*Scope
}

func newGenerateBlockSymbol(factory *Factory, parent Symbol, name string, at position.Span, body []syntax.Item, genvar *GenvarSymbol) *GenerateBlockSymbol {
	s := &GenerateBlockSymbol{}
	s.header = newHeader(factory, GenerateBlock, name, at, parent)
	s.Scope = NewScope(factory, func(b *MemberBuilder) {
		if genvar != nil {
			b.Add(genvar)
		}

		fillBody(factory, s, body, b)
	})
	s.Scope.SetOwner(s)
	factory.track(s)

	return s
}

// IfGenerateSymbol is a conditional generate construct. Its condition is
// evaluated against the enclosing scope the first time its members are
// accessed; the losing branch (or nothing, if the condition is false and
// there is no else) produces no GenerateBlockSymbol at all, so it is
// simply absent from lookup rather than present-but-empty.
type IfGenerateSymbol struct {
	*header
	*Scope

	node      *syntax.IfGenerate
	evalScope *Scope
}

func newIfGenerateSymbol(factory *Factory, parent Symbol, evalScope *Scope, node *syntax.IfGenerate) *IfGenerateSymbol {
	name := node.Label
	if name == "" {
		name = "genblk"
	}

	s := &IfGenerateSymbol{node: node, evalScope: evalScope}
	s.header = newHeader(factory, IfGenerate, name, node.Span(), parent)
	s.Scope = NewScope(factory, func(b *MemberBuilder) { s.fill(factory, b) })
	s.Scope.SetOwner(s)
	factory.track(s)

	return s
}

func (s *IfGenerateSymbol) fill(factory *Factory, b *MemberBuilder) {
	cond := s.evalScope.EvaluateConstant(s.node.Condition)

	var items []syntax.Item

	switch {
	case !cond.IsBad() && cond.Truthy():
		items = s.node.Then
	case s.node.HasElse:
		items = s.node.Else
	default:
		return
	}

	b.Add(newGenerateBlockSymbol(factory, s, s.Name(), s.node.Span(), items, nil))
}

// LoopGenerateSymbol is a `for` generate construct, unrolled eagerly into
// one GenerateBlockSymbol per iteration the first time its members are
// accessed. Unrolling is capped at Factory.Config().MaxGenerateIterations
// to turn a non-terminating genvar loop into a diagnostic instead of a
// hang (spec.md §9).
type LoopGenerateSymbol struct {
	*header
	*Scope

	node      *syntax.LoopGenerate
	evalScope *Scope
}

func newLoopGenerateSymbol(factory *Factory, parent Symbol, evalScope *Scope, node *syntax.LoopGenerate) *LoopGenerateSymbol {
	name := node.Label
	if name == "" {
		name = "genblk"
	}

	s := &LoopGenerateSymbol{node: node, evalScope: evalScope}
	s.header = newHeader(factory, LoopGenerate, name, node.Span(), parent)
	s.Scope = NewScope(factory, func(b *MemberBuilder) { s.fill(factory, b) })
	s.Scope.SetOwner(s)
	factory.track(s)

	return s
}

// iterationScope wraps a single genvar as the sole member of a throwaway
// scope parented to owner, used to evaluate the loop condition and step
// expressions with the genvar's current value in view.
func (s *LoopGenerateSymbol) iterationScope(factory *Factory, value values.Value) *Scope {
	gv := newGenvarSymbol(factory, s, s.node.GenvarName, s.node.Span(), value)
	sc := NewScope(factory, func(b *MemberBuilder) { b.Add(gv) })
	sc.SetOwner(s)

	return sc
}

func (s *LoopGenerateSymbol) fill(factory *Factory, b *MemberBuilder) {
	node := s.node
	limit := factory.Config().MaxGenerateIterations

	current := s.evalScope.EvaluateConstant(node.Init)
	if current.IsBad() {
		return
	}

	for i := 0; ; i++ {
		iterScope := s.iterationScope(factory, current)

		condVal := iterScope.EvaluateConstant(node.Cond)
		if condVal.IsBad() || !condVal.Truthy() {
			return
		}

		if i >= limit {
			factory.Diagnostics().Report(diagnostics.GenerateLoopTooManyIterations, node.Span(),
				fmt.Sprintf("loop generate '%s' exceeded the maximum of %d iterations", s.Name(), limit))

			return
		}

		blockName := fmt.Sprintf("%s[%d]", s.Name(), i)
		genvarForBlock := newGenvarSymbol(factory, s, node.GenvarName, node.Span(), current)
		b.Add(newGenerateBlockSymbol(factory, s, blockName, node.Span(), node.Body, genvarForBlock))

		next := iterScope.EvaluateConstant(node.Step)
		if next.IsBad() {
			factory.Diagnostics().Report(diagnostics.GenerateLoopNonTerminating, node.Span(),
				fmt.Sprintf("loop generate '%s' step expression did not evaluate to a constant", s.Name()))

			return
		}

		current = next
	}
}
