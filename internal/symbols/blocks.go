package symbols

import (
	"github.com/orizon-lang/svsema/internal/position"
	"github.com/orizon-lang/svsema/internal/syntax"
)

// SequentialBlockSymbol is a `begin ... end` block: a scope for the
// variables it declares, distinct from the GenerateBlockSymbol a
// generate construct produces, since it does not participate in
// generate-specific elaboration (genvar scoping, iteration labeling).
type SequentialBlockSymbol struct {
	*header
	*Scope

	body []syntax.Statement
}

func newSequentialBlockSymbol(factory *Factory, parent Symbol, name string, at position.Span, body []syntax.Statement) *SequentialBlockSymbol {
	s := &SequentialBlockSymbol{body: body}
	s.header = newHeader(factory, SequentialBlock, name, at, parent)
	// No member declarations live directly in a statement body in this
	// front end's syntax surface; the scope exists so nested lookups
	// (e.g. a for-loop's genvar-like local) still have a parent chain to
	// walk through.
	s.Scope = NewScope(factory, nil)
	s.Scope.SetOwner(s)
	factory.track(s)

	return s
}

// Body binds and returns the block's statements via the external checker.
func (s *SequentialBlockSymbol) Body() BoundStatementList {
	return s.Factory().Checker().BindStatementList(s.Scope, s.body)
}

// ProceduralBlockKind distinguishes the procedural-block constructs that
// own a SequentialBlockSymbol body.
type ProceduralBlockKind int

const (
	ProceduralInitial ProceduralBlockKind = iota
	ProceduralAlways
	ProceduralAlwaysComb
	ProceduralAlwaysFF
	ProceduralAlwaysLatch
	ProceduralFinal
)

func (k ProceduralBlockKind) String() string {
	switch k {
	case ProceduralInitial:
		return "initial"
	case ProceduralAlways:
		return "always"
	case ProceduralAlwaysComb:
		return "always_comb"
	case ProceduralAlwaysFF:
		return "always_ff"
	case ProceduralAlwaysLatch:
		return "always_latch"
	case ProceduralFinal:
		return "final"
	default:
		return "initial"
	}
}

// ProceduralBlockSymbol is a top-level procedural block (initial, always,
// always_comb/ff/latch, final) within an instance. Its body is a single
// implicit SequentialBlockSymbol child, the way a bare statement body
// without an explicit begin/end still gets a scope to bind against.
type ProceduralBlockSymbol struct {
	*header

	BlockKind ProceduralBlockKind
	body      *SequentialBlockSymbol
}

func newProceduralBlockSymbol(factory *Factory, parent Symbol, at position.Span, kind ProceduralBlockKind, body syntax.Statement) *ProceduralBlockSymbol {
	s := &ProceduralBlockSymbol{header: newHeader(factory, ProceduralBlock, kind.String(), at, parent), BlockKind: kind}

	var stmts []syntax.Statement
	if block, ok := body.(*syntax.BlockStatement); ok {
		stmts = block.Statements
	} else if body != nil {
		stmts = []syntax.Statement{body}
	}

	s.body = newSequentialBlockSymbol(factory, s, kind.String(), at, stmts)
	factory.track(s)

	return s
}

// Body returns the block's implicit statement-body scope.
func (s *ProceduralBlockSymbol) Body() *SequentialBlockSymbol { return s.body }
