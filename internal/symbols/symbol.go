package symbols

import (
	"fmt"

	"github.com/orizon-lang/svsema/internal/diagnostics"
	"github.com/orizon-lang/svsema/internal/errors"
	"github.com/orizon-lang/svsema/internal/position"
)

// Symbol is the base capability every symbol kind has (spec.md §4.2):
// its kind, its declared name, its source location, its containing scope,
// and ancestor search. The design root is its own parent; every other
// symbol has a non-nil parent.
type Symbol interface {
	Kind() Kind
	Name() string
	Location() position.Span
	Parent() Symbol
	Root() Symbol
	Factory() *Factory
	FindAncestor(kind Kind) Symbol
}

// header is the common record embedded by every concrete symbol type. It
// implements Symbol; kind-specific types embed *header (directly, or
// transitively through *Scope) and gain Symbol for free via embedding.
type header struct {
	parent   Symbol
	factory  *Factory
	name     string
	location position.Span
	kind     Kind
}

func newHeader(factory *Factory, kind Kind, name string, location position.Span, parent Symbol) *header {
	return &header{
		factory:  factory,
		kind:     kind,
		name:     name,
		location: location,
		parent:   parent,
	}
}

func (h *header) Kind() Kind                 { return h.kind }
func (h *header) Name() string                { return h.name }
func (h *header) Location() position.Span     { return h.location }
func (h *header) Parent() Symbol              { return h.parent }
func (h *header) Factory() *Factory           { return h.factory }

// Root walks parent pointers to the design root, which is its own parent.
func (h *header) Root() Symbol {
	var s Symbol = h
	for {
		p := s.Parent()
		if p == nil || p == s {
			return s
		}

		s = p
	}
}

// FindAncestor walks parent pointers until a symbol of kind is found or
// the root is reached (spec.md §4.2). Passing kind=Root always returns the
// root; otherwise an ancestor that doesn't exist returns nil.
func (h *header) FindAncestor(kind Kind) Symbol {
	if kind == Root {
		return h.Root()
	}

	var s Symbol = h

	for {
		if s.Kind() == kind {
			return s
		}

		p := s.Parent()
		if p == nil || p == s {
			if kind == Root {
				return s
			}

			return nil
		}

		s = p
	}
}

// AddError reports a diagnostic tagged to this symbol's location, the
// spec.md §4.2 `add_error(code, location)` helper. Most call sites use an
// explicit location instead (e.g. a lookup location distinct from the
// symbol's own declaration site); this is the convenience form for
// self-reported errors.
func AddError(sink diagnostics.Sink, sym Symbol, code diagnostics.Code, message string) {
	sink.Report(code, sym.Location(), message)
}

// As performs the spec.md §4.2 checked downcast (`as<Kind>`): a trap, not a
// diagnostic, because it is for call sites that already established the
// symbol's kind and a mismatch indicates a contract violation by the
// caller rather than a user-facing error (spec.md §7).
func As[T Symbol](s Symbol) T {
	t, ok := any(s).(T)
	if !ok {
		var want T

		panic(errors.NewStandardError(
			errors.CategoryValidation,
			"SYMBOL_KIND_MISMATCH",
			fmt.Sprintf("symbol %q is kind %s, cannot downcast to %T", s.Name(), s.Kind(), want),
			map[string]interface{}{"name": s.Name(), "actualKind": s.Kind().String()},
		))
	}

	return t
}

// TryAs is the non-trapping counterpart of As, used where a mismatch is an
// ordinary "not found" outcome rather than a contract violation.
func TryAs[T Symbol](s Symbol) (T, bool) {
	t, ok := any(s).(T)

	return t, ok
}
