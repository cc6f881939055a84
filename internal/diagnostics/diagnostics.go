// Package diagnostics provides the diagnostic sink consumed by the
// semantic-analysis core: a leveled, coded report of a problem tied to a
// source span, with optional related-information chains for pointing back
// at a prior declaration.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/orizon-lang/svsema/internal/position"
)

// Level represents the severity of a diagnostic.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelNote
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	default:
		return "unknown"
	}
}

// Code identifies the kind of diagnostic raised by the core. Exact
// identifiers are allocated here rather than by a downstream collaborator,
// since this package is the diagnostics sink for this repository.
type Code int

const (
	UndeclaredIdentifier Code = iota
	DuplicateDefinition
	MissingPackage
	MissingImportedMember
	CyclicDependency
	ParamOverrideOfLocal
	MissingRequiredParameter
	GenerateLoopNonTerminating
	GenerateLoopTooManyIterations
	KindMismatch
)

// String returns the stable diagnostic code string, e.g. for machine consumption.
func (c Code) String() string {
	switch c {
	case UndeclaredIdentifier:
		return "UndeclaredIdentifier"
	case DuplicateDefinition:
		return "DuplicateDefinition"
	case MissingPackage:
		return "MissingPackage"
	case MissingImportedMember:
		return "MissingImportedMember"
	case CyclicDependency:
		return "CyclicDependency"
	case ParamOverrideOfLocal:
		return "ParamOverrideOfLocal"
	case MissingRequiredParameter:
		return "MissingRequiredParameter"
	case GenerateLoopNonTerminating:
		return "GenerateLoopNonTerminating"
	case GenerateLoopTooManyIterations:
		return "GenerateLoopTooManyIterations"
	case KindMismatch:
		return "KindMismatch"
	default:
		return "Unknown"
	}
}

// Level returns the default severity for a code. Every code here is an
// error by default; nothing in this core currently downgrades to warning.
func (c Code) Level() Level {
	return LevelError
}

// Related points a diagnostic back at another location, e.g. a previous
// declaration in a duplicate-symbol report.
type Related struct {
	Message string
	Span    position.Span
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Message string
	Related []Related
	Span    position.Span
	Code    Code
	Level   Level
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s[%s]: %s", d.Span, d.Level, d.Code, d.Message)

	for _, r := range d.Related {
		fmt.Fprintf(&b, "\n  %s: note: %s", r.Span, r.Message)
	}

	return b.String()
}

// Sink is the interface the semantic core reports diagnostics through.
// It matches spec.md §6's `report(code, location, args…)` contract, with
// args formatted into the message at the call site.
type Sink interface {
	Report(code Code, span position.Span, message string, related ...Related)
}

// Bag is the default in-memory Sink: it simply accumulates diagnostics for
// later inspection, sorting, and formatting. This is the concrete sink
// used by tests and by a driving compilation.
type Bag struct {
	diagnostics []Diagnostic
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Report implements Sink.
func (b *Bag) Report(code Code, span position.Span, message string, related ...Related) {
	b.diagnostics = append(b.diagnostics, Diagnostic{
		Code:    code,
		Level:   code.Level(),
		Span:    span,
		Message: message,
		Related: related,
	})
}

// Reportf is a convenience wrapper that formats the message.
func (b *Bag) Reportf(code Code, span position.Span, format string, args ...interface{}) {
	b.Report(code, span, fmt.Sprintf(format, args...))
}

// All returns every diagnostic reported so far, in report order.
func (b *Bag) All() []Diagnostic {
	return b.diagnostics
}

// Count returns how many diagnostics of the given code have been reported.
// Used by callers (and tests) that need "exactly once" assertions per
// spec.md §8's boundary behaviours.
func (b *Bag) Count(code Code) int {
	n := 0

	for _, d := range b.diagnostics {
		if d.Code == code {
			n++
		}
	}

	return n
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diagnostics {
		if d.Level == LevelError {
			return true
		}
	}

	return false
}

// Sort orders diagnostics by source position, then by code, for stable
// and deterministic output across runs.
func (b *Bag) Sort() {
	sort.Slice(b.diagnostics, func(i, j int) bool {
		a, c := b.diagnostics[i], b.diagnostics[j]

		if a.Span.Start.Filename != c.Span.Start.Filename {
			return a.Span.Start.Filename < c.Span.Start.Filename
		}

		if a.Span.Start.Offset != c.Span.Start.Offset {
			return a.Span.Start.Offset < c.Span.Start.Offset
		}

		return a.Code < c.Code
	})
}

// Clear removes all recorded diagnostics.
func (b *Bag) Clear() {
	b.diagnostics = b.diagnostics[:0]
}
