package symbols

import "github.com/orizon-lang/svsema/internal/diagnostics"

// Config tunes elaboration behavior that has no single correct default
// (spec.md §9's open questions).
type Config struct {
	// MaxGenerateIterations bounds a single LoopGenerateSymbol's
	// iteration count; exceeding it reports
	// GenerateLoopTooManyIterations and stops expansion instead of
	// hanging (spec.md §9, resolved: default 1<<20, overridable per
	// compilation rather than hardcoded).
	MaxGenerateIterations int
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{MaxGenerateIterations: 1 << 20}
}

// Factory is the arena that owns every symbol created during one
// compilation, plus the collaborators symbols need during elaboration: a
// diagnostic sink and the external semantic checker (spec.md §2). There
// is exactly one Factory per compilation; nothing in this package is safe
// to share across concurrent compilations (spec.md §5, Non-goals exclude
// multi-threaded elaboration).
type Factory struct {
	diagnostics diagnostics.Sink
	checker     Checker
	config      Config
	all         []Symbol
	root        *RootSymbol
	builtins    *builtinTypes
}

// NewFactory constructs a Factory reporting to sink and consulting
// checker for type/constant binding.
func NewFactory(sink diagnostics.Sink, checker Checker, config Config) *Factory {
	f := &Factory{diagnostics: sink, checker: checker, config: config}
	f.root = newRootSymbol(f)
	f.builtins = newBuiltinTypes(f)

	return f
}

// Builtins returns the fixed set of builtin type symbols (int, logic,
// string, and so on) every compilation shares.
func (f *Factory) Builtins() *builtinTypes { return f.builtins }

// Diagnostics returns the sink every symbol in this arena reports to.
func (f *Factory) Diagnostics() diagnostics.Sink { return f.diagnostics }

// Checker returns the external semantic checker this arena consults.
func (f *Factory) Checker() Checker { return f.checker }

// Config returns this arena's elaboration configuration.
func (f *Factory) Config() Config { return f.config }

// Root returns the design root symbol, the ultimate ancestor of every
// other symbol in this arena.
func (f *Factory) Root() *RootSymbol { return f.root }

// track registers sym in the arena's allocation record; every
// constructor in this package calls it exactly once per symbol created.
func (f *Factory) track(sym Symbol) {
	f.all = append(f.all, sym)
}

// All returns every symbol this Factory has allocated so far, in
// allocation order. Intended for tests and debugging dumps, not for
// elaboration itself.
func (f *Factory) All() []Symbol {
	out := make([]Symbol, len(f.all))
	copy(out, f.all)

	return out
}
