package symbols

// LookupMode selects one of the five name-resolution algorithms of
// spec.md §4.4.
type LookupMode int

const (
	// Direct consults only the scope's own member map; no parent
	// traversal, no import consideration. The lookup location is used
	// only for error reporting.
	Direct LookupMode = iota

	// Local starts at the given scope, falls back to wildcard imports,
	// then walks up the parent chain. Visibility-checked against the
	// lookup location.
	Local

	// Scoped performs Local first; on failure, resolves name as a
	// package name from the compilation root's package table.
	Scoped

	// Callable is Local with admission restricted to subroutine-like
	// symbols.
	Callable

	// Definition is Callable-like but restricted to Module/Interface/
	// Program symbols, and always starts its search at the compilation
	// root rather than at the given scope.
	Definition
)

// String renders the mode for diagnostics and test failure messages.
func (m LookupMode) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Local:
		return "Local"
	case Scoped:
		return "Scoped"
	case Callable:
		return "Callable"
	case Definition:
		return "Definition"
	default:
		return "Unknown"
	}
}
