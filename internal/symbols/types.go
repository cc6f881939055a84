package symbols

import "github.com/orizon-lang/svsema/internal/position"

// IntegralTypeSymbol is a builtin packed integral type, e.g. bit, logic,
// int, shortint, with the bit width and signedness baked in at
// construction.
type IntegralTypeSymbol struct {
	*header

	Width  int
	Signed bool
	FourState bool
}

func newIntegralTypeSymbol(factory *Factory, name string, width int, signed, fourState bool) *IntegralTypeSymbol {
	s := &IntegralTypeSymbol{
		header:    newHeader(factory, IntegralType, name, position.Span{}, factory.Root()),
		Width:     width,
		Signed:    signed,
		FourState: fourState,
	}
	factory.track(s)

	return s
}

// RealTypeSymbol is a builtin real/shortreal type.
type RealTypeSymbol struct{ *header }

func newRealTypeSymbol(factory *Factory, name string) *RealTypeSymbol {
	s := &RealTypeSymbol{header: newHeader(factory, RealType, name, position.Span{}, factory.Root())}
	factory.track(s)

	return s
}

// StringTypeSymbol is the builtin string type.
type StringTypeSymbol struct{ *header }

func newStringTypeSymbol(factory *Factory) *StringTypeSymbol {
	s := &StringTypeSymbol{header: newHeader(factory, StringType, "string", position.Span{}, factory.Root())}
	factory.track(s)

	return s
}

// CHandleTypeSymbol is the builtin chandle type.
type CHandleTypeSymbol struct{ *header }

func newCHandleTypeSymbol(factory *Factory) *CHandleTypeSymbol {
	s := &CHandleTypeSymbol{header: newHeader(factory, CHandleType, "chandle", position.Span{}, factory.Root())}
	factory.track(s)

	return s
}

// VoidTypeSymbol is the builtin void return type used by tasks and
// non-value-returning functions.
type VoidTypeSymbol struct{ *header }

func newVoidTypeSymbol(factory *Factory) *VoidTypeSymbol {
	s := &VoidTypeSymbol{header: newHeader(factory, VoidType, "void", position.Span{}, factory.Root())}
	factory.track(s)

	return s
}

// EventTypeSymbol is the builtin event type.
type EventTypeSymbol struct{ *header }

func newEventTypeSymbol(factory *Factory) *EventTypeSymbol {
	s := &EventTypeSymbol{header: newHeader(factory, EventType, "event", position.Span{}, factory.Root())}
	factory.track(s)

	return s
}

// EnumValueSymbol is one named value of an EnumTypeSymbol.
type EnumValueSymbol struct {
	*header

	value *Lazy[int64]
}

func (s *EnumValueSymbol) Value() int64 { return s.value.Get() }

// EnumTypeSymbol is a user-declared `enum { ... }` type; it is also a
// scope, since its named values are looked up as its own members.
type EnumTypeSymbol struct {
	*header
	*Scope
}

// TypeAliasSymbol is a `typedef` binding a name to another data type.
type TypeAliasSymbol struct {
	*header

	target *Lazy[Symbol]
}

func newTypeAliasSymbol(factory *Factory, parent Symbol, at position.Span, name string, resolve func() Symbol) *TypeAliasSymbol {
	s := &TypeAliasSymbol{header: newHeader(factory, TypeAlias, name, at, parent)}
	s.target = NewLazy(resolve, func() Symbol { return nil })
	factory.track(s)

	return s
}

// Target returns the aliased type, resolving on first access.
func (s *TypeAliasSymbol) Target() Symbol { return s.target.Get() }

// builtinTypes is the fixed set of builtin type symbols every Factory
// exposes, parented directly to the design root so they outlive any one
// compilation unit.
type builtinTypes struct {
	Bit      *IntegralTypeSymbol
	Logic    *IntegralTypeSymbol
	Int      *IntegralTypeSymbol
	Integer  *IntegralTypeSymbol
	ShortInt *IntegralTypeSymbol
	LongInt  *IntegralTypeSymbol
	Byte     *IntegralTypeSymbol
	Real     *RealTypeSymbol
	ShortReal *RealTypeSymbol
	String   *StringTypeSymbol
	CHandle  *CHandleTypeSymbol
	Void     *VoidTypeSymbol
	Event    *EventTypeSymbol
}

func newBuiltinTypes(factory *Factory) *builtinTypes {
	return &builtinTypes{
		Bit:       newIntegralTypeSymbol(factory, "bit", 1, false, false),
		Logic:     newIntegralTypeSymbol(factory, "logic", 1, false, true),
		Int:       newIntegralTypeSymbol(factory, "int", 32, true, false),
		Integer:   newIntegralTypeSymbol(factory, "integer", 32, true, true),
		ShortInt:  newIntegralTypeSymbol(factory, "shortint", 16, true, false),
		LongInt:   newIntegralTypeSymbol(factory, "longint", 64, true, false),
		Byte:      newIntegralTypeSymbol(factory, "byte", 8, true, false),
		Real:      newRealTypeSymbol(factory, "real"),
		ShortReal: newRealTypeSymbol(factory, "shortreal"),
		String:    newStringTypeSymbol(factory),
		CHandle:   newCHandleTypeSymbol(factory),
		Void:      newVoidTypeSymbol(factory),
		Event:     newEventTypeSymbol(factory),
	}
}

// Lookup returns the builtin type symbol named by a NamedType identifier,
// or nil if name does not name a builtin.
func (b *builtinTypes) Lookup(name string) Symbol {
	switch name {
	case "bit":
		return b.Bit
	case "logic":
		return b.Logic
	case "int":
		return b.Int
	case "integer":
		return b.Integer
	case "shortint":
		return b.ShortInt
	case "longint":
		return b.LongInt
	case "byte":
		return b.Byte
	case "real":
		return b.Real
	case "shortreal":
		return b.ShortReal
	case "string":
		return b.String
	case "chandle":
		return b.CHandle
	case "void":
		return b.Void
	case "event":
		return b.Event
	default:
		return nil
	}
}
