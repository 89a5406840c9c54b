package dlfcn

import (
	"strconv"
)

// Symbol names an export either by name or by ordinal.
type Symbol struct {
	name      string
	ordinal   uint16
	byOrdinal bool
}

// ByName create a Symbol looked up by its literal name, even if the name is numeric.
func ByName(name string) Symbol {
	return Symbol{name: name}
}

// ByOrdinal create a Symbol looked up by export ordinal.
func ByOrdinal(n uint16) Symbol {
	return Symbol{name: strconv.Itoa(int(n)), ordinal: n, byOrdinal: true}
}

// ParseSymbol classify text as an ordinal reference when ParseOrdinal accepts it, otherwise as a name.
func ParseSymbol(text string) Symbol {
	if n, ok := ParseOrdinal(text); ok {
		return Symbol{name: text, ordinal: n, byOrdinal: true}
	}
	return ByName(text)
}

func (s Symbol) IsOrdinal() bool { return s.byOrdinal }
func (s Symbol) Ordinal() uint16 { return s.ordinal }

// Name is the text the Symbol was made from.
func (s Symbol) Name() string { return s.name }

func (s Symbol) String() string {
	if s.byOrdinal {
		return "#" + strconv.Itoa(int(s.ordinal))
	}
	return s.name
}

// ParseOrdinal reports whether text is a plain base 10 number in [0, 65535].
// Signs, spaces, any other character and overflow are rejected.
func ParseOrdinal(text string) (uint16, bool) {
	v, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
