package z3

import "strconv"

// Symbol names a declared object. It is either an IntSymbol or a
// StringSymbol; no other implementation exists.
type Symbol interface {
	String() string
	isSymbol()
}

// IntSymbol is a symbol identified by a numeric id.
type IntSymbol uint32

// StringSymbol is a symbol identified by its text.
type StringSymbol string

func (IntSymbol) isSymbol()    {}
func (StringSymbol) isSymbol() {}

// String renders the id as "#<n>".
func (s IntSymbol) String() string { return "#" + strconv.FormatUint(uint64(s), 10) }

func (s StringSymbol) String() string { return string(s) }

// SymbolFromUint builds the numeric variant without consulting the engine.
func SymbolFromUint(v uint32) Symbol { return IntSymbol(v) }

// SymbolFromString builds the textual variant without consulting the engine.
func SymbolFromString(s string) Symbol { return StringSymbol(s) }
