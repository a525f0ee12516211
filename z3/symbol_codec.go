//go:build cgo
// +build cgo

package z3

/*
#include <stdlib.h>
#include "z3.h"
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// RawSymbol is an engine symbol handle bound to the context that created it.
// Symbols are interned by the context and need no reference counting.
type RawSymbol struct {
	ctx *Context
	s   C.Z3_symbol
}

// MkSymbol converts sym into a fresh engine handle. Nothing is cached; every
// call goes to the engine.
func (ctx *Context) MkSymbol(sym Symbol) RawSymbol {
	switch v := sym.(type) {
	case IntSymbol:
		// The engine takes a C int and rejects negative ids, so ids above
		// MaxInt32 yield the null handle, which decodes as StringSymbol("").
		return RawSymbol{ctx, C.Z3_mk_int_symbol(ctx.c, C.int(int32(v)))}
	case StringSymbol:
		cstr := C.CString(string(v))
		defer C.free(unsafe.Pointer(cstr))
		return RawSymbol{ctx, C.Z3_mk_string_symbol(ctx.c, cstr)}
	default:
		panic(fmt.Sprintf("z3: unknown symbol variant %T", sym))
	}
}

// Symbol decodes the handle back into its Go variant. Text that is not valid
// UTF-8 is decoded lossily with U+FFFD replacements. A RawSymbol without a
// context decodes to nil. The engine represents the empty string symbol as a
// null handle, so such handles are still decoded by the engine.
func (r RawSymbol) Symbol() Symbol {
	if !r.ctx.alive() {
		return nil
	}
	switch C.Z3_get_symbol_kind(r.ctx.c, r.s) {
	case C.Z3_INT_SYMBOL:
		return IntSymbol(uint32(int32(C.Z3_get_symbol_int(r.ctx.c, r.s))))
	default:
		text := C.GoString(C.Z3_get_symbol_string(r.ctx.c, r.s))
		return StringSymbol(strings.ToValidUTF8(text, "\uFFFD"))
	}
}

// String renders the decoded symbol.
func (r RawSymbol) String() string {
	if sym := r.Symbol(); sym != nil {
		return sym.String()
	}
	return ""
}
