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
	"math"
	"unsafe"
)

type params struct {
	ctx *Context
	p   C.Z3_params
}

// newParams builds a single-entry parameter set. The caller closes it once
// the solver or optimizer has consumed it.
func (ctx *Context) newParams(name string, value any) (*params, error) {
	if !ctx.alive() {
		return nil, errNilContext
	}
	p := &params{ctx, C.Z3_mk_params(ctx.c)}
	C.Z3_params_inc_ref(ctx.c, p.p)
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	key := C.Z3_mk_string_symbol(ctx.c, cname)

	switch v := value.(type) {
	case bool:
		C.Z3_params_set_bool(ctx.c, p.p, key, C.bool(v))
	case int, int64, uint32, uint:
		if err := p.setUint(key, v); err != nil {
			p.close()
			return nil, err
		}
	case float64:
		C.Z3_params_set_double(ctx.c, p.p, key, C.double(v))
	case string:
		cval := C.CString(v)
		defer C.free(unsafe.Pointer(cval))
		C.Z3_params_set_symbol(ctx.c, p.p, key, C.Z3_mk_string_symbol(ctx.c, cval))
	default:
		p.close()
		return nil, fmt.Errorf("unsupported option value type %T", v)
	}
	return p, nil
}

func (p *params) setUint(key C.Z3_symbol, value any) error {
	var v uint64
	switch n := value.(type) {
	case int:
		if n < 0 {
			return fmt.Errorf("option value %d out of range", n)
		}
		v = uint64(n)
	case int64:
		if n < 0 {
			return fmt.Errorf("option value %d out of range", n)
		}
		v = uint64(n)
	case uint32:
		v = uint64(n)
	case uint:
		v = uint64(n)
	}
	if v > math.MaxUint32 {
		return fmt.Errorf("option value %d out of range", v)
	}
	C.Z3_params_set_uint(p.ctx.c, p.p, key, C.uint(v))
	return nil
}

func (p *params) close() {
	if p.p != nil && p.ctx.alive() {
		C.Z3_params_dec_ref(p.ctx.c, p.p)
		p.p = nil
	}
}
