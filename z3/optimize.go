//go:build cgo
// +build cgo

package z3

/*
#include <stdlib.h>
#include "z3.h"
*/
import "C"

import (
	"errors"
	"runtime"
	"unsafe"
)

// Optimize wraps a Z3_optimize handle: a solver that also accepts soft
// constraints and objectives. It is reference-counted the same way as Solver.
type Optimize struct {
	ctx *Context
	o   C.Z3_optimize
}

// Objective identifies an objective registered with Maximize or Minimize.
type Objective uint

// NewOptimize creates a fresh optimization context attached to ctx.
func (ctx *Context) NewOptimize() *Optimize {
	o := &Optimize{ctx, C.Z3_mk_optimize(ctx.c)}
	C.Z3_optimize_inc_ref(ctx.c, o.o)
	runtime.SetFinalizer(o, func(x *Optimize) { x.Close() })
	return o
}

// Close releases the optimizer reference. Repeated calls are no-ops.
func (o *Optimize) Close() {
	if o != nil && o.o != nil {
		if o.ctx.alive() {
			C.Z3_optimize_dec_ref(o.ctx.c, o.o)
		}
		o.o = nil
	}
}

// Assert adds a hard constraint.
func (o *Optimize) Assert(e Expr) {
	C.Z3_optimize_assert(o.ctx.c, o.o, e.AsAST().a)
}

// AssertSoft adds a soft constraint with a weight such as "1" or "2.5".
// Constraints sharing a group are summed into one objective; an empty group
// uses the default.
func (o *Optimize) AssertSoft(e Expr, weight, group string) Objective {
	cw := C.CString(weight)
	defer C.free(unsafe.Pointer(cw))
	id := o.ctx.MkSymbol(StringSymbol(group)).s
	return Objective(C.Z3_optimize_assert_soft(o.ctx.c, o.o, e.AsAST().a, cw, id))
}

// Maximize registers e as an objective to maximize.
func (o *Optimize) Maximize(e Expr) Objective {
	return Objective(C.Z3_optimize_maximize(o.ctx.c, o.o, e.AsAST().a))
}

// Minimize registers e as an objective to minimize.
func (o *Optimize) Minimize(e Expr) Objective {
	return Objective(C.Z3_optimize_minimize(o.ctx.c, o.o, e.AsAST().a))
}

// Lower returns the lower bound found for objective idx after a check.
func (o *Optimize) Lower(idx Objective) AST {
	return o.ctx.wrapAST(C.Z3_optimize_get_lower(o.ctx.c, o.o, C.uint(idx)))
}

// Upper returns the upper bound found for objective idx after a check.
func (o *Optimize) Upper(idx Objective) AST {
	return o.ctx.wrapAST(C.Z3_optimize_get_upper(o.ctx.c, o.o, C.uint(idx)))
}

// Push creates a backtracking point.
func (o *Optimize) Push() {
	C.Z3_optimize_push(o.ctx.c, o.o)
}

// Pop backtracks one level.
func (o *Optimize) Pop() {
	C.Z3_optimize_pop(o.ctx.c, o.o)
}

// SetOption sets an optimizer parameter such as "opt.priority".
func (o *Optimize) SetOption(name string, value any) error {
	if o == nil || o.o == nil {
		return errNilSolver
	}
	p, err := o.ctx.newParams(name, value)
	if err != nil {
		return err
	}
	defer p.close()
	C.Z3_optimize_set_params(o.ctx.c, o.o, p.p)
	return o.ctx.lastError()
}

// Check runs the optimizer over hard constraints and objectives.
func (o *Optimize) Check() (CheckResult, error) {
	res := checkResult(C.Z3_optimize_check(o.ctx.c, o.o, 0, nil))
	if res == Unknown {
		if reason := o.ReasonUnknown(); reason != "" {
			return Unknown, errors.New(reason)
		}
		return Unknown, errors.New("unknown")
	}
	return res, nil
}

// ReasonUnknown returns Z3's explanation for an "unknown" result.
func (o *Optimize) ReasonUnknown() string {
	if o == nil || o.o == nil {
		return ""
	}
	rstr := C.Z3_optimize_get_reason_unknown(o.ctx.c, o.o)
	if rstr == nil {
		return ""
	}
	return C.GoString(rstr)
}

// Model retrieves the current model if available, or nil.
func (o *Optimize) Model() *Model {
	m, _ := ModelOfOptimize(o)
	return m
}

// Assertions returns the hard constraints of the optimizer.
func (o *Optimize) Assertions() []AST {
	if o == nil || o.o == nil {
		return nil
	}
	return o.ctx.vectorASTs(C.Z3_optimize_get_assertions(o.ctx.c, o.o))
}

// Consts returns the uninterpreted constants the hard constraints mention.
func (o *Optimize) Consts() []FuncDecl {
	return constDecls(o.Assertions())
}

// FromString loads an SMT-LIB2 script, including minimize/maximize commands.
func (o *Optimize) FromString(input string) error {
	cstr := C.CString(input)
	defer C.free(unsafe.Pointer(cstr))
	C.Z3_optimize_from_string(o.ctx.c, o.o, cstr)
	return o.ctx.lastError()
}

// FromFile is FromString for a script on disk.
func (o *Optimize) FromFile(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	C.Z3_optimize_from_file(o.ctx.c, o.o, cpath)
	return o.ctx.lastError()
}
