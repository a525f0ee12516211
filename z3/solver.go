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

// Solver wraps a Z3_solver handle and provides a Go-friendly API for building
// and checking verification problems tied to the owning Context.
type Solver struct {
	ctx *Context
	s   C.Z3_solver
}

// CheckResult captures the outcome of a solver check.
type CheckResult int

const (
	// Unknown indicates the solver could not determine satisfiability.
	Unknown CheckResult = iota
	// Sat indicates the problem is satisfiable.
	Sat
	// Unsat indicates the problem is unsatisfiable.
	Unsat
)

func (r CheckResult) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

func checkResult(r C.Z3_lbool) CheckResult {
	switch r {
	case C.Z3_L_TRUE:
		return Sat
	case C.Z3_L_FALSE:
		return Unsat
	default:
		return Unknown
	}
}

// NewSolver creates a fresh solver attached to the context. The returned
// solver automatically tracks a Go finalizer so leaked solver handles are
// still released when the GC runs.
func (ctx *Context) NewSolver() *Solver {
	s := &Solver{ctx, C.Z3_mk_solver(ctx.c)}
	C.Z3_solver_inc_ref(ctx.c, s.s)
	runtime.SetFinalizer(s, func(x *Solver) { x.Close() })
	return s
}

// Close releases the underlying Z3 solver reference. Repeated calls are safe
// and become no-ops once the solver handle has been cleared.
func (s *Solver) Close() {
	if s != nil && s.s != nil {
		if s.ctx.alive() {
			C.Z3_solver_dec_ref(s.ctx.c, s.s)
		}
		s.s = nil
	}
}

// Assert adds a constraint to the solver without copying it. The expression
// must have been created in the same context as the solver.
func (s *Solver) Assert(e Expr) {
	C.Z3_solver_assert(s.ctx.c, s.s, e.AsAST().a)
}

// SetOption sets a solver parameter such as "timeout" or "smt.mbqi".
// Strings become symbol-valued parameters, integers unsigned ones.
func (s *Solver) SetOption(name string, value any) error {
	if s == nil || s.s == nil {
		return errNilSolver
	}
	p, err := s.ctx.newParams(name, value)
	if err != nil {
		return err
	}
	defer p.close()
	C.Z3_solver_set_params(s.ctx.c, s.s, p.p)
	return s.ctx.lastError()
}

// Push creates a new solver scope, allowing constraints to be added and later
// discarded with a matching Pop.
func (s *Solver) Push() {
	C.Z3_solver_push(s.ctx.c, s.s)
}

// Pop removes the given number of solver scopes.
func (s *Solver) Pop(n uint) {
	C.Z3_solver_pop(s.ctx.c, s.s, C.uint(n))
}

// Check runs the solver with the currently asserted constraints and returns the
// Z3 check result. Unknown results are surfaced with the textual reason from
// Z3 when available.
func (s *Solver) Check() (CheckResult, error) {
	res := checkResult(C.Z3_solver_check(s.ctx.c, s.s))
	if res == Unknown {
		if reason := s.ReasonUnknown(); reason != "" {
			return Unknown, errors.New(reason)
		}
		return Unknown, errors.New("unknown")
	}
	return res, nil
}

// ReasonUnknown returns Z3's explanation for an "unknown" result, or an empty
// string if the solver has not been queried or the last result was decisive.
func (s *Solver) ReasonUnknown() string {
	if s == nil || s.s == nil {
		return ""
	}
	rstr := C.Z3_solver_get_reason_unknown(s.ctx.c, s.s)
	if rstr == nil {
		return ""
	}
	return C.GoString(rstr)
}

// Model retrieves the current model if available, or nil. The returned model
// should be closed by the caller; otherwise its reference is released when
// the GC finalizes it.
func (s *Solver) Model() *Model {
	m, _ := ModelOfSolver(s)
	return m
}

// Assertions returns the constraints currently asserted on the solver.
func (s *Solver) Assertions() []AST {
	if s == nil || s.s == nil {
		return nil
	}
	return s.ctx.vectorASTs(C.Z3_solver_get_assertions(s.ctx.c, s.s))
}

// Consts returns the uninterpreted constants the asserted constraints mention.
// Unlike Model.ConstDecls it includes constants the model leaves unassigned.
func (s *Solver) Consts() []FuncDecl {
	return constDecls(s.Assertions())
}

// AssertSMTLIB2String parses an SMT-LIB2 string and asserts resulting commands
// into the solver.
func (s *Solver) AssertSMTLIB2String(input string) error {
	cstr := C.CString(input)
	defer C.free(unsafe.Pointer(cstr))
	C.Z3_solver_from_string(s.ctx.c, s.s, cstr)
	return s.ctx.lastError()
}

// AssertSMTLIB2File parses an SMT-LIB2 file and asserts resulting commands,
// mirroring AssertSMTLIB2String but sourcing the input from disk.
func (s *Solver) AssertSMTLIB2File(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	C.Z3_solver_from_file(s.ctx.c, s.s, cpath)
	return s.ctx.lastError()
}

// SolveSMTLIB2String asserts SMT-LIB2 commands from a string and immediately
// runs Check, making it convenient for one-off satisfiability queries.
func (s *Solver) SolveSMTLIB2String(input string) (CheckResult, error) {
	if err := s.AssertSMTLIB2String(input); err != nil {
		return Unknown, err
	}
	return s.Check()
}

// SolveSMTLIB2File asserts SMT-LIB2 commands from a file and immediately runs
// Check, mirroring SolveSMTLIB2String for file-based workflows.
func (s *Solver) SolveSMTLIB2File(path string) (CheckResult, error) {
	if err := s.AssertSMTLIB2File(path); err != nil {
		return Unknown, err
	}
	return s.Check()
}
