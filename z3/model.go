//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
int model_eval_wrap(Z3_context c, Z3_model m, Z3_ast a, int model_completion, Z3_ast* out);
*/
import "C"

import (
	"fmt"
	"runtime"
	"unicode/utf8"
)

// Model wraps a reference-counted Z3_model handle. A Model owns exactly one
// reference, taken when it is created from a Solver, an Optimize, or by
// Translate, and released exactly once by Close or by the GC finalizer.
// Queries never take additional references on the model.
//
// The finalizer runs on its own goroutine while the context may be in use
// elsewhere; callers should Close models explicitly and treat the finalizer
// as a leak backstop only.
type Model struct {
	ctx *Context
	m   C.Z3_model
}

// wrapModel is the only constructor of Model.
func wrapModel(ctx *Context, m C.Z3_model) *Model {
	C.Z3_model_inc_ref(ctx.c, m)
	mod := &Model{ctx, m}
	runtime.SetFinalizer(mod, func(x *Model) { x.Close() })
	return mod
}

// ModelOfSolver returns the solver's current model. It reports false when
// the solver has none, i.e. no check was run or the last check was not
// satisfiable.
func ModelOfSolver(s *Solver) (*Model, bool) {
	if s == nil || s.s == nil || !s.ctx.alive() {
		return nil, false
	}
	m := C.Z3_solver_get_model(s.ctx.c, s.s)
	if m == nil {
		return nil, false
	}
	return wrapModel(s.ctx, m), true
}

// ModelOfOptimize is ModelOfSolver for an optimization context.
func ModelOfOptimize(o *Optimize) (*Model, bool) {
	if o == nil || o.o == nil || !o.ctx.alive() {
		return nil, false
	}
	m := C.Z3_optimize_get_model(o.ctx.c, o.o)
	if m == nil {
		return nil, false
	}
	return wrapModel(o.ctx, m), true
}

// Close decrements the reference count held by the Go wrapper. It is safe to
// call multiple times and becomes a no-op once the handle is cleared. If the
// owning context was closed first, the handle died with it and is not touched.
func (m *Model) Close() {
	if m == nil || m.m == nil {
		return
	}
	if m.ctx.alive() {
		C.Z3_model_dec_ref(m.ctx.c, m.m)
	}
	m.m = nil
	runtime.SetFinalizer(m, nil)
}

// Context returns the context the model is bound to.
func (m *Model) Context() *Context { return m.ctx }

// Translate copies the model into dest. The copy holds its own reference and
// is closed independently; m is left untouched. It returns nil if either
// model or destination is closed or the engine refuses the translation.
func (m *Model) Translate(dest *Context) *Model {
	if m == nil || m.m == nil || !m.ctx.alive() || !dest.alive() {
		return nil
	}
	out := C.Z3_model_translate(m.ctx.c, m.m, dest.c)
	if out == nil {
		return nil
	}
	return wrapModel(dest, out)
}

// Eval evaluates an AST in the model, optionally requesting model completion so
// Z3 synthesizes default values for underspecified symbols. Evaluation failure
// yields an AST with a nil handle; use the generic Eval to get an explicit
// result flag and a typed value.
func (m *Model) Eval(a AST, modelCompletion bool) AST {
	out, _ := m.eval(a, modelCompletion)
	return out
}

func (m *Model) eval(a AST, modelCompletion bool) (AST, bool) {
	if m == nil || m.m == nil || !m.ctx.alive() || a.a == nil {
		return AST{}, false
	}
	var out C.Z3_ast
	mc := C.int(0)
	if modelCompletion {
		mc = C.int(1)
	}
	ok := C.model_eval_wrap(m.ctx.c, m.m, a.a, mc, &out)
	if ok == 0 || out == nil {
		return AST{}, false
	}
	return m.ctx.wrapAST(out), true
}

// Eval evaluates e in m and returns the result as the static type of e.
// Without completion, evaluation fails when the result depends on a constant
// the model leaves unassigned; with completion such constants get a default.
func Eval[T Expr](m *Model, e T, modelCompletion bool) (T, bool) {
	var zero T
	out, ok := m.eval(e.AsAST(), modelCompletion)
	if !ok {
		return zero, false
	}
	return zero.wrap(out).(T), true
}

// NumConsts returns the number of constants the model interprets.
func (m *Model) NumConsts() uint {
	if m == nil || m.m == nil || !m.ctx.alive() {
		return 0
	}
	return uint(C.Z3_model_get_num_consts(m.ctx.c, m.m))
}

// ConstDecl returns the i-th constant declaration. An index past the end
// is not an error; it just reports false.
func (m *Model) ConstDecl(i uint) (FuncDecl, bool) {
	if i >= m.NumConsts() {
		return FuncDecl{}, false
	}
	return FuncDecl{m.ctx, C.Z3_model_get_const_decl(m.ctx.c, m.m, C.uint(i))}, true
}

// ConstDecls returns every constant declaration of the model in index order.
func (m *Model) ConstDecls() []FuncDecl {
	n := m.NumConsts()
	out := make([]FuncDecl, 0, n)
	for i := uint(0); i < n; i++ {
		d, _ := m.ConstDecl(i)
		out = append(out, d)
	}
	return out
}

// NumFuncs returns the number of function interpretations in the model.
func (m *Model) NumFuncs() uint {
	if m == nil || m.m == nil || !m.ctx.alive() {
		return 0
	}
	return uint(C.Z3_model_get_num_funcs(m.ctx.c, m.m))
}

// FuncDecl returns the i-th function declaration, with the same index
// semantics as ConstDecl.
func (m *Model) FuncDecl(i uint) (FuncDecl, bool) {
	if i >= m.NumFuncs() {
		return FuncDecl{}, false
	}
	return FuncDecl{m.ctx, C.Z3_model_get_func_decl(m.ctx.c, m.m, C.uint(i))}, true
}

func (m *Model) constInterp(d FuncDecl) (AST, bool) {
	if m == nil || m.m == nil || !m.ctx.alive() || d.d == nil {
		return AST{}, false
	}
	a := C.Z3_model_get_const_interp(m.ctx.c, m.m, d.d)
	if a == nil {
		return AST{}, false
	}
	return m.ctx.wrapAST(a), true
}

// ConstInterp returns the value the model assigns to the constant d. It
// reports false when the model has no interpretation, meaning the value does
// not matter.
//
// If an interpretation exists and its sort does not fit T, ConstInterp panics
// with a *SortMismatchError. The check runs only after the presence check.
func ConstInterp[T Expr](m *Model, d FuncDecl) (T, bool) {
	var zero T
	a, ok := m.constInterp(d)
	if !ok {
		return zero, false
	}
	if got := a.Sort(); !zero.matchesSort(got) {
		panic(&SortMismatchError{Decl: d.Name(), Want: fmt.Sprintf("%T", zero), Got: got.String()})
	}
	return zero.wrap(a).(T), true
}

// ConstInterpUnchecked is ConstInterp without the sort check. The caller
// guarantees that T fits the interpretation; if it does not, the returned
// value is meaningless and every operation on it is undefined.
func ConstInterpUnchecked[T Expr](m *Model, d FuncDecl) (T, bool) {
	var zero T
	a, ok := m.constInterp(d)
	if !ok {
		return zero, false
	}
	return zero.wrap(a).(T), true
}

// Assignment is one interpreted constant of a model.
type Assignment struct {
	Name  string
	Sort  string
	Value AST
}

// Assignments lists the interpretation of every constant in index order.
// Constants without an interpretation are skipped.
func (m *Model) Assignments() []Assignment {
	decls := m.ConstDecls()
	out := make([]Assignment, 0, len(decls))
	for _, d := range decls {
		v, ok := ConstInterp[AST](m, d)
		if !ok {
			continue
		}
		out = append(out, Assignment{Name: d.Name(), Sort: d.Range().String(), Value: v})
	}
	return out
}

// Text renders the model in Z3's textual format. It returns ErrModelRender
// when the engine produces no text or text that is not valid UTF-8.
func (m *Model) Text() (string, error) {
	if m == nil || m.m == nil || !m.ctx.alive() {
		return "", ErrModelRender
	}
	s := C.Z3_model_to_string(m.ctx.c, m.m)
	if s == nil {
		if err := m.ctx.lastError(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrModelRender, err)
		}
		return "", ErrModelRender
	}
	text := C.GoString(s)
	if !utf8.ValidString(text) {
		return "", ErrModelRender
	}
	return text, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m *Model) MarshalText() ([]byte, error) {
	s, err := m.Text()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// String returns the textual SMT-LIB representation of the model, which is
// useful for debugging or writing golden-model tests.
func (m *Model) String() string {
	if m == nil || m.m == nil {
		return "<nil-model>"
	}
	s, err := m.Text()
	if err != nil {
		return "<invalid-model>"
	}
	return s
}

// Format implements fmt.Formatter. The model text is formatted like a string
// under the given verb and flags, so %q quotes it and %x hex-encodes it.
// Rendering failures are written the way fmt reports a failing Stringer
// instead of as partial text.
func (m *Model) Format(f fmt.State, verb rune) {
	s, err := m.Text()
	if err != nil {
		fmt.Fprintf(f, "%%!%c(%v)", verb, err)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), s)
}
