//go:build cgo
// +build cgo

// Package z3 provides a Go binding to Z3's C API focused on safe access to
// solver models: reference-counted model handles, typed evaluation and
// interpretation lookup, cross-context translation, and symbol decoding.
package z3

/*
// cgo headers (linker flags are provided via separate build-tagged files).
#include <stdlib.h>
#include "z3.h"

int model_eval_wrap(Z3_context c, Z3_model m, Z3_ast a, int model_completion, Z3_ast* out) {
	return Z3_model_eval(c, m, a, model_completion, out);
}

// Install a no-op error handler so Z3 doesn't abort on errors; we'll query errors from Go.
void go_z3_error_handler(Z3_context c, Z3_error_code e) {
	// no-op
}
static void z3_set_noop_error_handler(Z3_context c) {
	Z3_set_error_handler(c, go_z3_error_handler);
}
*/
import "C"
import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"unsafe"
)

// Context wraps Z3_context. Every handle derived from a context (sorts, ASTs,
// declarations, solvers, models) is only valid against that context; moving a
// model elsewhere requires Model.Translate.
//
// A Context is not safe for concurrent use. Callers serialize access or use one
// context per goroutine.
type Context struct {
	c C.Z3_context
}

// Config wraps Z3_config.
type Config struct{ cfg C.Z3_config }

// NewConfig creates a default config and enables model construction so that
// solver models can be queried without additional configuration. Callers can
// mutate the returned Config via SetParam before NewContext consumes it.
func NewConfig() *Config {
	cfg := &Config{cfg: C.Z3_mk_config()}
	cfg.SetParam("model", "true")
	cfg.SetParam("auto_config", "true")
	return cfg
}

// SetParam sets a configuration parameter before creating a context. Z3 only
// consults these parameters at context creation time, so mutating the config
// after NewContext has been called has no effect on existing contexts.
func (cfg *Config) SetParam(key, value string) {
	if cfg == nil || cfg.cfg == nil {
		return
	}
	k := C.CString(key)
	v := C.CString(value)
	C.Z3_set_param_value(cfg.cfg, k, v)
	C.free(unsafe.Pointer(k))
	C.free(unsafe.Pointer(v))
}

// Close frees the config. It is safe to call multiple times or on a nil
// receiver.
func (cfg *Config) Close() {
	if cfg != nil && cfg.cfg != nil {
		C.Z3_del_config(cfg.cfg)
		cfg.cfg = nil
	}
}

// NewContext creates a new Z3 context with the given config (optional). When no
// config is provided a temporary config is created under the hood. Contexts
// install a no-op error handler so Z3 surfaces errors through Go return values
// instead of aborting the process.
func NewContext(cfg *Config) *Context {
	var c C.Z3_context
	if cfg != nil && cfg.cfg != nil {
		c = C.Z3_mk_context(cfg.cfg)
	} else {
		tmp := NewConfig()
		c = C.Z3_mk_context(tmp.cfg)
		tmp.Close()
	}
	C.z3_set_noop_error_handler(c)
	ctx := &Context{c: c}
	runtime.SetFinalizer(ctx, func(x *Context) { x.Close() })
	return ctx
}

// Close deletes the context. Models still bound to the context become inert:
// their Close no longer touches the engine.
func (ctx *Context) Close() {
	if ctx != nil && ctx.c != nil {
		C.Z3_del_context(ctx.c)
		ctx.c = nil
	}
}

func (ctx *Context) alive() bool { return ctx != nil && ctx.c != nil }

// lastError returns the pending engine error for the context, if any.
func (ctx *Context) lastError() error {
	if !ctx.alive() {
		return errNilContext
	}
	code := C.Z3_get_error_code(ctx.c)
	if code == C.Z3_OK {
		return nil
	}
	if msg := C.Z3_get_error_msg(ctx.c, code); msg != nil {
		return errors.New(C.GoString(msg))
	}
	return fmt.Errorf("z3 error code %d", int(code))
}

// Sort wraps Z3_sort.
type Sort struct {
	ctx *Context
	s   C.Z3_sort
}

// AST wraps Z3_ast. It is the dynamically sorted expression kind; see Bool,
// Int, Real and String for the statically sorted ones.
type AST struct {
	ctx *Context
	a   C.Z3_ast
}

// FuncDecl wraps Z3_func_decl. Declarations handed out by a Model are
// re-wrapped on every access and do not keep the model alive.
type FuncDecl struct {
	ctx *Context
	d   C.Z3_func_decl
}

// SortKind mirrors Z3_sort_kind.
type SortKind int

const (
	SortKindUninterpreted SortKind = SortKind(C.Z3_UNINTERPRETED_SORT)
	SortKindBool          SortKind = SortKind(C.Z3_BOOL_SORT)
	SortKindInt           SortKind = SortKind(C.Z3_INT_SORT)
	SortKindReal          SortKind = SortKind(C.Z3_REAL_SORT)
	SortKindBV            SortKind = SortKind(C.Z3_BV_SORT)
	SortKindArray         SortKind = SortKind(C.Z3_ARRAY_SORT)
	SortKindDatatype      SortKind = SortKind(C.Z3_DATATYPE_SORT)
	SortKindSeq           SortKind = SortKind(C.Z3_SEQ_SORT)
	SortKindUnknown       SortKind = SortKind(C.Z3_UNKNOWN_SORT)
)

var sortKindNames = map[SortKind]string{
	SortKindUninterpreted: "uninterpreted",
	SortKindBool:          "bool",
	SortKindInt:           "int",
	SortKindReal:          "real",
	SortKindBV:            "bv",
	SortKindArray:         "array",
	SortKindDatatype:      "datatype",
	SortKindSeq:           "seq",
	SortKindUnknown:       "unknown",
}

func (k SortKind) String() string {
	if s, ok := sortKindNames[k]; ok {
		return s
	}
	return "SortKind(" + strconv.Itoa(int(k)) + ")"
}

// BoolSort returns the boolean sort.
func (ctx *Context) BoolSort() Sort {
	return Sort{ctx, C.Z3_mk_bool_sort(ctx.c)}
}

// IntSort returns the integer sort representing mathematical integers.
func (ctx *Context) IntSort() Sort {
	return Sort{ctx, C.Z3_mk_int_sort(ctx.c)}
}

// RealSort returns the real-number sort.
func (ctx *Context) RealSort() Sort {
	return Sort{ctx, C.Z3_mk_real_sort(ctx.c)}
}

// StringSort returns the Z3 string sort (sequence of unicode characters).
func (ctx *Context) StringSort() Sort {
	return Sort{ctx, C.Z3_mk_string_sort(ctx.c)}
}

// Kind returns the sort kind, or SortKindUnknown for a zero Sort.
func (s Sort) Kind() SortKind {
	if !s.ctx.alive() || s.s == nil {
		return SortKindUnknown
	}
	return SortKind(C.Z3_get_sort_kind(s.ctx.c, s.s))
}

// IsString reports whether s is the string sort.
func (s Sort) IsString() bool {
	if !s.ctx.alive() || s.s == nil {
		return false
	}
	return bool(C.Z3_is_string_sort(s.ctx.c, s.s))
}

// Equal reports whether both sorts denote the same sort in the same context.
func (s Sort) Equal(o Sort) bool {
	if s.ctx != o.ctx || !s.ctx.alive() || s.s == nil || o.s == nil {
		return false
	}
	return bool(C.Z3_is_eq_sort(s.ctx.c, s.s, o.s))
}

// Const creates a constant with the given name and sort.
func (ctx *Context) Const(name string, s Sort) AST {
	return ctx.ConstSym(StringSymbol(name), s)
}

// ConstSym creates a constant named by an arbitrary symbol.
func (ctx *Context) ConstSym(name Symbol, s Sort) AST {
	sym := ctx.MkSymbol(name)
	return ctx.wrapAST(C.Z3_mk_const(ctx.c, sym.s, s.s))
}

// wrapAST takes a reference on a freshly returned AST.
func (ctx *Context) wrapAST(a C.Z3_ast) AST {
	if a == nil {
		return AST{ctx, nil}
	}
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// IntVal creates an integer numeral AST from the provided value.
func (ctx *Context) IntVal(v int64) Int {
	return Int{ctx.numeral(strconv.FormatInt(v, 10), ctx.IntSort())}
}

// RealVal creates a real numeral from a string like "1/3" or "2". Z3 accepts
// rational literals, so callers should pass fractions in textual form.
func (ctx *Context) RealVal(num string) Real {
	return Real{ctx.numeral(num, ctx.RealSort())}
}

func (ctx *Context) numeral(text string, s Sort) AST {
	// String-based numeral creation avoids platform-dependent C integer types.
	cstr := C.CString(text)
	defer C.free(unsafe.Pointer(cstr))
	return ctx.wrapAST(C.Z3_mk_numeral(ctx.c, cstr, s.s))
}

// StringVal creates a string literal AST.
func (ctx *Context) StringVal(s string) String {
	cstr := C.CString(s)
	defer C.free(unsafe.Pointer(cstr))
	return String{ctx.wrapAST(C.Z3_mk_string(ctx.c, cstr))}
}

// BoolVal creates a boolean constant true/false.
func (ctx *Context) BoolVal(b bool) Bool {
	if b {
		return Bool{ctx.wrapAST(C.Z3_mk_true(ctx.c))}
	}
	return Bool{ctx.wrapAST(C.Z3_mk_false(ctx.c))}
}

// String returns an SMT-LIB-like textual representation of the AST.
func (a AST) String() string {
	if a.a == nil || !a.ctx.alive() {
		return "<nil>"
	}
	s := C.Z3_ast_to_string(a.ctx.c, a.a)
	if s == nil {
		return "<invalid>"
	}
	return C.GoString(s)
}

// String returns an SMT-LIB-like textual representation of the sort.
func (s Sort) String() string {
	if !s.ctx.alive() || s.s == nil {
		return ""
	}
	str := C.Z3_sort_to_string(s.ctx.c, s.s)
	if str == nil {
		return "<invalid-sort>"
	}
	return C.GoString(str)
}

// Symbol returns the sort's name.
func (s Sort) Symbol() Symbol {
	if !s.ctx.alive() || s.s == nil {
		return nil
	}
	return RawSymbol{s.ctx, C.Z3_get_sort_name(s.ctx.c, s.s)}.Symbol()
}

// Name returns the symbolic name of the sort if available.
func (s Sort) Name() string {
	if sym := s.Symbol(); sym != nil {
		return sym.String()
	}
	return ""
}

// NumeralString returns a textual numeral if the AST is numeric.
func (a AST) NumeralString() string {
	if a.a == nil || !a.ctx.alive() {
		return ""
	}
	s := C.Z3_get_numeral_string(a.ctx.c, a.a)
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
