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
	"math/big"
	"strconv"
	"unsafe"
)

// ASTKind mirrors Z3_ast_kind.
type ASTKind int

// Enumeration of supported AST kinds.
const (
	ASTKindNumeral    ASTKind = ASTKind(C.Z3_NUMERAL_AST)
	ASTKindApp        ASTKind = ASTKind(C.Z3_APP_AST)
	ASTKindVar        ASTKind = ASTKind(C.Z3_VAR_AST)
	ASTKindQuantifier ASTKind = ASTKind(C.Z3_QUANTIFIER_AST)
	ASTKindUnknown    ASTKind = ASTKind(C.Z3_UNKNOWN_AST)
)

var astKindNames = map[ASTKind]string{
	ASTKindNumeral:    "numeral",
	ASTKindApp:        "app",
	ASTKindVar:        "var",
	ASTKindQuantifier: "quantifier",
	ASTKindUnknown:    "unknown",
}

func (k ASTKind) String() string {
	if s, ok := astKindNames[k]; ok {
		return s
	}
	return "ASTKind(" + strconv.Itoa(int(k)) + ")"
}

// DeclKind mirrors Z3_decl_kind for the operators the model helpers inspect.
type DeclKind int

const (
	DeclOpTrue          DeclKind = DeclKind(C.Z3_OP_TRUE)
	DeclOpFalse         DeclKind = DeclKind(C.Z3_OP_FALSE)
	DeclOpEq            DeclKind = DeclKind(C.Z3_OP_EQ)
	DeclOpAnd           DeclKind = DeclKind(C.Z3_OP_AND)
	DeclOpAdd           DeclKind = DeclKind(C.Z3_OP_ADD)
	DeclOpUninterpreted DeclKind = DeclKind(C.Z3_OP_UNINTERPRETED)
)

var declKindNames = map[DeclKind]string{
	DeclOpTrue:          "true",
	DeclOpFalse:         "false",
	DeclOpEq:            "eq",
	DeclOpAnd:           "and",
	DeclOpAdd:           "add",
	DeclOpUninterpreted: "uninterpreted",
}

func (k DeclKind) String() string {
	if s, ok := declKindNames[k]; ok {
		return s
	}
	return "DeclKind(" + strconv.Itoa(int(k)) + ")"
}

// Kind returns the low-level Z3 kind for the AST.
func (a AST) Kind() ASTKind {
	if !a.ctx.alive() || a.a == nil {
		return ASTKindUnknown
	}
	return ASTKind(C.Z3_get_ast_kind(a.ctx.c, a.a))
}

// IsApp reports whether the AST is an application node.
func (a AST) IsApp() bool {
	if !a.ctx.alive() || a.a == nil {
		return false
	}
	return bool(C.Z3_is_app(a.ctx.c, a.a))
}

// NumChildren returns the number of immediate child ASTs.
func (a AST) NumChildren() int {
	if !a.IsApp() {
		return 0
	}
	app := C.Z3_to_app(a.ctx.c, a.a)
	return int(C.Z3_get_app_num_args(a.ctx.c, app))
}

// Child returns the ith child AST.
func (a AST) Child(i int) AST {
	if !a.IsApp() || i < 0 || i >= a.NumChildren() {
		return AST{}
	}
	app := C.Z3_to_app(a.ctx.c, a.a)
	return a.ctx.wrapAST(C.Z3_get_app_arg(a.ctx.c, app, C.uint(i)))
}

// Decl returns the function declaration for an application AST.
func (a AST) Decl() FuncDecl {
	if !a.IsApp() {
		return FuncDecl{}
	}
	app := C.Z3_to_app(a.ctx.c, a.a)
	return FuncDecl{ctx: a.ctx, d: C.Z3_get_app_decl(a.ctx.c, app)}
}

// ASTVisitFunc controls AST traversal; returning false skips visiting the node's children.
type ASTVisitFunc func(AST) bool

// Walk performs a depth-first traversal over the AST.
func (a AST) Walk(fn ASTVisitFunc) {
	if fn == nil || !a.ctx.alive() || a.a == nil {
		return
	}
	stack := []AST{a}
	for len(stack) > 0 {
		idx := len(stack) - 1
		node := stack[idx]
		stack = stack[:idx]
		if !fn(node) {
			continue
		}
		for i := node.NumChildren() - 1; i >= 0; i-- {
			stack = append(stack, node.Child(i))
		}
	}
}

// Kind returns the declaration kind.
func (d FuncDecl) Kind() DeclKind {
	if !d.ctx.alive() || d.d == nil {
		return DeclKind(0)
	}
	return DeclKind(C.Z3_get_decl_kind(d.ctx.c, d.d))
}

// Arity returns the number of arguments for the declaration.
func (d FuncDecl) Arity() int {
	if !d.ctx.alive() || d.d == nil {
		return 0
	}
	return int(C.Z3_get_arity(d.ctx.c, d.d))
}

// Range returns the result sort of the declaration.
func (d FuncDecl) Range() Sort {
	if !d.ctx.alive() || d.d == nil {
		return Sort{}
	}
	return Sort{d.ctx, C.Z3_get_range(d.ctx.c, d.d)}
}

// Symbol returns the declaration's name.
func (d FuncDecl) Symbol() Symbol {
	if !d.ctx.alive() || d.d == nil {
		return nil
	}
	return RawSymbol{d.ctx, C.Z3_get_decl_name(d.ctx.c, d.d)}.Symbol()
}

// Name returns the declaration's name as text; numeric names render as "#n".
func (d FuncDecl) Name() string {
	if sym := d.Symbol(); sym != nil {
		return sym.String()
	}
	return ""
}

// String returns the SMT-LIB declaration text.
func (d FuncDecl) String() string {
	if !d.ctx.alive() || d.d == nil {
		return ""
	}
	return C.GoString(C.Z3_func_decl_to_string(d.ctx.c, d.d))
}

// BoolValue attempts to interpret the AST as a boolean literal.
func (a AST) BoolValue() (bool, bool) {
	if !a.ctx.alive() || a.a == nil {
		return false, false
	}
	switch C.Z3_get_bool_value(a.ctx.c, a.a) {
	case C.Z3_L_TRUE:
		return true, true
	case C.Z3_L_FALSE:
		return false, true
	default:
		return false, false
	}
}

// AsInt64 tries to read the AST as an Int numeral.
func (a AST) AsInt64() (int64, bool) {
	if a.Kind() != ASTKindNumeral {
		return 0, false
	}
	var out C.longlong
	if bool(C.Z3_get_numeral_int64(a.ctx.c, a.a, &out)) {
		return int64(out), true
	}
	text := a.NumeralString()
	if text == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, true
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(text); ok && rat.IsInt() {
		num := rat.Num()
		if num.IsInt64() {
			return num.Int64(), true
		}
	}
	return 0, false
}

// AsStringLiteral returns the Go string represented by a Z3 string literal.
func (a AST) AsStringLiteral() (string, bool) {
	if !a.ctx.alive() || a.a == nil {
		return "", false
	}
	if !bool(C.Z3_is_string(a.ctx.c, a.a)) {
		return "", false
	}
	s := C.Z3_get_string(a.ctx.c, a.a)
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

// ParseSMTLIB2String parses the SMT-LIB2 script and returns the asserted ASTs.
// decls makes already known declarations visible to the script by name.
func (ctx *Context) ParseSMTLIB2String(input string, decls ...FuncDecl) ([]AST, error) {
	if !ctx.alive() {
		return nil, errNilContext
	}
	cstr := C.CString(input)
	defer C.free(unsafe.Pointer(cstr))
	var (
		n     = len(decls)
		names *C.Z3_symbol
		fds   *C.Z3_func_decl
	)
	if n > 0 {
		syms := make([]C.Z3_symbol, n)
		raw := make([]C.Z3_func_decl, n)
		for i, d := range decls {
			syms[i] = C.Z3_get_decl_name(ctx.c, d.d)
			raw[i] = d.d
		}
		names = (*C.Z3_symbol)(unsafe.Pointer(&syms[0]))
		fds = (*C.Z3_func_decl)(unsafe.Pointer(&raw[0]))
	}
	vec := C.Z3_parse_smtlib2_string(ctx.c, cstr, 0, nil, nil, C.uint(n), names, fds)
	if err := ctx.lastError(); err != nil {
		return nil, err
	}
	return ctx.vectorASTs(vec), nil
}

// ParseTerm parses a single SMT-LIB2 term over the given declarations.
func (ctx *Context) ParseTerm(term string, decls ...FuncDecl) (AST, error) {
	nodes, err := ctx.ParseSMTLIB2String("(assert (= "+term+" "+term+"))", decls...)
	if err != nil {
		return AST{}, err
	}
	if len(nodes) != 1 || nodes[0].NumChildren() != 2 {
		return AST{}, errors.New("term did not parse to a single expression")
	}
	return nodes[0].Child(0), nil
}

func (ctx *Context) vectorASTs(vec C.Z3_ast_vector) []AST {
	if vec == nil {
		return nil
	}
	C.Z3_ast_vector_inc_ref(ctx.c, vec)
	defer C.Z3_ast_vector_dec_ref(ctx.c, vec)
	n := int(C.Z3_ast_vector_size(ctx.c, vec))
	out := make([]AST, 0, n)
	for i := 0; i < n; i++ {
		if a := C.Z3_ast_vector_get(ctx.c, vec, C.uint(i)); a != nil {
			out = append(out, ctx.wrapAST(a))
		}
	}
	return out
}

// constDecls collects the uninterpreted constants occurring in the ASTs,
// first occurrence order, one entry per name.
func constDecls(nodes []AST) []FuncDecl {
	seen := make(map[string]bool)
	var out []FuncDecl
	for _, root := range nodes {
		root.Walk(func(node AST) bool {
			if !node.IsApp() || node.NumChildren() != 0 {
				return true
			}
			d := node.Decl()
			if d.Kind() != DeclOpUninterpreted {
				return true
			}
			if name := d.Name(); !seen[name] {
				seen[name] = true
				out = append(out, d)
			}
			return true
		})
	}
	return out
}
