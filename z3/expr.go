//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
*/
import "C"

// Expr is implemented by every expression kind the model API can hand back.
// The unexported methods let generic helpers such as Eval and ConstInterp
// build a value of the caller's static type from a raw engine result and
// check that the engine's sort fits that type.
//
// Type arguments must be concrete kinds (AST, Bool, Int, Real, String), not
// the Expr interface itself.
type Expr interface {
	AsAST() AST
	Sort() Sort
	wrap(AST) Expr
	matchesSort(Sort) bool
}

// Bool is a boolean-sorted expression.
type Bool struct{ AST }

// Int is an integer-sorted expression.
type Int struct{ AST }

// Real is a real-sorted expression.
type Real struct{ AST }

// String is a string-sorted expression.
type String struct{ AST }

// AsAST returns the underlying dynamically sorted expression.
func (a AST) AsAST() AST { return a }

// Sort returns the sort the engine assigns to the expression.
func (a AST) Sort() Sort {
	if a.a == nil || !a.ctx.alive() {
		return Sort{}
	}
	return Sort{a.ctx, C.Z3_get_sort(a.ctx.c, a.a)}
}

func (AST) wrap(a AST) Expr    { return a }
func (Bool) wrap(a AST) Expr   { return Bool{a} }
func (Int) wrap(a AST) Expr    { return Int{a} }
func (Real) wrap(a AST) Expr   { return Real{a} }
func (String) wrap(a AST) Expr { return String{a} }

func (AST) matchesSort(Sort) bool      { return true }
func (Bool) matchesSort(s Sort) bool   { return s.Kind() == SortKindBool }
func (Int) matchesSort(s Sort) bool    { return s.Kind() == SortKindInt }
func (Real) matchesSort(s Sort) bool   { return s.Kind() == SortKindReal }
func (String) matchesSort(s Sort) bool { return s.IsString() }

// AsBool views a as a Bool without checking its sort.
func (a AST) AsBool() Bool { return Bool{a} }

// AsInt views a as an Int without checking its sort.
func (a AST) AsInt() Int { return Int{a} }

// AsReal views a as a Real without checking its sort.
func (a AST) AsReal() Real { return Real{a} }

// AsString views a as a String without checking its sort.
func (a AST) AsString() String { return String{a} }

// Value returns the literal truth value, if a is true or false.
func (b Bool) Value() (bool, bool) { return b.BoolValue() }

// Value returns the numeral as int64 when it fits.
func (i Int) Value() (int64, bool) { return i.AsInt64() }

// Value returns the rational numeral text, e.g. "1/3".
func (r Real) Value() (string, bool) {
	if r.Kind() != ASTKindNumeral {
		return "", false
	}
	return r.NumeralString(), true
}

// Value returns the Go string of a string literal.
func (s String) Value() (string, bool) { return s.AsStringLiteral() }
