//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
*/
import "C"

import "unsafe"

type naryFn func(C.Z3_context, C.uint, *C.Z3_ast) C.Z3_ast

type binaryFn func(C.Z3_context, C.Z3_ast, C.Z3_ast) C.Z3_ast

func nary(op string, fn naryFn, args []AST) AST {
	if len(args) == 0 {
		panic(op + " requires at least one arg")
	}
	ctx := args[0].ctx
	cargs := make([]C.Z3_ast, len(args))
	for i, a := range args {
		cargs[i] = a.a
	}
	return ctx.wrapAST(fn(ctx.c, C.uint(len(cargs)), (*C.Z3_ast)(unsafe.Pointer(&cargs[0]))))
}

func binary(fn binaryFn, x, y Expr) AST {
	a, b := x.AsAST(), y.AsAST()
	return a.ctx.wrapAST(fn(a.ctx.c, a.a, b.a))
}

func asts[T Expr](args []T) []AST {
	out := make([]AST, len(args))
	for i, a := range args {
		out[i] = a.AsAST()
	}
	return out
}

// Not returns the logical negation of the AST.
func Not(b Expr) Bool {
	a := b.AsAST()
	return Bool{a.ctx.wrapAST(C.Z3_mk_not(a.ctx.c, a.a))}
}

// And builds a conjunction over all provided ASTs.
func And(args ...Expr) Bool {
	return Bool{nary("And", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_and(c, n, p) }, asts(args))}
}

// Or builds a disjunction over all provided ASTs.
func Or(args ...Expr) Bool {
	return Bool{nary("Or", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_or(c, n, p) }, asts(args))}
}

// Distinct enforces that all provided ASTs take pairwise different values.
func Distinct(args ...Expr) Bool {
	return Bool{nary("Distinct", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_distinct(c, n, p) }, asts(args))}
}

// Add sums all provided numeric expressions; the result has their type.
func Add[T Expr](args ...T) T {
	var zero T
	return zero.wrap(nary("Add", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_add(c, n, p) }, asts(args))).(T)
}

// Sub subtracts subsequent expressions from the first argument.
func Sub[T Expr](args ...T) T {
	var zero T
	return zero.wrap(nary("Sub", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_sub(c, n, p) }, asts(args))).(T)
}

// Mul multiplies all provided numeric expressions.
func Mul[T Expr](args ...T) T {
	var zero T
	return zero.wrap(nary("Mul", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_mul(c, n, p) }, asts(args))).(T)
}

// Eq builds an equality between two expressions.
func Eq(x, y Expr) Bool {
	return Bool{binary(func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_eq(c, a, b) }, x, y)}
}

// Le builds the constraint x <= y.
func Le(x, y Expr) Bool {
	return Bool{binary(func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_le(c, a, b) }, x, y)}
}

// Lt builds the constraint x < y.
func Lt(x, y Expr) Bool {
	return Bool{binary(func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_lt(c, a, b) }, x, y)}
}

// Ge builds the constraint x >= y.
func Ge(x, y Expr) Bool {
	return Bool{binary(func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_ge(c, a, b) }, x, y)}
}

// Gt builds the constraint x > y.
func Gt(x, y Expr) Bool {
	return Bool{binary(func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_gt(c, a, b) }, x, y)}
}

// Implies builds the implication x => y.
func Implies(x, y Expr) Bool {
	return Bool{binary(func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_implies(c, a, b) }, x, y)}
}

// Concat concatenates the provided string expressions.
func Concat(args ...String) String {
	return String{nary("Concat", func(c C.Z3_context, n C.uint, p *C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_concat(c, n, p) }, asts(args))}
}

// App applies a function declaration to the provided arguments and returns the resulting AST.
func (ctx *Context) App(f FuncDecl, args ...Expr) AST {
	if len(args) == 0 {
		return ctx.wrapAST(C.Z3_mk_app(ctx.c, f.d, 0, nil))
	}
	cargs := asts(args)
	raw := make([]C.Z3_ast, len(cargs))
	for i, v := range cargs {
		raw[i] = v.a
	}
	return ctx.wrapAST(C.Z3_mk_app(ctx.c, f.d, C.uint(len(raw)), (*C.Z3_ast)(unsafe.Pointer(&raw[0]))))
}
