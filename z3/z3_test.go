//go:build cgo
// +build cgo

package z3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	t.Cleanup(ctx.Close)
	return ctx
}

func checkSat(t *testing.T, s *Solver) *Model {
	t.Helper()
	res, err := s.Check()
	require.NoError(t, err)
	require.Equal(t, Sat, res)
	m := s.Model()
	require.NotNil(t, m, "expected a model after sat")
	t.Cleanup(m.Close)
	return m
}

func TestIntArithmeticAndModel(t *testing.T) {
	ctx := newTestContext(t)

	x := ctx.Const("x", ctx.IntSort()).AsInt()
	y := ctx.Const("y", ctx.IntSort()).AsInt()

	s := ctx.NewSolver()
	defer s.Close()

	s.Assert(Ge(x, ctx.IntVal(0)))
	s.Assert(Ge(y, ctx.IntVal(0)))
	s.Assert(Gt(Add(x, y), ctx.IntVal(5)))

	m := checkSat(t, s)

	xv, ok := Eval(m, x, true)
	require.True(t, ok)
	yv, ok := Eval(m, y, true)
	require.True(t, ok)

	xi, ok := xv.Value()
	require.True(t, ok, "x should evaluate to a numeral, got %s", xv)
	yi, ok := yv.Value()
	require.True(t, ok, "y should evaluate to a numeral, got %s", yv)
	assert.GreaterOrEqual(t, xi, int64(0))
	assert.GreaterOrEqual(t, yi, int64(0))
	assert.Greater(t, xi+yi, int64(5))
}

func TestStrings(t *testing.T) {
	ctx := newTestContext(t)

	s1 := ctx.Const("s1", ctx.StringSort()).AsString()
	s2 := ctx.Const("s2", ctx.StringSort()).AsString()

	s := ctx.NewSolver()
	defer s.Close()

	s.Assert(Eq(Concat(s1, ctx.StringVal("abc"), s2), ctx.StringVal("xabcy")))
	m := checkSat(t, s)

	v1, ok := Eval(m, s1, true)
	require.True(t, ok)
	text, ok := v1.Value()
	require.True(t, ok)
	assert.Equal(t, "x", text)
}

func TestSMTLIB2FromString(t *testing.T) {
	ctx := newTestContext(t)

	smt := `
	(set-logic ALL)
	(declare-fun x () Int)
	(declare-fun y () Int)
	(assert (>= x 0))
	(assert (>= y 0))
	(assert (> (+ x y) 5))
	`

	s := ctx.NewSolver()
	defer s.Close()
	require.NoError(t, s.AssertSMTLIB2String(smt))
	checkSat(t, s)

	names := []string{}
	for _, d := range s.Consts() {
		names = append(names, d.Name())
	}
	assert.ElementsMatch(t, []string{"x", "y"}, names)

	s2 := ctx.NewSolver()
	defer s2.Close()
	res, err := s2.SolveSMTLIB2String(smt)
	require.NoError(t, err)
	assert.Equal(t, Sat, res)
}

func TestSMTLIB2ParseError(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()
	assert.Error(t, s.AssertSMTLIB2String("(assert (> undeclared 1))"))
}

func TestSMTLIB2FromFile(t *testing.T) {
	ctx := newTestContext(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "example.smt2")
	content := `
	(set-logic QF_ALIA)
	(declare-fun a () (Array Int Int))
	(declare-fun i () Int)
	(assert (>= i 0))
	(assert (= (select a i) 42))
	`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := ctx.NewSolver()
	defer s.Close()
	res, err := s.SolveSMTLIB2File(path)
	require.NoError(t, err)
	assert.Equal(t, Sat, res)
}

func TestSetOption(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()

	require.NoError(t, s.SetOption("unsat_core", true))
	require.NoError(t, s.SetOption("random_seed", 7))
	require.NoError(t, s.SetOption("timeout", 5000))
	assert.Error(t, s.SetOption("timeout", -1))
	assert.Error(t, s.SetOption("timeout", []int{1}))
}

func TestParseTermAndWalk(t *testing.T) {
	ctx := newTestContext(t)

	x := ctx.Const("x", ctx.IntSort())
	s := ctx.NewSolver()
	defer s.Close()
	s.Assert(Eq(x, ctx.IntVal(4)))
	m := checkSat(t, s)

	term, err := ctx.ParseTerm("(+ x 3)", x.Decl())
	require.NoError(t, err)
	assert.Equal(t, DeclOpAdd, term.Decl().Kind())

	var kinds []ASTKind
	term.Walk(func(node AST) bool {
		kinds = append(kinds, node.Kind())
		return true
	})
	assert.Equal(t, []ASTKind{ASTKindApp, ASTKindApp, ASTKindNumeral}, kinds)

	v, ok := Eval(m, term.AsInt(), true)
	require.True(t, ok)
	n, ok := v.Value()
	require.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, err = ctx.ParseTerm("(+ nope 3)")
	assert.Error(t, err)
}
