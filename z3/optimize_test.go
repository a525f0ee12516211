//go:build cgo
// +build cgo

package z3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeMinimize(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.Const("x", ctx.IntSort()).AsInt()
	y := ctx.Const("y", ctx.IntSort()).AsInt()

	o := ctx.NewOptimize()
	defer o.Close()
	o.Assert(Ge(x, ctx.IntVal(2)))
	o.Assert(Ge(y, ctx.IntVal(3)))
	obj := o.Minimize(Add(x, y))

	res, err := o.Check()
	require.NoError(t, err)
	require.Equal(t, Sat, res)

	lo, ok := o.Lower(obj).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(5), lo)
	hi, ok := o.Upper(obj).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(5), hi, "bounds meet at the optimum")

	m := o.Model()
	require.NotNil(t, m)
	defer m.Close()
	sum, ok := Eval(m, Add(x, y), true)
	require.True(t, ok)
	n, _ := sum.Value()
	assert.Equal(t, int64(5), n)

	names := []string{}
	for _, d := range o.Consts() {
		names = append(names, d.Name())
	}
	assert.ElementsMatch(t, []string{"x", "y"}, names)
}

func TestOptimizeSoftConstraints(t *testing.T) {
	ctx := newTestContext(t)
	a := ctx.Const("a", ctx.BoolSort()).AsBool()
	b := ctx.Const("b", ctx.BoolSort()).AsBool()

	o := ctx.NewOptimize()
	defer o.Close()
	o.Assert(Not(And(a, b)))
	o.AssertSoft(a, "1", "")
	o.AssertSoft(b, "5", "")

	res, err := o.Check()
	require.NoError(t, err)
	require.Equal(t, Sat, res)

	m := o.Model()
	require.NotNil(t, m)
	defer m.Close()
	bv, ok := ConstInterp[Bool](m, b.Decl())
	require.True(t, ok)
	val, _ := bv.Value()
	assert.True(t, val, "the heavier soft constraint wins")
}

func TestOptimizeFromString(t *testing.T) {
	ctx := newTestContext(t)
	o := ctx.NewOptimize()
	defer o.Close()

	require.NoError(t, o.FromString(`
		(declare-const x Int)
		(assert (< x 8))
		(maximize x)
	`))
	res, err := o.Check()
	require.NoError(t, err)
	require.Equal(t, Sat, res)

	m, ok := ModelOfOptimize(o)
	require.True(t, ok)
	defer m.Close()
	as := m.Assignments()
	require.Len(t, as, 1)
	assert.Equal(t, "x", as[0].Name)
	assert.Equal(t, "7", as[0].Value.String())

	assert.Error(t, o.FromString("(assert (> missing 0))"))
}

func TestOptimizePushPop(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.Const("x", ctx.IntSort()).AsInt()

	o := ctx.NewOptimize()
	defer o.Close()
	o.Assert(Ge(x, ctx.IntVal(0)))
	o.Push()
	o.Assert(Lt(x, ctx.IntVal(0)))
	res, err := o.Check()
	require.NoError(t, err)
	assert.Equal(t, Unsat, res)
	o.Pop()

	res, err = o.Check()
	require.NoError(t, err)
	assert.Equal(t, Sat, res)
}
