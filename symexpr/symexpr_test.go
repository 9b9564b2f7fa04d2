package symexpr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sym "github.com/njchilds90/go-vcal/symexpr"
)

// ============================================================
// Num and Sym
// ============================================================

func TestNum_Integer(t *testing.T) {
	assert.Equal(t, "42", sym.N(42).String())
}

func TestNum_Rational(t *testing.T) {
	assert.Equal(t, "1/3", sym.F(1, 3).String())
	assert.Equal(t, `\frac{2}{5}`, sym.F(2, 5).LaTeX())
}

func TestNum_Diff_IsZero(t *testing.T) {
	assert.Equal(t, "0", sym.Diff(sym.N(5), "x").String())
}

func TestSym_Diff(t *testing.T) {
	assert.Equal(t, "1", sym.Diff(sym.S("x"), "x").String())
	assert.Equal(t, "0", sym.Diff(sym.S("y"), "x").String())
}

func TestSym_Sub(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "3", sym.Sub(x, "x", sym.N(3)).String())
	assert.Equal(t, "x", sym.Sub(x, "y", sym.N(3)).String())
}

// ============================================================
// Canonical sums
// ============================================================

func TestAdd_LikeTerms(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "2*x", sym.AddOf(x, x).String())
	assert.Equal(t, "x + 3", sym.AddOf(x, sym.N(3)).String())
	assert.Equal(t, "0", sym.AddOf(sym.N(1), sym.N(-1)).String())
}

func TestAdd_OppositeProductsCancel(t *testing.T) {
	r, theta := sym.S("r"), sym.S("theta")
	a := sym.MulOf(sym.N(2), r, sym.SinOf(theta))
	b := sym.MulOf(sym.N(-2), r, sym.SinOf(theta))
	assert.Equal(t, "0", sym.AddOf(a, b).String())
}

func TestAdd_CoefficientsCollect(t *testing.T) {
	x := sym.S("x")
	e := sym.AddOf(sym.MulOf(sym.N(3), x), sym.MulOf(sym.N(4), x))
	assert.Equal(t, "7*x", e.String())
}

// ============================================================
// Canonical products
// ============================================================

func TestMul_NumericFold(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "3*x", sym.MulOf(sym.N(3), x).String())
	assert.Equal(t, "0", sym.MulOf(sym.N(0), x).String())
	assert.Equal(t, "x", sym.MulOf(sym.N(1), x).String())
}

func TestMul_BasesCombine(t *testing.T) {
	r := sym.S("r")
	assert.Equal(t, "r^2", sym.MulOf(r, r).String())
	assert.Equal(t, "1", sym.MulOf(sym.PowOf(r, sym.N(2)), sym.PowOf(r, sym.N(-2))).String())
	assert.Equal(t, "r", sym.MulOf(sym.PowOf(r, sym.N(-1)), sym.PowOf(r, sym.N(2))).String())
}

func TestMul_FuncBasesCombine(t *testing.T) {
	s := sym.SinOf(sym.S("theta"))
	assert.Equal(t, "1", sym.MulOf(s, sym.PowOf(s, sym.N(-1))).String())
	assert.Equal(t, "sin(theta)^2", sym.MulOf(s, s).String())
}

// ============================================================
// Powers
// ============================================================

func TestPow_Rules(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "1", sym.PowOf(x, sym.N(0)).String())
	assert.Equal(t, "x", sym.PowOf(x, sym.N(1)).String())
	assert.Equal(t, "8", sym.PowOf(sym.N(2), sym.N(3)).String())
	assert.Equal(t, "1/4", sym.PowOf(sym.N(2), sym.N(-2)).String())
}

func TestPow_Nested(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "x^6", sym.PowOf(sym.PowOf(x, sym.N(2)), sym.N(3)).String())
}

func TestPow_DistributesOverProduct(t *testing.T) {
	x, y := sym.S("x"), sym.S("y")
	assert.Equal(t, "x^2*y^2", sym.PowOf(sym.MulOf(x, y), sym.N(2)).String())
}

// ============================================================
// Differentiation
// ============================================================

func TestDiff_Polynomial(t *testing.T) {
	x := sym.S("x")
	// d/dx(x^2 + 3x + 1) = 2x + 3
	e := sym.AddOf(sym.PowOf(x, sym.N(2)), sym.MulOf(sym.N(3), x), sym.N(1))
	assert.Equal(t, "2*x + 3", sym.Diff(e, "x").String())
}

func TestDiff_ChainRule(t *testing.T) {
	x := sym.S("x")
	// d/dx sin(x^2) = 2*cos(x^2)*x
	e := sym.SinOf(sym.PowOf(x, sym.N(2)))
	assert.Equal(t, "2*cos(x^2)*x", sym.Diff(e, "x").String())
}

func TestDiff_NegativePower(t *testing.T) {
	r := sym.S("r")
	assert.Equal(t, "-1*r^-2", sym.Diff(sym.PowOf(r, sym.N(-1)), "r").String())
}

func TestDiff_Trig(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "cos(x)", sym.Diff(sym.SinOf(x), "x").String())
	assert.Equal(t, "-1*sin(x)", sym.Diff(sym.CosOf(x), "x").String())
}

func TestDiff2(t *testing.T) {
	x := sym.S("x")
	assert.Equal(t, "12*x^2", sym.Diff2(sym.PowOf(x, sym.N(4)), "x").String())
}

// ============================================================
// Exact folds and trig identities
// ============================================================

func TestFunc_ExactFoldsOnly(t *testing.T) {
	assert.Equal(t, "0", sym.SinOf(sym.N(0)).String())
	assert.Equal(t, "1", sym.CosOf(sym.N(0)).String())
	assert.Equal(t, "0", sym.LnOf(sym.N(1)).String())
	assert.Equal(t, "1", sym.ExpOf(sym.N(0)).String())
	// Non-special numeric arguments stay symbolic.
	assert.Equal(t, "sin(2)", sym.SinOf(sym.N(2)).String())
}

func TestTrigSimplify_Pythagorean(t *testing.T) {
	x := sym.S("x")
	e := sym.AddOf(sym.PowOf(sym.SinOf(x), sym.N(2)), sym.PowOf(sym.CosOf(x), sym.N(2)))
	assert.Equal(t, "1", sym.TrigSimplify(e).String())
}

func TestTrigSimplify_WithCoefficient(t *testing.T) {
	x, z := sym.S("x"), sym.S("z")
	e := sym.AddOf(
		sym.MulOf(sym.N(3), sym.PowOf(sym.SinOf(x), sym.N(2))),
		sym.MulOf(sym.N(3), sym.PowOf(sym.CosOf(x), sym.N(2))),
		z,
	)
	assert.Equal(t, "z + 3", sym.TrigSimplify(e).String())
}

// ============================================================
// Substitution and evaluation
// ============================================================

func TestSubEval(t *testing.T) {
	x := sym.S("x")
	e := sym.AddOf(sym.MulOf(sym.N(3), x), sym.N(1))
	v, ok := sym.Sub(e, "x", sym.N(2)).Eval()
	require.True(t, ok)
	assert.Equal(t, "7", v.String())
}

// ============================================================
// Frames, unit vectors, projection
// ============================================================

func TestFrame_VecAndDot(t *testing.T) {
	f := sym.NewFrame("T", "i", "j", "k")
	x := sym.S("x")
	v := f.Vec(x, sym.N(2), sym.N(0))

	assert.Equal(t, "x", sym.Dot(v, f.I()).String())
	assert.Equal(t, "2", sym.Dot(v, f.J()).String())
	assert.Equal(t, "0", sym.Dot(v, f.K()).String())
}

func TestFrame_ZeroVectorCollapses(t *testing.T) {
	f := sym.NewFrame("T", "i", "j", "k")
	zero := f.Vec(sym.N(0), sym.N(0), sym.N(0))
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, "0", sym.Dot(zero, f.I()).String())
}

func TestDot_ScaledVectorDistributes(t *testing.T) {
	f := sym.NewFrame("T", "i", "j", "k")
	x := sym.S("x")
	v := sym.MulOf(sym.N(3), f.Vec(x, sym.N(1), sym.N(0)))
	assert.Equal(t, "3*x", sym.Dot(v, f.I()).String())
	assert.Equal(t, "3", sym.Dot(v, f.J()).String())
}

func TestDot_ForeignFramePanics(t *testing.T) {
	f := sym.NewFrame("T", "i", "j", "k")
	g := sym.NewFrame("U", "i", "j", "k")
	v := f.Vec(sym.N(1), sym.N(0), sym.N(0))
	require.Panics(t, func() { sym.Dot(v, g.I()) })
}

func TestDot_ScalarTermPanics(t *testing.T) {
	f := sym.NewFrame("T", "i", "j", "k")
	require.Panics(t, func() { sym.Dot(sym.S("x"), f.I()) })
}

// ============================================================
// JSON round trip
// ============================================================

func TestJSON_RoundTrip(t *testing.T) {
	f := sym.NewFrame("T", "i", "j", "k")
	x := sym.S("x")
	e := sym.AddOf(
		sym.MulOf(sym.N(2), sym.PowOf(x, sym.N(2)), f.I()),
		sym.MulOf(sym.SinOf(x), f.J()),
	)

	s, err := sym.ToJSON(e)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &data))

	back, err := sym.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, e.String(), back.String())
}

func TestJSON_RejectsUnknownType(t *testing.T) {
	_, err := sym.FromJSON(map[string]interface{}{"type": "matrix"})
	require.Error(t, err)
}
