// Package vcal provides the classical vector-calculus operators —
// gradient, divergence, curl and Laplacian — in cylindrical and
// spherical coordinates, built on the symexpr symbolic engine.
//
// A CoordSys bundles the three coordinate variables, the metric scale
// factors h1..h3 and an orthonormal frame. The four operators share one
// implementation each, written in the general orthogonal-coordinate
// form; the per-system closed forms fall out of the scale factors:
//
//	cylindrical (rho, theta, z):  h = 1, rho, 1
//	spherical   (r, theta, phi):  h = 1, r, r*sin(theta)
//
// Scalar fields are plain symexpr expressions over the system's
// variables. Vector fields are sums of coefficient * unit-vector
// products, built with Vector and projected with Component. Every
// operation is a pure in-memory transformation; expressions are
// immutable and safe for concurrent use.
package vcal

import (
	sym "github.com/njchilds90/go-vcal/symexpr"
)

// CoordSys is an orthogonal curvilinear coordinate system. Each instance
// owns its symbols and frame; two instances never share state, even when
// variable names (theta) coincide.
type CoordSys struct {
	name  string
	q     [3]*sym.Sym
	h     [3]sym.Expr
	frame *sym.Frame
}

// Cylindrical returns the (rho, theta, z) coordinate system, theta being
// the azimuthal angle.
func Cylindrical() *CoordSys {
	rho, theta, z := sym.S("rho"), sym.S("theta"), sym.S("z")
	return &CoordSys{
		name:  "Cy",
		q:     [3]*sym.Sym{rho, theta, z},
		h:     [3]sym.Expr{sym.N(1), rho, sym.N(1)},
		frame: sym.NewFrame("Cy", "e_rho", "e_theta", "e_z"),
	}
}

// Spherical returns the (r, theta, phi) coordinate system, theta being
// the colatitude and phi the azimuthal angle.
func Spherical() *CoordSys {
	r, theta, phi := sym.S("r"), sym.S("theta"), sym.S("phi")
	return &CoordSys{
		name:  "Sp",
		q:     [3]*sym.Sym{r, theta, phi},
		h:     [3]sym.Expr{sym.N(1), r, sym.MulOf(r, sym.SinOf(theta))},
		frame: sym.NewFrame("Sp", "e_r", "e_theta", "e_phi"),
	}
}

func (c *CoordSys) Name() string { return c.name }

// Var returns the coordinate variable along axis 0, 1 or 2.
func (c *CoordSys) Var(axis int) *sym.Sym { return c.q[axis] }

// ScaleFactor returns the metric scale factor h along an axis.
func (c *CoordSys) ScaleFactor(axis int) sym.Expr { return c.h[axis] }

// Unit returns the basis unit vector along an axis.
func (c *CoordSys) Unit(axis int) *sym.UnitVec { return c.frame.Unit(axis) }

func (c *CoordSys) Frame() *sym.Frame { return c.frame }

// Vector builds the field c1*ê1 + c2*ê2 + c3*ê3 in this system's frame.
func (c *CoordSys) Vector(c1, c2, c3 sym.Expr) sym.Expr {
	return c.frame.Vec(c1, c2, c3)
}

// Component projects a vector field onto the axis unit vector.
func (c *CoordSys) Component(v sym.Expr, axis int) sym.Expr {
	return sym.Dot(v, c.frame.Unit(axis))
}

// jacobian is the volume element h1*h2*h3.
func (c *CoordSys) jacobian() sym.Expr {
	return sym.MulOf(c.h[0], c.h[1], c.h[2])
}

func inv(e sym.Expr) sym.Expr { return sym.PowOf(e, sym.N(-1)) }

// Grad returns the gradient of a scalar field:
//
//	∇f = Σ_i (1/h_i) ∂f/∂q_i ê_i
func (c *CoordSys) Grad(f sym.Expr) sym.Expr {
	var comp [3]sym.Expr
	for i := 0; i < 3; i++ {
		comp[i] = sym.MulOf(inv(c.h[i]), sym.Diff(f, c.q[i].Name()))
	}
	return c.frame.Vec(comp[0], comp[1], comp[2])
}

// Div returns the divergence of a vector field:
//
//	∇·V = (1/(h1 h2 h3)) Σ_i ∂/∂q_i ( (h1 h2 h3 / h_i) V_i )
func (c *CoordSys) Div(v sym.Expr) sym.Expr {
	jac := c.jacobian()
	terms := make([]sym.Expr, 3)
	for i := 0; i < 3; i++ {
		vi := sym.Dot(v, c.frame.Unit(i))
		terms[i] = sym.Diff(sym.MulOf(jac, inv(c.h[i]), vi), c.q[i].Name())
	}
	return sym.MulOf(inv(jac), sym.AddOf(terms...)).Simplify()
}

// Curl returns the curl of a vector field, componentwise over cyclic
// (i, j, k):
//
//	(∇×V)_i = (1/(h_j h_k)) [ ∂(h_k V_k)/∂q_j − ∂(h_j V_j)/∂q_k ]
func (c *CoordSys) Curl(v sym.Expr) sym.Expr {
	var comp [3]sym.Expr
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		vj := sym.Dot(v, c.frame.Unit(j))
		vk := sym.Dot(v, c.frame.Unit(k))
		dk := sym.Diff(sym.MulOf(c.h[k], vk), c.q[j].Name())
		dj := sym.Diff(sym.MulOf(c.h[j], vj), c.q[k].Name())
		comp[i] = sym.MulOf(
			inv(sym.MulOf(c.h[j], c.h[k])),
			sym.AddOf(dk, sym.MulOf(sym.N(-1), dj)),
		)
	}
	return c.frame.Vec(comp[0], comp[1], comp[2])
}

// Laplacian returns ∇²f for a scalar field:
//
//	∇²f = (1/(h1 h2 h3)) Σ_i ∂/∂q_i ( (h1 h2 h3 / h_i²) ∂f/∂q_i )
func (c *CoordSys) Laplacian(f sym.Expr) sym.Expr {
	jac := c.jacobian()
	terms := make([]sym.Expr, 3)
	for i := 0; i < 3; i++ {
		df := sym.Diff(f, c.q[i].Name())
		terms[i] = sym.Diff(sym.MulOf(jac, sym.PowOf(c.h[i], sym.N(-2)), df), c.q[i].Name())
	}
	return sym.MulOf(inv(jac), sym.AddOf(terms...)).Simplify()
}
