package symexpr

// Frame is a named orthonormal triple of unit vectors. A vector field is
// an ordinary Expr built as a sum of scalar-coefficient * unit-vector
// products; Dot projects out the scalar coefficient along one axis.
type Frame struct {
	name  string
	units [3]*UnitVec
}

// NewFrame creates a frame with the given axis unit-vector names.
func NewFrame(name, i, j, k string) *Frame {
	f := &Frame{name: name}
	for axis, n := range [3]string{i, j, k} {
		f.units[axis] = &UnitVec{frame: name, name: n, axis: axis}
	}
	return f
}

func (f *Frame) Name() string { return f.name }

// Unit returns the unit vector along axis 0, 1 or 2.
func (f *Frame) Unit(axis int) *UnitVec {
	if axis < 0 || axis > 2 {
		panic("symexpr: frame axis out of range")
	}
	return f.units[axis]
}

func (f *Frame) I() *UnitVec { return f.units[0] }
func (f *Frame) J() *UnitVec { return f.units[1] }
func (f *Frame) K() *UnitVec { return f.units[2] }

// Vec builds the vector c1*ê1 + c2*ê2 + c3*ê3. A zero coefficient drops
// its term, so the zero vector collapses to the scalar 0.
func (f *Frame) Vec(c1, c2, c3 Expr) Expr {
	return AddOf(
		MulOf(c1, f.units[0]),
		MulOf(c2, f.units[1]),
		MulOf(c3, f.units[2]),
	)
}

// UnitVec is a basis unit vector. It is constant under differentiation
// and substitution; components are always projected out with Dot before
// any derivative is taken.
type UnitVec struct {
	frame string
	name  string
	axis  int
}

func (u *UnitVec) Simplify() Expr        { return u }
func (u *UnitVec) String() string        { return u.frame + "." + u.name }
func (u *UnitVec) LaTeX() string         { return `\mathbf{\hat{` + u.name + `}}` }
func (u *UnitVec) Sub(string, Expr) Expr { return u }
func (u *UnitVec) Diff(string) Expr      { return N(0) }
func (u *UnitVec) Eval() (*Num, bool)    { return nil, false }
func (u *UnitVec) Equal(other Expr) bool {
	o, ok := other.(*UnitVec)
	return ok && u.frame == o.frame && u.name == o.name
}
func (u *UnitVec) kind() string { return "unitvec" }
func (u *UnitVec) encode() map[string]interface{} {
	return map[string]interface{}{"type": "unitvec", "frame": u.frame, "name": u.name, "axis": u.axis}
}
func (u *UnitVec) FrameName() string { return u.frame }
func (u *UnitVec) Name() string      { return u.name }
func (u *UnitVec) Axis() int         { return u.axis }

// Dot projects a vector expression onto a unit vector, returning the
// scalar coefficient along that axis. Orthogonal components contribute
// nothing. A term carrying no unit vector, or a unit vector from another
// frame, is not a projectable vector and panics.
func Dot(v Expr, u *UnitVec) Expr {
	v = Expand(v)
	terms := []Expr{v}
	if add, ok := v.(*Add); ok {
		terms = add.terms
	}
	var out []Expr
	for _, t := range terms {
		unit, coeff := splitUnit(t)
		if unit == nil {
			if n, ok := t.(*Num); ok && n.IsZero() {
				continue
			}
			panic("symexpr: Dot: term " + t.String() + " carries no unit vector")
		}
		if unit.frame != u.frame {
			panic("symexpr: Dot: " + unit.String() + " belongs to a different frame than " + u.String())
		}
		if unit.name == u.name {
			out = append(out, coeff)
		}
	}
	return AddOf(out...)
}

// splitUnit separates one unit-vector factor from a term.
func splitUnit(t Expr) (*UnitVec, Expr) {
	switch v := t.(type) {
	case *UnitVec:
		return v, N(1)
	case *Mul:
		var unit *UnitVec
		rest := make([]Expr, 0, len(v.factors))
		for _, f := range v.factors {
			if uv, ok := f.(*UnitVec); ok && unit == nil {
				unit = uv
				continue
			}
			rest = append(rest, f)
		}
		if unit == nil {
			return nil, t
		}
		switch len(rest) {
		case 0:
			return unit, N(1)
		case 1:
			return unit, rest[0]
		}
		return unit, &Mul{factors: rest}
	}
	return nil, t
}
