package quantity

import "math"

// Operand is either a Scalar or a Quantity. Every arithmetic operation
// promotes scalars to dimensionless quantities before computing.
type Operand interface {
	asQuantity() Quantity
}

// Scalar is a raw number operand. It behaves as a dimensionless quantity.
type Scalar float64

func (s Scalar) asQuantity() Quantity {
	return Quantity{value: float64(s)}
}

// Quantity returns s as a dimensionless quantity.
func (s Scalar) Quantity() Quantity {
	return s.asQuantity()
}

func (q Quantity) asQuantity() Quantity {
	return q
}

var (
	_ Operand = Scalar(0)
	_ Operand = Quantity{}
)

// EqUnits returns whether a and b have the same dimensional signature, i.e.
// every unit symbol has the same exponent in both. A dimensionless operand
// only matches another dimensionless operand.
func EqUnits(a, b Operand) bool {
	x, y := a.asQuantity(), b.asQuantity()
	for _, d := range x.dims {
		if y.Exponent(d.sym) != d.exp {
			return false
		}
	}
	for _, d := range y.dims {
		if x.Exponent(d.sym) != d.exp {
			return false
		}
	}
	return true
}

// Add returns a+b. The operands must have the same dimensions; otherwise, the
// error is of class DimensionMismatch. The result has the units of a.
func Add(a, b Operand) (Quantity, error) {
	x, y := a.asQuantity(), b.asQuantity()
	if !EqUnits(x, y) {
		return Quantity{}, DimensionMismatch.New("cannot add %v and %v", x, y)
	}
	return Quantity{value: x.value + y.value, dims: x.cloneDims()}, nil
}

// Sub returns a-b. The operands must have the same dimensions; otherwise, the
// error is of class DimensionMismatch. The result has the units of a.
func Sub(a, b Operand) (Quantity, error) {
	x, y := a.asQuantity(), b.asQuantity()
	if !EqUnits(x, y) {
		return Quantity{}, DimensionMismatch.New("cannot subtract %v from %v", y, x)
	}
	return Quantity{value: x.value - y.value, dims: x.cloneDims()}, nil
}

// Mul returns a*b. Exponents of each unit are summed, and units whose
// exponents cancel are dropped.
func Mul(a, b Operand) Quantity {
	x, y := a.asQuantity(), b.asQuantity()
	dims := x.cloneDims()
	for _, d := range y.dims {
		dims = addDim(dims, d.sym, d.exp)
	}
	return Quantity{value: x.value * y.value, dims: simplify(dims)}
}

// Div returns a/b. Exponents of b's units are subtracted from a's, and units
// whose exponents cancel are dropped. Division by zero is not an error; the
// value follows IEEE 754 and becomes infinite or NaN.
func Div(a, b Operand) Quantity {
	x, y := a.asQuantity(), b.asQuantity()
	dims := x.cloneDims()
	for _, d := range y.dims {
		dims = addDim(dims, d.sym, -d.exp)
	}
	return Quantity{value: x.value / y.value, dims: simplify(dims)}
}

// Pow returns a raised to the power exp. Only the value of exp is used; any
// units it has are ignored. Each exponent of a is multiplied by exp, so a
// non-integral power yields non-integral exponents.
func Pow(a, exp Operand) Quantity {
	x, e := a.asQuantity(), exp.asQuantity().value
	dims := x.cloneDims()
	for i := range dims {
		dims[i].exp *= e
	}
	return Quantity{value: math.Pow(x.value, e), dims: simplify(dims)}
}

// cloneDims returns a copy of q's signature that the caller may modify.
func (q Quantity) cloneDims() []dim {
	if len(q.dims) == 0 {
		return nil
	}
	return append(make([]dim, 0, len(q.dims)), q.dims...)
}
