package quantity

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Units maps unit symbols to exponents. Exponents are normally integers, but
// raising a quantity to a non-integral power produces rational ones. A symbol
// that is absent has exponent 0.
type Units map[string]float64

// dim is one unit symbol of a quantity with its exponent.
type dim struct {
	sym string
	exp float64
}

// Quantity is a scalar value with a dimensional signature. Quantities are
// immutable: every operation returns a new Quantity, and the signature is
// never shared between two quantities. The zero Quantity is a dimensionless 0.
type Quantity struct {
	value float64
	// dims holds the signature in insertion order, with no zero exponents.
	// Insertion order breaks ties between equal exponents when rendering.
	dims []dim
}

// New creates a quantity with the given value and units. The units are
// copied, and entries with a zero exponent are dropped. Since map order is
// unspecified, the symbols are ordered by name. Symbols are normalized to NFC,
// and exponents of symbols with the same normal form are summed. Panics if a
// symbol is empty.
func New(value float64, units Units) Quantity {
	syms := make([]string, 0, len(units))
	for sym := range units {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	var dims []dim
	for _, sym := range syms {
		dims = addDim(dims, symbol(sym), units[sym])
	}
	return Quantity{value: value, dims: simplify(dims)}
}

// Unit creates a quantity with value 1 and exponent 1 on a single symbol.
// Panics if the symbol is empty.
func Unit(sym string) Quantity {
	return Quantity{value: 1, dims: []dim{{sym: symbol(sym), exp: 1}}}
}

// symbol normalizes a unit symbol.
func symbol(sym string) string {
	if sym == "" {
		panic("quantity: empty unit symbol")
	}
	return norm.NFC.String(sym)
}

// Simplify returns a copy of units without the entries whose exponent is
// zero. Simplifying a simplified map returns an equal map.
func Simplify(units Units) Units {
	r := make(Units, len(units))
	for sym, exp := range units {
		if exp != 0 {
			r[sym] = exp
		}
	}
	return r
}

// addDim adds exp to the exponent of sym in dims, appending sym if it is not
// yet present. dims must be owned by the caller.
func addDim(dims []dim, sym string, exp float64) []dim {
	for i := range dims {
		if dims[i].sym == sym {
			dims[i].exp += exp
			return dims
		}
	}
	return append(dims, dim{sym: sym, exp: exp})
}

// simplify removes zero exponents from dims in place.
func simplify(dims []dim) []dim {
	r := dims[:0]
	for _, d := range dims {
		if d.exp != 0 {
			r = append(r, d)
		}
	}
	if len(r) == 0 {
		return nil
	}
	return r
}

// Value returns the scalar value of q.
func (q Quantity) Value() float64 {
	return q.value
}

// Units returns a copy of the dimensional signature of q. The result is never
// nil.
func (q Quantity) Units() Units {
	r := make(Units, len(q.dims))
	for _, d := range q.dims {
		r[d.sym] = d.exp
	}
	return r
}

// Exponent returns the exponent of a unit symbol in q, or 0 if q does not
// have that unit.
func (q Quantity) Exponent(sym string) float64 {
	sym = norm.NFC.String(sym)
	for _, d := range q.dims {
		if d.sym == sym {
			return d.exp
		}
	}
	return 0
}

// Symbols returns the unit symbols of q in insertion order.
func (q Quantity) Symbols() []string {
	r := make([]string, len(q.dims))
	for i, d := range q.dims {
		r[i] = d.sym
	}
	return r
}

// Dimensionless returns whether q has no units.
func (q Quantity) Dimensionless() bool {
	return len(q.dims) == 0
}
