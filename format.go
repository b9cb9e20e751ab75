package quantity

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// String formats q as its value followed by its units, e.g. "9.8 meter
// second^-2". Units are ordered by descending exponent, with ties in the order
// the units were introduced. The result is for display and generally cannot
// be evaluated back into q.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.value, 'g', -1, 64)
	if len(q.dims) == 0 {
		return v
	}
	return v + " " + q.UnitString()
}

// UnitString formats only the units of q. An exponent of 1 is written as the
// bare symbol, and any other as symbol^exponent. The result is empty if q is
// dimensionless.
func (q Quantity) UnitString() string {
	dims := slices.Clone(q.dims)
	slices.SortStableFunc(dims, func(a, b dim) int {
		return cmp.Compare(b.exp, a.exp)
	})
	var b strings.Builder
	for i, d := range dims {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.sym)
		if d.exp != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.FormatFloat(d.exp, 'g', -1, 64))
		}
	}
	return b.String()
}

// Format implements fmt.Formatter. The verbs %e %E %f %F %g %G and %v format
// the value with any width and precision given, followed by the units as
// rendered by UnitString. %s is the same as String, and %#v is Go syntax.
func (q Quantity) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprintf(f, "quantity.New(%#v, %#v)", q.value, q.Units())
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), q.value)
	case 's':
		io.WriteString(f, q.String())
		return
	default:
		fmt.Fprintf(f, "%%!%c(quantity.Quantity=%s)", verb, q.String())
		return
	}
	if len(q.dims) != 0 {
		io.WriteString(f, " ")
		io.WriteString(f, q.UnitString())
	}
}
