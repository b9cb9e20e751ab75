package quantity

import (
	"strconv"
	"strings"
)

// Evaluate evaluates a template: literal segments of expression text with
// already evaluated values interpolated between them, in the order segment,
// value, segment, ..., segment. There must be exactly one more segment than
// values; otherwise, Evaluate panics.
//
// Segments are scanned independently. Within a segment, whitespace is
// ignored, a run of digits and dots is a dimensionless number, and a run of
// letters, digits, and underscores is a unit symbol, i.e. a quantity of value
// 1 with exponent 1 on that symbol. A minus sign directly before a number is
// part of the number at the start of a segment or after an operator or open
// bracket. Scalar values are dimensionless.
//
// Errors from Add and Sub are returned unchanged. Any other error is of class
// InvalidExpression. Text after a close bracket that has no matching open
// bracket is ignored, and open brackets are closed by the end of the template.
func Evaluate(segments []string, values ...Operand) (Quantity, error) {
	if len(segments) != len(values)+1 {
		panic("quantity: " + strconv.Itoa(len(segments)) + " segments for " + strconv.Itoa(len(values)) + " values")
	}
	toks := lex(segments[0])
	for i, v := range values {
		if v == nil {
			panic("quantity: nil operand at " + strconv.Itoa(i))
		}
		toks = append(toks, valueToken(v.asQuantity()))
		toks = append(toks, lex(segments[i+1])...)
	}
	q, _, err := reduce(toks, 0)
	if err != nil {
		return Quantity{}, err
	}
	return q, nil
}

// EvalString is a shortcut to evaluate expression text with no interpolated
// values.
func EvalString(src string) (Quantity, error) {
	return Evaluate([]string{src})
}

// Evalf evaluates a template in which each %v marks the place of the next
// value. The number of %v must equal the number of values; otherwise, the
// error is of class InvalidExpression.
func Evalf(format string, values ...Operand) (Quantity, error) {
	segments := strings.Split(format, "%v")
	if len(segments) != len(values)+1 {
		return Quantity{}, InvalidExpression.New("%d placeholders for %d values in %q", len(segments)-1, len(values), format)
	}
	return Evaluate(segments, values...)
}

// Must returns q if err is nil and panics otherwise. It is intended for
// package-level definitions, e.g.
//
//	var joule = quantity.Must(quantity.EvalString("kilogram*meter^2second^-2"))
func Must(q Quantity, err error) Quantity {
	if err != nil {
		panic(err)
	}
	return q
}
