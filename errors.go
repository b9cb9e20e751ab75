package quantity

import "github.com/zeebo/errs"

var (
	// DimensionMismatch is the class of errors from adding or subtracting
	// quantities whose dimensional signatures differ. Use
	// DimensionMismatch.Has(err) to test for it.
	DimensionMismatch = errs.Class("dimension mismatch")

	// InvalidExpression is the class of errors from expressions that do not
	// reduce to exactly one quantity, e.g. "2+", "2**3", or "()".
	InvalidExpression = errs.Class("invalid expression")
)
