// Package quantity implements physical quantities with dimensional checking
// and a calculator for expressions over them.
//
// A Quantity is a float64 value with a dimensional signature mapping unit
// symbols to exponents. Multiplying, dividing, and raising quantities to
// powers combine their signatures; adding and subtracting require equal
// signatures and fail with a DimensionMismatch error otherwise.
//
// Expressions are written the way you'd write units in your notes. Unit
// symbols need no declaration: "2 meter * 3 meter" is 6 meter^2, and
// "kilogram*meter^2 second^-2" is a joule. Whitespace is ignored entirely, so
// two unit symbols need an operator or a bracket between them. Juxtaposition
// is multiplication binding tighter than * and /, so "1/2 second" is
// 0.5 second^-1. Exponentiation chains left to right: "2^3^2" is 64.
//
// Templates interleave expression text with values computed elsewhere:
//
//	force := quantity.Must(quantity.Evalf("%v * %v", mass, acceleration))
package quantity
