package quantity

// An expression is reduced in stages, one per precedence level:
//
//	1. bracketed subexpressions, recursively
//	2. ^
//	3. implicit multiplication of adjacent quantities, e.g. "2 meter"
//	4. * and /
//	5. + and -
//
// Within a stage, the leftmost operator is applied first, and then the stage
// rescans from the start. Hence "2^3^2" is (2^3)^2 = 64, unlike the usual
// right-associative exponentiation.

// stage is one precedence level of binary operators.
type stage map[string]func(a, b Operand) (Quantity, error)

var (
	powStage = stage{
		"^": func(a, b Operand) (Quantity, error) { return Pow(a, b), nil },
	}
	mulStage = stage{
		"*": func(a, b Operand) (Quantity, error) { return Mul(a, b), nil },
		"/": func(a, b Operand) (Quantity, error) { return Div(a, b), nil },
	}
	addStage = stage{
		"+": Add,
		"-": Sub,
	}
)

// reduce evaluates the tokens from start up to the first unmatched close
// bracket or the end of toks. It returns the result and the index at which it
// stopped. A missing close bracket is treated as being at the end.
func reduce(toks []lexToken, start int) (Quantity, int, error) {
	var work []lexToken
	i := start
	for ; i < len(toks); i++ {
		t := toks[i]
		if t.is(CloseBracket) {
			break
		}
		if t.is(OpenBracket) {
			q, end, err := reduce(toks, i+1)
			if err != nil {
				return Quantity{}, 0, err
			}
			work = append(work, valueToken(q))
			i = end
			continue
		}
		work = append(work, t)
	}
	// An unclosed bracket ends at len(toks), so skipping past it overshoots.
	i = min(i, len(toks))
	work, err := powStage.apply(work)
	if err != nil {
		return Quantity{}, 0, err
	}
	work = juxtapose(work)
	if work, err = mulStage.apply(work); err != nil {
		return Quantity{}, 0, err
	}
	if work, err = addStage.apply(work); err != nil {
		return Quantity{}, 0, err
	}
	switch {
	case len(work) == 0:
		return Quantity{}, 0, InvalidExpression.New("empty expression")
	case len(work) > 1:
		return Quantity{}, 0, InvalidExpression.New("unused tokens %v", work)
	case work[0].kind != tokenValue:
		return Quantity{}, 0, InvalidExpression.New("operator %q has no operands", work[0].text)
	}
	return work[0].q, i, nil
}

// apply repeatedly applies the leftmost operator of the stage until none
// remain. work is modified in place.
func (s stage) apply(work []lexToken) ([]lexToken, error) {
	for {
		i := s.find(work)
		if i < 0 {
			return work, nil
		}
		l, r := work[i-1], work[i+1]
		if l.kind != tokenValue || r.kind != tokenValue {
			return nil, InvalidExpression.New("operator %q needs a quantity on each side", work[i].text)
		}
		q, err := s[work[i].text](l.q, r.q)
		if err != nil {
			return nil, err
		}
		work[i-1] = valueToken(q)
		work = append(work[:i], work[i+2:]...)
	}
}

// find returns the index of the leftmost operator of the stage that is not at
// either end of work, or -1 if there is none. An operator at an end is left
// for reduce to reject.
func (s stage) find(work []lexToken) int {
	for i := 1; i < len(work)-1; i++ {
		if work[i].kind == tokenOp && s[work[i].text] != nil {
			return i
		}
	}
	return -1
}

// juxtapose multiplies each run of adjacent quantities into one.
func juxtapose(work []lexToken) []lexToken {
	r := make([]lexToken, 0, len(work))
	for _, t := range work {
		if n := len(r); n > 0 && t.kind == tokenValue && r[n-1].kind == tokenValue {
			r[n-1] = valueToken(Mul(r[n-1].q, t.q))
			continue
		}
		r = append(r, t)
	}
	return r
}
