package quantity

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	kind tokenKind
	// text is the rune of an operator token.
	text string
	// q is the quantity of a value token.
	q Quantity
}

func (t lexToken) String() string {
	if t.kind == tokenValue {
		return t.kind.String() + ":" + t.q.String()
	}
	return t.kind.String() + ":" + t.text
}

// is returns whether t is the operator op.
func (t lexToken) is(op string) bool {
	return t.kind == tokenOp && t.text == op
}

func valueToken(q Quantity) lexToken {
	return lexToken{kind: tokenValue, q: q}
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenOp is an operator or bracket. Runes that are neither are also
	// scanned as tokenOp; the evaluator rejects them.
	tokenOp
	// tokenValue is a number, a unit symbol, or an interpolated quantity.
	tokenValue
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenOp:
		return "Op"
	case tokenValue:
		return "Value"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OpenBracket and CloseBracket group subexpressions.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

type lexer struct {
	// src is the unscanned remainder of the segment.
	src  string
	toks []lexToken
}

// lex scans a literal segment into tokens. Whitespace is removed from the
// segment before scanning, so "2 meter" and "2meter" are the same. Scanning
// never fails.
func lex(segment string) []lexToken {
	l := lexer{src: strings.Map(dropSpace, segment)}
	for l.src != "" {
		l.next()
	}
	return l.toks
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}

// next scans one token.
func (l *lexer) next() {
	if n := l.scanNum(); n > 0 {
		l.emit(valueToken(Quantity{value: parseNum(l.src[:n])}), n)
		return
	}
	r, sz := utf8.DecodeRuneInString(l.src)
	if isWord(r) {
		n := l.scanIdent()
		l.emit(valueToken(Unit(l.src[:n])), n)
		return
	}
	l.emit(lexToken{kind: tokenOp, text: l.src[:sz]}, sz)
}

func (l *lexer) emit(tok lexToken, n int) {
	l.toks = append(l.toks, tok)
	l.src = l.src[n:]
}

// signed returns whether a minus sign at this point belongs to a number
// rather than being subtraction. That is the case at the start of the segment
// or after an operator other than a close bracket.
func (l *lexer) signed() bool {
	if len(l.toks) == 0 {
		return true
	}
	p := l.toks[len(l.toks)-1]
	return p.kind == tokenOp && p.text != CloseBracket
}

// scanNum returns the length of the numeric literal at the start of the
// input, or 0 if there is none. A literal is a run of digits and dots with an
// optional leading minus sign.
func (l *lexer) scanNum() int {
	i := 0
	if strings.HasPrefix(l.src, "-") && l.signed() {
		i = 1
	}
	j := i
	for j < len(l.src) && (l.src[j] == '.' || '0' <= l.src[j] && l.src[j] <= '9') {
		j++
	}
	if j == i {
		return 0
	}
	return j
}

// scanIdent returns the length of the run of word runes at the start of the
// input.
func (l *lexer) scanIdent() int {
	for i, r := range l.src {
		if !isWord(r) {
			return i
		}
	}
	return len(l.src)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parseNum parses a numeric literal as scanned by scanNum. Parsing is lenient:
// anything from a second dot onward is ignored, so "1.5.2" is 1.5, and a
// literal with no digits such as "." is NaN. Literals too large for a float64
// are infinite.
func parseNum(s string) float64 {
	if k := strings.IndexByte(s, '.'); k >= 0 {
		if m := strings.IndexByte(s[k+1:], '.'); m >= 0 {
			s = s[:k+1+m]
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
