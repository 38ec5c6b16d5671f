package calc

import (
	"strconv"
)

// Token is a single lexical token of an expression: a numeric literal or an
// operator.
type Token struct {
	// Text is the token's source text.
	Text string
	// Kind is the type of the token.
	Kind TokenKind
	// Pos is the column of the token's first character. Columns begin at 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal, a run of digits and decimal points.
	TokenNum
	// TokenOp is one of the binary operators.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are binary operators.
const Operators = "+-*/"

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

// opstr returns the interned token text for an operator byte.
func opstr(c byte) string {
	switch c {
	case '+':
		return operstrs[0]
	case '-':
		return operstrs[1]
	case '*':
		return operstrs[2]
	case '/':
		return operstrs[3]
	default:
		panic("calc: not an operator: " + strconv.QuoteRune(rune(c)))
	}
}

// charClass is the role a single input character plays.
type charClass int8

const (
	classInvalid charClass = iota
	classOpen
	classClose
	classOp
	// classNum is a digit or a decimal point.
	classNum
)

func classify(c byte) charClass {
	switch c {
	case '(':
		return classOpen
	case ')':
		return classClose
	case '+', '-', '*', '/':
		return classOp
	case '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return classNum
	default:
		return classInvalid
	}
}

// scanNum finds the end of the numeric literal starting at src[i]. The literal
// is the longest run of digits and decimal points. ok is false if the run has
// more than one decimal point or no digits.
func scanNum(src string, i int) (end int, ok bool) {
	var dig, dot, bad bool
	for ; i < len(src); i++ {
		switch c := src[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.':
			if dot {
				bad = true
			}
			dot = true
		default:
			return i, dig && !bad
		}
	}
	return i, dig && !bad
}
