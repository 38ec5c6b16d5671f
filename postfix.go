package calc

import "strings"

// Postfix is an expression in reverse Polish notation. Every operator follows
// its two operands, so the sequence is evaluated front to back without any
// precedence rules.
type Postfix []Token

// String formats the sequence with single spaces between tokens, e.g.
// "3 4 2 * +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Depth returns the greatest operand stack depth reached while evaluating the
// sequence, and whether the sequence reduces to exactly one value.
func (p Postfix) Depth() (deepest int, ok bool) {
	d := 0
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			d++
			if d > deepest {
				deepest = d
			}
		case TokenOp:
			if d < 2 {
				return deepest, false
			}
			d--
		default:
			return deepest, false
		}
	}
	return deepest, d == 1
}
