package calc

import "strconv"

// priority gets the rank of an operator stack symbol. Higher binds tighter.
// Parentheses are matched structurally; their rank only ensures that no
// operator is ever popped past an open parenthesis. The end marker # is the
// lowest of all so that draining the stack always stops at it.
func priority(sym byte) int8 {
	switch sym {
	case '+', '-':
		return 0
	case '*', '/':
		return 1
	case '(', ')':
		return -1
	case '#':
		return -2
	default:
		panic("calc: no priority for " + strconv.QuoteRune(rune(sym)))
	}
}

// opent is an entry on the operator stack.
type opent struct {
	sym byte
	// pos is the column of the symbol, 0 for the end marker.
	pos int
}

func (o opent) token() Token {
	return Token{Text: opstr(o.sym), Kind: TokenOp, Pos: o.pos}
}

// ToPostfix converts an infix expression to reverse Polish notation. If src
// does not pass Validate, then the result is nil and the same error.
func ToPostfix(src string) (Postfix, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}
	return convert(src), nil
}

// convert is the shunting-yard conversion of a validated expression. Operators
// wait on ops until an operator of no higher rank or a close parenthesis
// forces them out. Numbers go straight to the output.
func convert(src string) Postfix {
	ops := make([]opent, 1, 8)
	ops[0] = opent{sym: '#'}
	out := make(Postfix, 0, len(src)/2+1)
	for i := 0; i < len(src); {
		c := src[i]
		switch classify(c) {
		case classOpen:
			ops = append(ops, opent{sym: c, pos: i + 1})
			i++
		case classClose:
			for ops[len(ops)-1].sym != '(' {
				out = append(out, ops[len(ops)-1].token())
				ops = ops[:len(ops)-1]
			}
			// Discard the (.
			ops = ops[:len(ops)-1]
			i++
		case classOp:
			// Operators of equal rank leave before the new one arrives, which
			// makes every operator left-associative.
			p := priority(c)
			for priority(ops[len(ops)-1].sym) >= p {
				out = append(out, ops[len(ops)-1].token())
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, opent{sym: c, pos: i + 1})
			i++
		case classNum:
			end, _ := scanNum(src, i)
			out = append(out, Token{Text: src[i:end], Kind: TokenNum, Pos: i + 1})
			i = end
		default:
			panic("calc: convert on unvalidated input " + strconv.Quote(src))
		}
	}
	for len(ops) > 1 {
		out = append(out, ops[len(ops)-1].token())
		ops = ops[:len(ops)-1]
	}
	return out
}
