package calc

import "unicode/utf8"

// Validate checks that src is a well-formed expression. If it is not, the
// result is a *FormatError describing the first problem found scanning left
// to right.
//
// A literal 0 immediately following a / is rejected as a division by zero,
// ignoring any parentheses between them, so "1/(0+2)" fails but "1/(2-2)"
// passes here and fails during evaluation instead.
func Validate(src string) error {
	if len(src) == 0 {
		return &FormatError{Kind: EmptyInput}
	}
	// opens holds the indices of open parentheses not yet closed.
	var opens []int
	// last is the most recent character that is not a parenthesis or 0.
	var last byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch classify(c) {
		case classOpen:
			if i > 0 {
				// An operand or group right before ( would be an implicit
				// multiplication.
				if p := classify(src[i-1]); p == classNum || p == classClose {
					return errat(MalformedExpression, i)
				}
			}
			opens = append(opens, i)
		case classClose:
			if len(opens) == 0 {
				return errat(UnbalancedParentheses, i)
			}
			if src[i-1] == '(' {
				return errat(MalformedExpression, i)
			}
			opens = opens[:len(opens)-1]
		case classOp:
			if i == 0 || i == len(src)-1 {
				return errat(MalformedExpression, i)
			}
			if p := classify(src[i-1]); p == classOp || p == classOpen {
				return errat(MalformedExpression, i)
			}
			if n := classify(src[i+1]); n == classOp || n == classClose {
				return errat(MalformedExpression, i)
			}
			last = c
		case classNum:
			if c == '0' && last == '/' {
				return errat(LiteralDivisionByZero, i)
			}
			if i > 0 && src[i-1] == ')' {
				return errat(MalformedExpression, i)
			}
			if i == 0 || classify(src[i-1]) != classNum {
				if end, ok := scanNum(src, i); !ok {
					return &FormatError{Kind: MalformedNumber, Col: i + 1, Text: src[i:end]}
				}
			}
			if c != '0' {
				last = c
			}
		default:
			r, _ := utf8.DecodeRuneInString(src[i:])
			// All characters before i are ASCII, so the byte index is also
			// the rune index.
			return &FormatError{Kind: InvalidCharacter, Col: i + 1, Text: string(r)}
		}
	}
	if len(opens) > 0 {
		return errat(UnbalancedParentheses, opens[0])
	}
	return nil
}
