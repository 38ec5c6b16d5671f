// Package calc implements a calculator for simple infix arithmetic.
//
// An expression contains non-negative decimal numbers, the binary operators
// + - * /, and parentheses, with no whitespace. "2*(3+(4-1)*5)" is 36. There
// is no unary minus, so "-1" is an error, but "0-1" is not.
//
// Evaluation happens in three steps. Validate rejects malformed input,
// ToPostfix rewrites the expression in reverse Polish notation, and Evaluate
// reduces the postfix sequence on an operand stack. Division keeps a fixed
// number of decimal places, three by default, rounding half up.
//
// Compile does the first two steps once so that an expression can be
// evaluated many times. Every function in the package is safe for concurrent
// use, and so is a compiled *Expr.
package calc
