package calc

import (
	"errors"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultPlaces is the number of decimal places division keeps unless the
// Places option says otherwise.
const DefaultPlaces = 3

// MaxPlaces is the most decimal places division can keep. Larger values given
// to Places are reduced to it.
const MaxPlaces = 1000

// Option is an option used when evaluating an expression.
type Option interface {
	evalOption()
}

type placesopt uint

func (placesopt) evalOption() {}

// Places sets the number of fractional decimal digits kept by each division.
// The quotient is rounded half up, i.e. ties round away from zero. n is at
// most MaxPlaces.
func Places(n uint) Option {
	if n > MaxPlaces {
		n = MaxPlaces
	}
	return placesopt(n)
}

// config holds the settings for one evaluation.
type config struct {
	scale *big.Int
}

// defaultScale is 10^DefaultPlaces. It is never modified.
var defaultScale = big.NewInt(1000)

func newConfig(opts []Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case placesopt:
			cfg.scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(opt)), nil)
		default:
			panic("calc: unknown option type")
		}
	}
	return cfg
}

// Expr is a validated expression converted to postfix form. An Expr is
// immutable and safe for concurrent use.
type Expr struct {
	src string
	p   Postfix
}

// Compile validates an expression and converts it to postfix form so that it
// can be evaluated any number of times.
func Compile(src string) (*Expr, error) {
	p, err := ToPostfix(src)
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, p: p}, nil
}

// Eval evaluates the expression. The only error possible is a
// *FormatError with kind DivisionByZero.
func (e *Expr) Eval(opts ...Option) (float64, error) {
	return Evaluate(e.p, opts...)
}

// Postfix returns a copy of the expression's postfix token sequence.
func (e *Expr) Postfix() Postfix {
	return append(Postfix(nil), e.p...)
}

// Source returns the text the expression was compiled from.
func (e *Expr) Source() string {
	return e.src
}

// String returns the expression in reverse Polish notation.
func (e *Expr) String() string {
	return e.p.String()
}

// Evaluate computes the value of a postfix sequence. An operator takes the
// most recent value on the operand stack as its right operand and the one
// before it as its left operand.
//
// A divisor equal to zero gives a *FormatError with kind DivisionByZero. A
// sequence that does not reduce to exactly one value gives a *StackError.
func Evaluate(p Postfix, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	depth, _ := p.Depth()
	stack := make([]float64, 0, depth)
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// Out of range literals are infinite. Anything else was not
				// produced by ToPostfix.
				return 0, &FormatError{Kind: MalformedNumber, Col: tok.Pos, Text: tok.Text}
			}
			stack = append(stack, v)
		case TokenOp:
			if len(stack) < 2 {
				return 0, &StackError{Op: tok, Depth: len(stack)}
			}
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := cfg.apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)
		default:
			return 0, &StackError{Op: tok, Depth: len(stack)}
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Depth: len(stack)}
	}
	return stack[0], nil
}

// apply computes b op a, where a was popped first.
func (cfg config) apply(op Token, a, b float64) (float64, error) {
	switch op.Text {
	case "+":
		return a + b, nil
	case "-":
		return b - a, nil
	case "*":
		return a * b, nil
	case "/":
		if a == 0 {
			return 0, &FormatError{Kind: DivisionByZero, Col: op.Pos}
		}
		return quo(b, a, cfg.scale), nil
	default:
		return 0, &FormatError{Kind: MalformedExpression, Col: op.Pos}
	}
}

// quo computes x/y rounded half up to a multiple of 1/scale. The operands'
// exact binary values are used, so the only rounding is the final one to
// scale and then to the nearest float64.
func quo(x, y float64, scale *big.Int) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return x / y
	}
	var q big.Rat
	q.SetFloat64(x)
	q.Quo(&q, new(big.Rat).SetFloat64(y))
	// n/d is the quotient scaled up by scale. Rounding half up is
	// floor((2|n| + d) / 2d), with the sign restored after.
	n := new(big.Int).Mul(q.Num(), scale)
	d := q.Denom()
	neg := n.Sign() < 0
	n.Abs(n)
	n.Lsh(n, 1)
	n.Add(n, d)
	n.Quo(n, new(big.Int).Lsh(d, 1))
	if neg {
		n.Neg(n)
	}
	r, _ := new(big.Rat).SetFrac(n, scale).Float64()
	return r
}

// EvalString validates, converts, and evaluates an expression. Every error
// is a *FormatError.
func EvalString(src string, opts ...Option) (float64, error) {
	e, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(opts...)
}

// Eval reads an entire expression from src and evaluates it. Errors from src
// other than io.EOF are returned as they are.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		b.WriteRune(r)
	}
	return EvalString(b.String(), opts...)
}
