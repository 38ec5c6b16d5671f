package calc_test

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

// refParser is a recursive descent evaluator for the same language, used as an
// independent check on the postfix pipeline. Arithmetic is done in the same
// order with the same float64 operations, so results match exactly.
//
//	expr   = term { ('+' | '-') term }
//	term   = factor { ('*' | '/') factor }
//	factor = number | '(' expr ')'
type refParser struct {
	src string
	pos int
}

var errRefDivZero = errors.New("reference: division by zero")

func refEval(src string) (float64, error) {
	p := &refParser{src: src}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, errors.New("reference: trailing input at " + strconv.Itoa(p.pos))
	}
	return v, nil
}

func (p *refParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *refParser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *refParser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= r
		case '/':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, errRefDivZero
			}
			v = refQuo(v, r)
		default:
			return v, nil
		}
	}
}

func (p *refParser) factor() (float64, error) {
	if p.peek() == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, errors.New("reference: missing ) at " + strconv.Itoa(p.pos))
		}
		p.pos++
		return v, nil
	}
	start := p.pos
	for c := p.peek(); c == '.' || '0' <= c && c <= '9'; c = p.peek() {
		p.pos++
	}
	return strconv.ParseFloat(p.src[start:p.pos], 64)
}

// refQuo divides exactly and rounds half up to three places using big.Rat
// comparison rather than integer arithmetic.
func refQuo(x, y float64) float64 {
	q := new(big.Rat).Quo(new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y))
	neg := q.Sign() < 0
	q.Abs(q)
	q.Mul(q, big.NewRat(1000, 1))
	whole := new(big.Int).Quo(q.Num(), q.Denom())
	frac := new(big.Rat).Sub(q, new(big.Rat).SetInt(whole))
	if frac.Cmp(big.NewRat(1, 2)) >= 0 {
		whole.Add(whole, big.NewInt(1))
	}
	if neg {
		whole.Neg(whole)
	}
	r, _ := new(big.Rat).SetFrac(whole, big.NewInt(1000)).Float64()
	return r
}

// genExpr generates a random valid expression. Literals never contain the
// digit 0, so the validator never rejects a divisor.
func genExpr(rng *rand.Rand, depth int) string {
	if depth == 0 || rng.Intn(4) == 0 {
		s := strconv.Itoa(rng.Intn(9) + 1)
		if rng.Intn(4) == 0 {
			s += "." + strconv.Itoa(rng.Intn(9)+1)
		}
		return s
	}
	var b strings.Builder
	paren := rng.Intn(3) == 0
	if paren {
		b.WriteByte('(')
	}
	b.WriteString(genExpr(rng, depth-1))
	b.WriteByte(calc.Operators[rng.Intn(len(calc.Operators))])
	b.WriteString(genExpr(rng, depth-1))
	if paren {
		b.WriteByte(')')
	}
	return b.String()
}

func TestReference(t *testing.T) {
	cases := []string{"3+4*2", "(3+4)*2", "10/4", "10/3", "2*(3+(4-1)*5)", "1-2-3", "64/4/2/2", "5/(2-2)"}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		cases = append(cases, genExpr(rng, 5))
	}
	for _, src := range cases {
		want, werr := refEval(src)
		got, err := calc.EvalString(src)
		if werr != nil {
			if !errors.Is(werr, errRefDivZero) {
				t.Fatalf("reference failed on %q: %v", src, werr)
			}
			if !errors.Is(err, calc.ErrDivisionByZero) {
				t.Errorf("%q: want division by zero, got %g, %v", src, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: want %g, got error %v", src, want, err)
			continue
		}
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("%q: reference gives %g, got %g", src, want, got)
		}
	}
}

func TestRefQuo(t *testing.T) {
	cases := []struct {
		x, y, r float64
	}{
		{10, 3, 3.333},
		{2, 3, 0.667},
		{1, 16, 0.063},
		{-1, 16, -0.063},
		{10, 4, 2.5},
	}
	for _, c := range cases {
		if r := refQuo(c.x, c.y); r != c.r {
			t.Errorf("refQuo(%g, %g): want %g, got %g", c.x, c.y, c.r, r)
		}
	}
}
