package calc

import "strconv"

// ErrorKind distinguishes the causes of a FormatError.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// EmptyInput is an expression with no characters.
	EmptyInput
	// UnbalancedParentheses is a close parenthesis with no open one, or an
	// open parenthesis that is never closed.
	UnbalancedParentheses
	// MalformedExpression is an operator at the edge of the expression or
	// next to another operator or the inside of a parenthesis, an empty
	// group, or two operands with no operator between them.
	MalformedExpression
	// LiteralDivisionByZero is a literal 0 right after a / in the source.
	LiteralDivisionByZero
	// DivisionByZero is a divisor that evaluated to zero.
	DivisionByZero
	// InvalidCharacter is a character that is not a digit, decimal point,
	// operator, or parenthesis.
	InvalidCharacter
	// MalformedNumber is a numeric literal with more than one decimal point
	// or no digits.
	MalformedNumber
)

func (k ErrorKind) String() string {
	switch k {
	case kindNone:
		return "None"
	case EmptyInput:
		return "EmptyInput"
	case UnbalancedParentheses:
		return "UnbalancedParentheses"
	case MalformedExpression:
		return "MalformedExpression"
	case LiteralDivisionByZero:
		return "LiteralDivisionByZero"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidCharacter:
		return "InvalidCharacter"
	case MalformedNumber:
		return "MalformedNumber"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) message() string {
	switch k {
	case EmptyInput:
		return "input must not be empty"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case MalformedExpression:
		return "malformed expression"
	case LiteralDivisionByZero, DivisionByZero:
		return "division by zero"
	case InvalidCharacter:
		return "invalid character"
	case MalformedNumber:
		return "malformed number"
	default:
		return "invalid expression"
	}
}

// FormatError is an error indicating an expression that cannot be evaluated.
// It implements InputError.
type FormatError struct {
	// Kind is the cause of the error.
	Kind ErrorKind
	// Col is the column of the character or token that caused the error, or
	// 0 if the error is not at any particular position.
	Col int
	// Text is the offending text for InvalidCharacter and MalformedNumber
	// errors. It is empty for other kinds.
	Text string
}

func (err *FormatError) Error() string {
	msg := err.Kind.message()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *FormatError) Pos() int {
	return err.Col
}

// Is reports whether target is a *FormatError of the same kind. The position
// and text are ignored, so the Err variables work as sentinels with errors.Is.
func (err *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == err.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrEmptyInput            error = &FormatError{Kind: EmptyInput}
	ErrUnbalancedParentheses error = &FormatError{Kind: UnbalancedParentheses}
	ErrMalformedExpression   error = &FormatError{Kind: MalformedExpression}
	ErrLiteralDivisionByZero error = &FormatError{Kind: LiteralDivisionByZero}
	ErrDivisionByZero        error = &FormatError{Kind: DivisionByZero}
	ErrInvalidCharacter      error = &FormatError{Kind: InvalidCharacter}
	ErrMalformedNumber       error = &FormatError{Kind: MalformedNumber}
)

// StackError indicates a postfix sequence that does not reduce to exactly one
// value. Sequences produced by ToPostfix never cause it.
type StackError struct {
	// Op is the operator that found fewer than two operands, or the zero Token
	// if the whole sequence was consumed.
	Op Token
	// Depth is the number of values on the operand stack when the error was
	// detected.
	Depth int
}

func (err *StackError) Error() string {
	if err.Op.Kind == TokenNone {
		return "inconsistent stack: " + strconv.Itoa(err.Depth) + " values remain (bad postfix?)"
	}
	return errpos(err.Op.Pos, "stack underflow at operator "+strconv.Quote(err.Op.Text))
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// errat creates a FormatError for the character at byte index i.
func errat(kind ErrorKind, i int) *FormatError {
	return &FormatError{Kind: kind, Col: i + 1}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the character that caused the error, or 0 for
	// errors that concern the whole input.
	Pos() int
}

var _ InputError = (*FormatError)(nil)
