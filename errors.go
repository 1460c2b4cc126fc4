package yard

import (
	"math/big"
	"strconv"
)

// TokenError is an error indicating a token that is neither a known operator
// in its position nor a number. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
	// Operand is whether an operand was expected at the time.
	Operand bool
}

func (err *TokenError) Error() string {
	if err.Operand {
		return errpos(err.Col, "expected operand, got "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// UnderflowError is an error indicating an operator without enough operands.
// It implements InputError.
type UnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Op
	// Have is the number of operands that were available.
	Have int
}

func (err *UnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op.Symbol())+" needs "+strconv.Itoa(int(err.Op.Arity()))+" operands, have "+strconv.Itoa(err.Have))
}

func (err *UnderflowError) Pos() int {
	return err.Col
}

// ResultError is an error indicating an expression that does not reduce to
// exactly one value, e.g. an empty expression or two operands with no
// operator between them. It implements InputError.
type ResultError struct {
	// Col is the position of the end of the input.
	Col int
	// Count is the number of values the expression leaves.
	Count int
}

func (err *ResultError) Error() string {
	if err.Count == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Count)+" values")
}

func (err *ResultError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched bracket. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Bracket is the unmatched bracket, ( or ).
	Bracket Marker
}

func (err *BracketError) Error() string {
	if err.Bracket == Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// DomainError is an error from the arbitrary-precision evaluator for an
// operation that has no real result, e.g. 0/0 or (-8)^(1/3).
type DomainError struct {
	// Col is the position of the operator or operand.
	Col int
	// Op is the text of the operator, or of the operand if it is not a real
	// number.
	Op string
	// X is the left operand, if any.
	X *big.Float
	// Y is the right operand, if any.
	Y *big.Float
}

func (err *DomainError) Error() string {
	switch {
	case err.X == nil:
		return errpos(err.Col, strconv.Quote(err.Op)+" is not a real number")
	case err.Y == nil:
		return errpos(err.Col, err.X.String()+" outside domain of "+err.Op)
	default:
		return errpos(err.Col, err.X.String()+" "+err.Op+" "+err.Y.String()+" is undefined")
	}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*UnderflowError)(nil)
	_ InputError = (*ResultError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*LexError)(nil)
)
