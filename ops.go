package yard

import (
	"errors"
	"math"
	"strconv"
)

// Op is an arithmetic operator.
type Op int8

const (
	opNone Op = iota

	Add // left + right
	Sub // left - right
	Mul // left * right
	Div // left / right
	Pow // left ^ right
	Neg // -arg
)

// Assoc is the associativity of an operator.
type Assoc int8

const (
	Left Assoc = iota
	Right
)

// Arity is the number of operands an operator consumes.
type Arity int8

const (
	Unary  Arity = 1
	Binary Arity = 2
)

type opinfo struct {
	sym   string
	prec  int8
	assoc Assoc
	arity Arity
}

var optab = [...]opinfo{
	opNone: {"?", 0, Left, 0},
	Add:    {"+", 2, Left, Binary},
	Sub:    {"-", 2, Left, Binary},
	Mul:    {"*", 3, Left, Binary},
	Div:    {"/", 3, Left, Binary},
	Pow:    {"^", 4, Right, Binary},
	Neg:    {"-", 5, Right, Unary},
}

// Symbol returns the text of the operator. Sub and Neg share a symbol.
func (op Op) Symbol() string {
	return op.info().sym
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter.
func (op Op) Precedence() int {
	return int(op.info().prec)
}

// Assoc returns the operator's associativity.
func (op Op) Assoc() Assoc {
	return op.info().assoc
}

// Arity returns the number of operands the operator consumes.
func (op Op) Arity() Arity {
	return op.info().arity
}

func (op Op) info() opinfo {
	if op <= opNone || int(op) >= len(optab) {
		panic("yard: invalid operator " + strconv.Itoa(int(op)))
	}
	return optab[op]
}

// String returns the operator's name. Use Symbol for its text.
func (op Op) String() string {
	switch op {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Pow:
		return "Pow"
	case Neg:
		return "Neg"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Marker is a grouping bracket. Markers direct the conversion to postfix but
// are never part of a Program.
type Marker int8

const (
	markNone Marker = iota
	Open
	Close
)

// Precedence returns the precedence the marker carries in the operator table.
// The values are informational: Compile handles brackets structurally, never
// popping an open bracket for an operator and popping every operator back to
// the open bracket on a close bracket.
func (m Marker) Precedence() int {
	switch m {
	case Open:
		return 6
	case Close:
		return 1
	default:
		panic("yard: invalid marker " + strconv.Itoa(int(m)))
	}
}

// Symbol returns the text of the marker.
func (m Marker) Symbol() string {
	switch m {
	case Open:
		return "("
	case Close:
		return ")"
	default:
		panic("yard: invalid marker " + strconv.Itoa(int(m)))
	}
}

// position is the state of the classifier: what kind of token may come next.
type position int8

const (
	// exprPos expects an operand, a unary operator, or an open bracket. It is
	// the state at the start of input, after an operator, and after an open
	// bracket.
	exprPos position = iota
	// operPos expects a binary operator or a close bracket. It is the state
	// after an operand or a close bracket.
	operPos
)

// classified is a raw token resolved against the operator table.
type classified struct {
	op   Op
	mark Marker
	num  float64
}

// classify resolves a raw token in the given position. The error, if any, is
// a *TokenError.
func classify(tok rawToken, pos position) (classified, error) {
	switch pos {
	case exprPos:
		switch tok.text {
		case "-":
			return classified{op: Neg}, nil
		case "(":
			return classified{mark: Open}, nil
		}
	case operPos:
		switch tok.text {
		case "+":
			return classified{op: Add}, nil
		case "-":
			return classified{op: Sub}, nil
		case "*":
			return classified{op: Mul}, nil
		case "/":
			return classified{op: Div}, nil
		case "^":
			return classified{op: Pow}, nil
		case ")":
			return classified{mark: Close}, nil
		}
		// A number here is still an operand. The converter reports the
		// missing operator as an operand count problem.
	}
	f, err := parsenum(tok.text)
	if err != nil {
		return classified{}, &TokenError{Col: tok.col, Text: tok.text, Operand: pos == exprPos}
	}
	return classified{num: f}, nil
}

// next gives the classifier state following a classified token.
func (c classified) next() position {
	switch {
	case c.op != opNone, c.mark == Open:
		return exprPos
	default:
		return operPos
	}
}

// parsenum parses a numeric literal. Literals too large or too small for a
// float64 become infinities or zeros.
func parsenum(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// pushesOut reports whether top, the operator on top of the operator stack,
// must be emitted before cur is pushed.
func pushesOut(cur, top Op) bool {
	c, t := cur.info(), top.info()
	if c.assoc == Left {
		return c.prec <= t.prec
	}
	return c.prec < t.prec
}

// apply executes an operator on a float64 stack, returning the new stack.
// The stack must hold at least as many values as the operator's arity.
func (op Op) apply(stack []float64) []float64 {
	if op == Neg {
		stack[len(stack)-1] = -stack[len(stack)-1]
		return stack
	}
	r := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	l := &stack[len(stack)-1]
	switch op {
	case Add:
		*l += r
	case Sub:
		*l -= r
	case Mul:
		*l *= r
	case Div:
		*l /= r
	case Pow:
		*l = math.Pow(*l, r)
	default:
		panic("yard: apply with invalid operator " + op.String())
	}
	return stack
}
