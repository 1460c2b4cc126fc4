package yard

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// TokenKind distinguishes operands from operators in a Program.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a numeric operand.
	TokenNum
	// TokenOp is an operator.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one instruction of a Program.
type Token struct {
	Kind TokenKind
	// Op is the operator for TokenOp tokens.
	Op Op
	// Value is the value of TokenNum tokens.
	Value float64
	// Text is the source text of the token.
	Text string
	// Col is the position of the token in the source.
	Col int
}

func (t Token) String() string {
	if t.Kind == TokenOp && t.Op == Neg {
		return "neg"
	}
	return t.Text
}

// Program is an expression compiled to postfix order. A Program is immutable
// and safe to evaluate concurrently.
type Program struct {
	code []Token
	// depth is the largest number of values on the stack during evaluation.
	depth int
}

// Tokens returns a copy of the program's tokens in evaluation order.
func (p *Program) Tokens() []Token {
	return append([]Token(nil), p.code...)
}

// String renders the program in postfix notation with tokens separated by
// spaces. Negation is written as neg.
func (p *Program) String() string {
	var b strings.Builder
	for i, t := range p.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// pending is an entry on the operator stack.
type pending struct {
	op   Op
	mark Marker
	tok  rawToken
}

// Compile converts an infix expression to a Program. The error, if any,
// implements InputError unless an option is invalid.
func Compile(src string, opts ...Option) (*Program, error) {
	cfg, err := newcfg(opts)
	if err != nil {
		return nil, err
	}
	return cfg.compile(src)
}

func (cfg *compilecfg) compile(src string) (*Program, error) {
	var scan scanner
	if cfg.lex {
		scan = lex(strings.NewReader(src))
	} else {
		scan = split(src, cfg.delim)
	}
	var (
		p     Program
		ops   []pending
		depth int
		pos   = exprPos
	)
	emit := func(e pending) error {
		k := int(e.op.Arity())
		if depth < k {
			return &UnderflowError{Col: e.tok.col, Op: e.op, Have: depth}
		}
		depth -= k - 1
		p.code = append(p.code, Token{Kind: TokenOp, Op: e.op, Text: e.tok.text, Col: e.tok.col})
		return nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		c, err := classify(tok, pos)
		if err != nil {
			return nil, err
		}
		pos = c.next()
		switch {
		case c.op != opNone:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.mark == Open || !pushesOut(c.op, top.op) {
					break
				}
				ops = ops[:len(ops)-1]
				if err := emit(top); err != nil {
					return nil, err
				}
			}
			ops = append(ops, pending{op: c.op, tok: tok})
		case c.mark == Open:
			ops = append(ops, pending{mark: Open, tok: tok})
		case c.mark == Close:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.col, Bracket: Close}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.mark == Open {
					break
				}
				if err := emit(top); err != nil {
					return nil, err
				}
			}
		default:
			depth++
			if depth > p.depth {
				p.depth = depth
			}
			p.code = append(p.code, Token{Kind: TokenNum, Value: c.num, Text: tok.text, Col: tok.col})
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.mark == Open {
			return nil, &BracketError{Col: top.tok.col, Bracket: Open}
		}
		if err := emit(top); err != nil {
			return nil, err
		}
	}
	if depth != 1 {
		return nil, &ResultError{Col: scan.end(), Count: depth}
	}
	return &p, nil
}
