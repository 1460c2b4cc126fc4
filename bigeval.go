package yard

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating programs to arbitrary precision. It is
// not safe to use a Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate a program.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	// Loop backward so we apply the last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Parsed numbers are only reusable at the precision they were parsed at.
	if n.prec == ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = v
		}
	}
	return &n
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates a program and returns the result. If an operation has no real
// result, e.g. 0/0, then the result is nil and ctx.Err returns a *DomainError.
// Unlike Program.Eval, x/0 for nonzero x is still an infinity.
func (ctx *Context) Eval(p *Program) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		// Don't clobber the previous result.
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("yard: Eval during Eval")
	}
	ctx.err = nil
	for _, t := range p.code {
		var err error
		switch t.Kind {
		case TokenNum:
			var v *big.Float
			v, err = ctx.num(t)
			if err == nil {
				ctx.push().Set(v)
			}
		case TokenOp:
			if len(ctx.stack) < int(t.Op.Arity()) {
				panic("yard: stack underflow at " + strconv.Itoa(t.Col) + " (bad program?)")
			}
			err = ctx.apply(t)
		default:
			panic("yard: invalid token kind " + t.Kind.String())
		}
		if err != nil {
			ctx.err = err
			ctx.stack = ctx.stack[:0]
			return nil
		}
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating a program. Panics if ctx
// has not been used to evaluate a program. Returns nil if an error occurred
// during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("yard: Context.Result called before evaluating any program")
	case 1:
		return ctx.stack[0]
	default:
		panic("yard: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad program?)")
	}
}

// Err returns the error that occurred during the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future pushes.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from an operand's source text.
func (ctx *Context) num(t Token) (*big.Float, error) {
	if r := ctx.nums[t.Text]; r != nil {
		return r, nil
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(t.Text, 0)
	if err != nil {
		// The text was valid for strconv, so fall back to its value.
		switch {
		case math.IsNaN(t.Value):
			return nil, &DomainError{Col: t.Col, Op: t.Text}
		case math.IsInf(t.Value, 0):
			r = new(big.Float).SetPrec(ctx.prec).SetInf(t.Value < 0)
		default:
			r = new(big.Float).SetPrec(ctx.prec).SetFloat64(t.Value)
		}
	}
	ctx.nums[t.Text] = r
	return r, nil
}

// apply executes an operator on the stack.
func (ctx *Context) apply(t Token) error {
	if t.Op == Neg {
		v := ctx.top()
		v.Neg(v)
		return nil
	}
	r := ctx.pop()
	l := ctx.top()
	undefined := false
	switch t.Op {
	case Add:
		undefined = l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit()
	case Sub:
		undefined = l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit()
	case Mul:
		undefined = l.IsInf() && r.Sign() == 0 || r.IsInf() && l.Sign() == 0
	case Div:
		undefined = l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf()
	case Pow:
		// Only negative bases can fail, and only with a fractional exponent.
		undefined = l.Sign() < 0 && !r.IsInf() && !r.IsInt()
	default:
		panic("yard: apply with invalid operator " + t.Op.String())
	}
	if undefined {
		return &DomainError{
			Col: t.Col,
			Op:  t.Op.Symbol(),
			X:   new(big.Float).Copy(l),
			Y:   new(big.Float).Copy(r),
		}
	}
	switch t.Op {
	case Add:
		l.Add(l, r)
	case Sub:
		l.Sub(l, r)
	case Mul:
		l.Mul(l, r)
	case Div:
		l.Quo(l, r)
	case Pow:
		pow(l, l, r)
	}
	return nil
}

// pow sets z to x^y, which must be real, and returns z. The special cases
// match math.Pow. z may alias x but not y.
func pow(z, x, y *big.Float) *big.Float {
	switch {
	case y.Sign() == 0:
		return z.SetInt64(1)
	case x.Sign() == 0:
		// The sign of a zero base survives only odd integer powers.
		neg := x.Signbit() && oddint(y)
		if y.Sign() > 0 {
			z.SetInt64(0)
			if neg {
				z.Neg(z)
			}
			return z
		}
		return z.SetInf(neg)
	case y.IsInf():
		one := new(big.Float).SetInt64(1)
		switch new(big.Float).Abs(x).Cmp(one) {
		case 0:
			return z.SetInt64(1)
		case 1:
			if y.Sign() > 0 {
				return z.SetInf(false)
			}
			return z.SetInt64(0)
		default:
			if y.Sign() > 0 {
				return z.SetInt64(0)
			}
			return z.SetInf(false)
		}
	}
	// y is an integer if x is negative, or else the caller would have
	// reported a domain error. The sign of the result is the parity of y.
	neg := x.Sign() < 0 && oddint(y)
	z.Abs(x)
	if z.IsInf() {
		if y.Sign() > 0 {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
	} else {
		// Pow may return a different value than its destination, e.g. when
		// the result is outside the range of a float64.
		z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), z, y))
	}
	if neg {
		z.Neg(z)
	}
	return z
}

// oddint reports whether y is an odd integer.
func oddint(y *big.Float) bool {
	if y.IsInf() || !y.IsInt() {
		return false
	}
	n, _ := y.Int(nil)
	return n.Bit(0) == 1
}
