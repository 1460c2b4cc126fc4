package yard

import "strconv"

// Eval evaluates the program with float64 arithmetic. Division by zero and
// other invalid operations follow IEEE 754, producing infinities and NaNs
// rather than errors. Panics if p was not created by Compile.
func (p *Program) Eval() float64 {
	stack := make([]float64, 0, p.depth)
	for _, t := range p.code {
		switch t.Kind {
		case TokenNum:
			stack = append(stack, t.Value)
		case TokenOp:
			if len(stack) < int(t.Op.Arity()) {
				panic("yard: stack underflow at " + strconv.Itoa(t.Col) + " (bad program?)")
			}
			stack = t.Op.apply(stack)
		default:
			panic("yard: invalid token kind " + t.Kind.String())
		}
	}
	if len(stack) != 1 {
		panic("yard: inconsistent stack: " + strconv.Itoa(len(stack)) + " items (bad program?)")
	}
	return stack[0]
}

// Evaluate is a shortcut to compile an expression and evaluate it with
// float64 arithmetic.
func Evaluate(src string, opts ...Option) (float64, error) {
	p, err := Compile(src, opts...)
	if err != nil {
		return 0, err
	}
	return p.Eval(), nil
}
