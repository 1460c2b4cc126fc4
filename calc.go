package yard

// Calculator evaluates expressions with a fixed tokenizing configuration. It
// is safe for concurrent use.
type Calculator struct {
	cfg *compilecfg
}

// New creates a calculator which splits expressions on the delimiter pattern.
// Further options are applied after the delimiter, so Lex overrides it.
func New(delimiter string, opts ...Option) (*Calculator, error) {
	cfg, err := newcfg(append([]Option{Delimiter(delimiter)}, opts...))
	if err != nil {
		return nil, err
	}
	return &Calculator{cfg: cfg}, nil
}

// Compile converts an infix expression to a Program.
func (c *Calculator) Compile(src string) (*Program, error) {
	return c.cfg.compile(src)
}

// Evaluate compiles an expression and evaluates it with float64 arithmetic.
func (c *Calculator) Evaluate(src string) (float64, error) {
	p, err := c.cfg.compile(src)
	if err != nil {
		return 0, err
	}
	return p.Eval(), nil
}
