package yard

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultDelimiter is the pattern that separates tokens unless the Delimiter
// option is given.
const DefaultDelimiter = " "

var defaultDelim = regexp.MustCompile(DefaultDelimiter)

// Option is an option for compiling expressions.
type Option interface {
	compileOption(*compilecfg) error
}

type (
	delimopt string
	lexopt   struct{}
)

// compilecfg holds the settings for tokenizing an expression.
type compilecfg struct {
	// delim separates tokens when lex is false.
	delim *regexp.Regexp
	// lex selects the rune-level lexer instead of splitting on delim.
	lex bool
}

func newcfg(opts []Option) (*compilecfg, error) {
	cfg := compilecfg{delim: defaultDelim}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.compileOption(&cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Delimiter sets the regular expression which separates tokens. The pattern
// must not match the empty string. Empty tokens, e.g. from consecutive
// delimiters, are ignored, so Delimiter(`\s`) accepts any amount of whitespace
// between tokens.
func Delimiter(pattern string) Option {
	return delimopt(pattern)
}

func (o delimopt) compileOption(cfg *compilecfg) error {
	if string(o) == DefaultDelimiter {
		cfg.delim = defaultDelim
		return nil
	}
	re, err := regexp.Compile(string(o))
	if err != nil {
		return fmt.Errorf("yard: invalid delimiter %q: %w", string(o), err)
	}
	if re.MatchString("") {
		return fmt.Errorf("yard: invalid delimiter %q: %w", string(o), errEmptyDelim)
	}
	cfg.delim = re
	return nil
}

var errEmptyDelim = errors.New("matches empty string")

// Lex makes the compiler scan expressions rune by rune instead of splitting
// on a delimiter, so that "(5-4)/3^-2" is a valid expression. Whitespace
// between tokens is ignored. Lex overrides Delimiter.
func Lex() Option {
	return lexopt{}
}

func (lexopt) compileOption(cfg *compilecfg) error {
	cfg.lex = true
	return nil
}
