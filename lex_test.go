package yard

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []rawToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []rawToken{{"0", 1}}, 0},
		{"9876543210", []rawToken{{"9876543210", 1}}, 0},
		{"1 0", []rawToken{{"1", 1}, {"0", 3}}, 0},
		{"1.0", []rawToken{{"1.0", 1}}, 0},
		{"-1", []rawToken{{"-", 1}, {"1", 2}}, 0},
		{"1e1", []rawToken{{"1e1", 1}}, 0},
		{"1e", []rawToken{{"", 1}}, 1},
		{"1e+1", []rawToken{{"1e+1", 1}}, 0},
		{"1e-1", []rawToken{{"1e-1", 1}}, 0},
		{"1.1.1", []rawToken{{"", 1}, {"1", 5}}, 1},
		{"1.0e1", []rawToken{{"1.0e1", 1}}, 0},
		{".", []rawToken{{"", 1}}, 1},
		{".1", []rawToken{{".1", 1}}, 0},
		{".1e1", []rawToken{{".1e1", 1}}, 0},
		{"1+0", []rawToken{{"1", 1}, {"+", 2}, {"0", 3}}, 0},
		{"1*0", []rawToken{{"1", 1}, {"*", 2}, {"0", 3}}, 0},
		{"3^-2", []rawToken{{"3", 1}, {"^", 2}, {"-", 3}, {"2", 4}}, 0},
		{"(1)", []rawToken{{"(", 1}, {"1", 2}, {")", 3}}, 0},
		{"1a", []rawToken{{"", 1}}, 1},
		// words
		{"inf", []rawToken{{"inf", 1}}, 0},
		{"x", []rawToken{{"x", 1}}, 0},
		{"_1234_", []rawToken{{"_1234_", 1}}, 0},
		{"π(", []rawToken{{"π", 1}, {"(", 2}}, 0},
		// operators
		{"+", []rawToken{{"+", 1}}, 0},
		{"++", []rawToken{{"+", 1}, {"+", 2}}, 0},
		{"1--2", []rawToken{{"1", 1}, {"-", 2}, {"-", 3}, {"2", 4}}, 0},
		{"2 / ( 1 )", []rawToken{{"2", 1}, {"/", 3}, {"(", 5}, {"1", 7}, {")", 9}}, 0},
		// erroneous symbols
		{"$", []rawToken{{"", 1}}, 1},
		{"a$", []rawToken{{"a", 1}, {"", 2}}, 1},
		{"$a", []rawToken{{"", 1}, {"a", 2}}, 1},
		{"0$", []rawToken{{"", 1}}, 1},
		{"$0", []rawToken{{"", 1}, {"0", 2}}, 1},
		{"$$", []rawToken{{"", 1}, {"", 2}}, 2},
		{"[1]", []rawToken{{"", 1}, {"", 2}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			if c.errs > 0 {
				c.errs--
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexEnd(t *testing.T) {
	scan := lex(strings.NewReader("1 + 22 "))
	for {
		if _, err := scan.next(); err != nil {
			break
		}
	}
	if got := scan.end(); got != 8 {
		t.Errorf("wrong end: want 8, got %d", got)
	}
}
