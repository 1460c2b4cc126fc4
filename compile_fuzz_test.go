//go:build go1.18
// +build go1.18

package yard_test

import (
	"testing"

	"github.com/zephyrtronium/yard"
)

func FuzzCompile(f *testing.F) {
	f.Add("1")
	f.Add("( 5 - 4 ) / 3 ^ - 2 + 1 * 10")
	f.Add("- - ( 1")
	f.Fuzz(func(t *testing.T, s string) {
		// Any program that compiles must evaluate without panicking.
		if p, err := yard.Compile(s); err == nil {
			p.Eval()
			yard.NewContext().Eval(p)
		}
		if p, err := yard.Compile(s, yard.Lex()); err == nil {
			p.Eval()
			yard.NewContext().Eval(p)
		}
	})
}
