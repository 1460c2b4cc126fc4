package yard_test

import (
	"fmt"

	"github.com/zephyrtronium/yard"
)

func ExampleEvaluate() {
	fmt.Println(yard.Evaluate("( 2 + 3 ) * 4"))
	fmt.Println(yard.Evaluate("2 + 3 * 4"))
	fmt.Println(yard.Evaluate("(2+3)*4", yard.Lex()))
	fmt.Println(yard.Evaluate("5 +"))

	// Output:
	// 20 <nil>
	// 14 <nil>
	// 20 <nil>
	// 0 3: operator "+" needs 2 operands, have 1
}

func ExampleCompile() {
	p, err := yard.Compile("( 5 - 4 ) / 3 ^ - 2 + 1 * 10")
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	fmt.Printf("%.6g\n", p.Eval())

	// Output:
	// 5 4 - 3 2 neg ^ / 1 10 * +
	// 19
}

func ExampleContext() {
	p, err := yard.Compile("1 / 3")
	if err != nil {
		panic(err)
	}
	ctx := yard.NewContext(yard.Prec(128))
	fmt.Printf("%.30f\n", ctx.Eval(p))

	// Output:
	// 0.333333333333333333333333333333
}
