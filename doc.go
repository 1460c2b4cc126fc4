// Package yard implements a floating-point calculator for infix arithmetic
// expressions using the shunting-yard algorithm.
//
// Expressions are sequences of tokens separated by a delimiter, a single space
// by default: "( 5 - 4 ) / 3 ^ - 2". The operators are + - * / and ^, where ^
// is right-associative exponentiation. A - in a position where an operand is
// expected is negation, which binds tighter than any binary operator, so
// "- 2 ^ 2" is 4. The Lex option removes the need for delimiters.
//
// Compile converts an expression to a postfix Program once, which can then be
// evaluated any number of times, concurrently if desired, either with float64
// arithmetic or to arbitrary precision through a Context.
package yard
