/* Package gochain evaluates chains: flat sequences of operations threaded
through a value stack, in the style of a single-pass textual rewriting engine.

A chain is written left to right with no nesting. Each operation computes a
result and pushes it onto the front of the stack; Pop moves the front values
into the `$` placeholders of the operation that follows, restoring the
original authoring order; Unwrap, Print and Tokenize end a chain by folding
the front value into a template and discarding the rest; a chain that ends
without one of those flushes the remaining stack as a sequence of
parenthesized values, most recent first.

	Add(5,6) Add(40,80) Pop(2) Subtract($,$)    expands to    (-109)

Arithmetic is bounded and table-driven: Add, Subtract, Negate, Log2 and Pow2
resolve against tables generated for a configured range tier, never by
iteration. Adding a negative second operand canonicalizes to subtraction (and
vice versa), so the tables only carry one quadrant of sign combinations.
Operands the tables do not cover surface as a RangeError; protocol misuse --
pop arity mismatches, unfilled placeholders, operations after a terminal --
surfaces as a MalformedChainError.

Chains can be built programmatically,

	eng := gochain.New()
	res, err := eng.Expand(
		gochain.Add(gochain.N(5), gochain.N(6)),
		gochain.Add(gochain.N(40), gochain.N(80)),
		gochain.Pop(2),
		gochain.Subtract(gochain.Hole, gochain.Hole),
	)

or parsed from text with ExpandText / ParseChain.
*/
package gochain
