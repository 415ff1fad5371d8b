package gochain

import (
	"strconv"
	"strings"
)

// Token is one opaque unit of rewritten text.
type Token string

// hole is the placeholder token consumed by Pop and the terminal consumers.
const hole Token = "$"

// Value is a token sequence holding one computed or literal result. Values
// render tightly joined; a value stored on the stack renders enclosed in a
// delimiter pair, a value substituted into a placeholder renders bare.
type Value []Token

func (v Value) String() string {
	var sb strings.Builder
	for _, tok := range v {
		sb.WriteString(string(tok))
	}
	return sb.String()
}

func (v Value) enclosed() string { return "(" + v.String() + ")" }

// Int reads the value as a single literal integer token.
func (v Value) Int() (int64, error) {
	if len(v) != 1 {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(string(v[0]), 10, 64)
}

func intValue(n int64) Value {
	return Value{Token(strconv.FormatInt(n, 10))}
}

// stack is an ordered sequence of values, front = most recently pushed.
// Mutation is by snapshot: push and pop return a new stack, so each chain
// step receives and forwards its own copy with no aliasing.
type stack []Value

func (s stack) push(v Value) stack {
	return append(stack{v}, s...)
}

func (s stack) pop(k int) ([]Value, stack, bool) {
	if k > len(s) {
		return nil, s, false
	}
	return s[:k], s[k:], true
}

func (s stack) String() string {
	var sb strings.Builder
	for _, v := range s {
		sb.WriteString(v.enclosed())
	}
	return sb.String()
}

// Term is one written argument position: a token sequence that may contain
// placeholder tokens awaiting substitution.
type Term []Token

// Hole is the bare placeholder term, as in Subtract(Hole, Hole).
var Hole = Term{hole}

// N builds a literal integer term.
func N(n int64) Term {
	return Term{Token(strconv.FormatInt(n, 10))}
}

// Lit builds a term from literal tokens.
func Lit(toks ...Token) Term {
	return Term(toks)
}

func (t Term) holes() (n int) {
	for _, tok := range t {
		if tok == hole {
			n++
		}
	}
	return n
}

// value reads the term as a ground value; fails if placeholders remain.
func (t Term) value() (Value, bool) {
	if t.holes() > 0 {
		return nil, false
	}
	return Value(t), true
}

func (t Term) String() string { return Value(t).String() }
