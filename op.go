package gochain

import "strings"

// There are two kinds of chain operations: compute operations, which resolve
// a result and push it, and protocol operations (Push, Pop, the terminal
// consumers), which manipulate the threaded stack itself. In the rewriting
// original each name carried two bodies -- a direct one and a chained
// continuation form -- selected by call context; here a descriptor carries
// the direct computation and the driver supplies the push-and-continue
// behavior uniformly.
type opKind int

const (
	opCompute opKind = iota
	opPush
	opPop
	opTerminal
)

type opDef struct {
	name  string
	arity int // written argument count; -1 for Pop's optional arity argument
	kind  opKind

	wraps  bool // substitute values with their stack enclosure (Print)
	splice bool // reassemble the substituted template into one token (Tokenize)

	direct func(eng *Engine, args []Value) (Value, error)
}

func (def *opDef) argcOK(n int) bool {
	if def.arity < 0 {
		return n <= 1
	}
	return n == def.arity
}

var opTable = make(map[string]*opDef)

func defOp(def opDef) {
	opTable[def.name] = &def
}

func init() {
	defOp(opDef{name: "Add", arity: 2, direct: directAdd})
	defOp(opDef{name: "Subtract", arity: 2, direct: directSubtract})
	defOp(opDef{name: "Negate", arity: 1, direct: directNegate})
	defOp(opDef{name: "Log2", arity: 1, direct: directLog2})
	defOp(opDef{name: "Pow2", arity: 1, direct: directPow2})
	defOp(opDef{name: "Identity", arity: 1, direct: directIdentity})

	defOp(opDef{name: "Push", arity: 1, kind: opPush})
	defOp(opDef{name: "Pop", arity: -1, kind: opPop})

	defOp(opDef{name: "Unwrap", arity: 1, kind: opTerminal})
	defOp(opDef{name: "Print", arity: 1, kind: opTerminal, wraps: true})
	defOp(opDef{name: "Tokenize", arity: 1, kind: opTerminal, splice: true})
}

// Invocation is one written operation application within a chain.
type Invocation struct {
	name string
	args []Term
	pos  string
}

func (inv Invocation) String() string {
	var sb strings.Builder
	sb.WriteString(inv.name)
	sb.WriteByte('(')
	for i, arg := range inv.args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func mkOp(name string, args ...Term) Invocation {
	return Invocation{name: name, args: args}
}

// Add invokes bounded addition of two operands.
func Add(a, b Term) Invocation { return mkOp("Add", a, b) }

// Subtract invokes bounded subtraction of two operands.
func Subtract(a, b Term) Invocation { return mkOp("Subtract", a, b) }

// Negate invokes additive inversion.
func Negate(a Term) Invocation { return mkOp("Negate", a) }

// Log2 invokes the power-of-two exponent lookup; fractional 1/2^k operands
// yield negative exponents.
func Log2(a Term) Invocation { return mkOp("Log2", a) }

// Pow2 invokes the exponent-to-power lookup, the inverse of Log2.
func Pow2(n Term) Invocation { return mkOp("Pow2", n) }

// Identity passes its operand through unchanged.
func Identity(a Term) Invocation { return mkOp("Identity", a) }

// Push pushes a literal value onto the front of the chain's stack.
func Push(v Term) Invocation { return mkOp("Push", v) }

// Pop removes the front k values (default 1, at most 3) and fills the
// placeholders of the following operation with them in reverse removal
// order, restoring their original push order.
func Pop(k ...int) Invocation {
	if len(k) == 0 {
		return mkOp("Pop")
	}
	return mkOp("Pop", N(int64(k[0])))
}

// Unwrap ends a chain, substituting the bare front value for every
// placeholder of its template and discarding the rest of the stack.
func Unwrap(tmpl Term) Invocation { return mkOp("Unwrap", tmpl) }

// Print is Unwrap keeping the value's stack enclosure.
func Print(tmpl Term) Invocation { return mkOp("Print", tmpl) }

// Tokenize is Unwrap spliced into a single identifier-like token.
func Tokenize(tmpl Term) Invocation { return mkOp("Tokenize", tmpl) }
