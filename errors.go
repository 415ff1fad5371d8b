package gochain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStepLimit is reported (wrapped in a MalformedChainError) when an
// expansion exhausts the engine's step budget, the analog of a rewriting
// host's rescan depth limit.
var ErrStepLimit = errors.New("expansion step limit exceeded")

// MalformedChainError reports chain protocol misuse: pop arity mismatches,
// stack underflow, unfilled placeholders, unknown operations, operations
// following a terminal consumer, and parse errors in textual chains.
type MalformedChainError struct {
	Pos string // source position, when the chain came from text
	Op  string // offending operation, when known
	Msg string
	Err error
}

func (e MalformedChainError) Error() string {
	var sb strings.Builder
	sb.WriteString("malformed chain")
	if e.Pos != "" {
		fmt.Fprintf(&sb, " at %v", e.Pos)
	}
	if e.Op != "" {
		fmt.Fprintf(&sb, ": %v", e.Op)
	}
	if e.Msg != "" {
		fmt.Fprintf(&sb, ": %v", e.Msg)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e MalformedChainError) Unwrap() error { return e.Err }

func malformed(inv Invocation, mess string, args ...interface{}) MalformedChainError {
	return MalformedChainError{
		Pos: inv.pos,
		Op:  inv.name,
		Msg: fmt.Sprintf(mess, args...),
	}
}

// RangeError reports an arithmetic lookup whose operands (or result) fall
// outside the generated table range. The rewriting original left such
// contract violations as silent garbage output; here they are typed.
type RangeError struct {
	Op       string
	Operands []string
}

func (e RangeError) Error() string {
	return fmt.Sprintf("%v(%v): outside table range", e.Op, strings.Join(e.Operands, ","))
}

func rangeErr(op string, operands ...interface{}) RangeError {
	toks := make([]string, len(operands))
	for i, v := range operands {
		toks[i] = fmt.Sprint(v)
	}
	return RangeError{Op: op, Operands: toks}
}
