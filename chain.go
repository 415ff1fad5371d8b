package gochain

import (
	"strings"

	"github.com/edwingeng/deque"
)

// Result is the materialized output of one chain expansion: the exact
// expansion text plus the values that produced it.
type Result struct {
	values []Value
	text   string
}

// String returns the expansion text: a terminal consumer's substituted
// template, or the done handler's flush of enclosed values, most recent
// first.
func (res Result) String() string { return res.text }

// Values returns the result's values: the remaining stack in front-to-back
// order for a flushed chain, or the single consumed value for a terminal
// one.
func (res Result) Values() []Value {
	return append([]Value(nil), res.values...)
}

// Int reads a single-value result numerically, stripping the enclosure a
// flushed value carries in its textual form.
func (res Result) Int() (int64, error) {
	if len(res.values) != 1 {
		return 0, MalformedChainError{Msg: "result is not a single value"}
	}
	return res.values[0].Int()
}

// expand drives one chain: invocations are queued, then consumed front to
// back, each step receiving the prior step's stack snapshot. Any protocol
// misuse halts the expansion; the public API recovers that into an error.
func (eng *Engine) expand(invs []Invocation) Result {
	ex := expansion{eng: eng, logging: eng.logging.withLogPrefix("\t")}

	pend := deque.NewDeque()
	for _, inv := range invs {
		pend.PushBack(inv)
	}

	var s stack
	steps := 0
	for pend.Len() != 0 {
		inv := pend.Front().(Invocation)
		pend.PopFront()

		if steps++; eng.limit != 0 && steps > eng.limit {
			ex.halt(MalformedChainError{Pos: inv.pos, Op: inv.name, Err: ErrStepLimit})
		}

		def := opTable[inv.name]
		if def == nil {
			ex.halt(malformed(inv, "unknown operation"))
		}
		if !def.argcOK(len(inv.args)) {
			if def.arity < 0 {
				ex.halt(malformed(inv, "want at most 1 argument, have %v", len(inv.args)))
			}
			ex.halt(malformed(inv, "want %v arguments, have %v", def.arity, len(inv.args)))
		}
		ex.logf("expand %v -- s:%v", inv, s)

		switch def.kind {
		case opPush:
			s = s.push(ex.groundValue(inv, 0))

		case opPop:
			k := ex.popArity(inv)
			vals, rest, ok := s.pop(k)
			if !ok {
				ex.halt(malformed(inv, "stack underflow: need %v values, have %v", k, len(s)))
			}
			s = rest
			if pend.Len() == 0 {
				ex.halt(malformed(inv, "no following operation to consume popped values"))
			}
			next := pend.Front().(Invocation)
			pend.PopFront()
			ndef := opTable[next.name]
			if ndef == nil {
				ex.halt(malformed(next, "unknown operation"))
			}
			filled, err := fillHoles(next, vals, ndef.wraps)
			ex.haltif(err)
			pend.PushFront(filled)

		case opTerminal:
			res := ex.consume(inv, def, s)
			if pend.Len() != 0 {
				ex.halt(malformed(inv, "operations follow a terminal consumer"))
			}
			return res

		default:
			args := make([]Value, len(inv.args))
			for i := range inv.args {
				args[i] = ex.groundValue(inv, i)
			}
			v, err := def.direct(eng, args)
			ex.haltif(err)
			s = s.push(v)
		}
	}

	// done handler: flush the remaining stack front to back, each value
	// enclosed, none substituted
	var sb strings.Builder
	for _, v := range s {
		sb.WriteString(v.enclosed())
	}
	return Result{values: append([]Value(nil), s...), text: sb.String()}
}

func (ex *expansion) groundValue(inv Invocation, i int) Value {
	v, ok := inv.args[i].value()
	if !ok {
		ex.halt(malformed(inv, "unfilled placeholder in argument %v", i+1))
	}
	return v
}

func (ex *expansion) popArity(inv Invocation) int {
	if len(inv.args) == 0 {
		return 1
	}
	k, err := ex.groundValue(inv, 0).Int()
	if err != nil || k < 1 || k > 3 {
		ex.halt(malformed(inv, "pop arity must be 1, 2 or 3"))
	}
	return int(k)
}

// fillHoles substitutes popped values into next's placeholders in textual
// left-to-right order, in reverse removal order: the k-th-most-recently
// pushed value fills the first placeholder. Values substitute bare, or with
// their stack enclosure when the consuming operation wraps (Print).
func fillHoles(next Invocation, vals []Value, wraps bool) (Invocation, error) {
	holes := 0
	for _, arg := range next.args {
		holes += arg.holes()
	}
	if holes != len(vals) {
		return next, malformed(next, "%v placeholders do not match pop arity %v", holes, len(vals))
	}

	idx := 0
	args := make([]Term, len(next.args))
	for i, arg := range next.args {
		filled := make(Term, 0, len(arg))
		for _, tok := range arg {
			if tok != hole {
				filled = append(filled, tok)
				continue
			}
			filled = appendValue(filled, vals[len(vals)-1-idx], wraps)
			idx++
		}
		args[i] = filled
	}
	next.args = args
	return next, nil
}

func appendValue(t Term, v Value, wraps bool) Term {
	if wraps {
		t = append(t, "(")
	}
	t = append(t, v...)
	if wraps {
		t = append(t, ")")
	}
	return t
}

// consume runs a terminal: the single front value fills every remaining
// placeholder of the template, and the whole stack is discarded. A template
// already ground (filled by a preceding Pop) passes through as is.
func (ex *expansion) consume(inv Invocation, def *opDef, s stack) Result {
	tmpl := inv.args[0]
	if tmpl.holes() > 0 {
		if len(s) == 0 {
			ex.halt(malformed(inv, "terminal consumer with empty stack"))
		}
		out := make(Term, 0, len(tmpl))
		for _, tok := range tmpl {
			if tok != hole {
				out = append(out, tok)
				continue
			}
			out = appendValue(out, s[0], def.wraps)
		}
		tmpl = out
	}

	val := Value(tmpl)
	text := val.String()
	if def.splice {
		val = Value{Token(text)}
	}
	return Result{values: []Value{val}, text: text}
}
