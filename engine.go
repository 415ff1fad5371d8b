package gochain

import (
	"fmt"

	"github.com/jcorbin/gochain/internal/lut"
)

// Tier selects the symmetric operand range the arithmetic tables are
// generated for. A single parameter: larger tiers mean bigger tables, not
// different code paths.
type Tier int

// The supported range tiers.
const (
	Tier256  Tier = Tier(lut.Tier256)
	Tier512  Tier = Tier(lut.Tier512)
	Tier1024 Tier = Tier(lut.Tier1024)
)

// Engine evaluates chains. An Engine holds only configuration; every
// expansion threads its own stack, so a single Engine may evaluate any
// number of chains, concurrently included.
type Engine struct {
	logging

	tier  Tier
	limit int
}

func (eng *Engine) tables() *lut.Store {
	return lut.For(lut.Tier(eng.tier))
}

// expansion is one chain evaluation in flight: the engine's configuration
// plus its own trace logging state, so that concurrent expansions of a
// shared Engine never write through it.
type expansion struct {
	eng *Engine
	logging
}

func (ex *expansion) halt(err error) {
	ex.logf("halt error: %v", err)
	panic(haltError{err})
}

func (ex *expansion) haltif(err error) {
	if err != nil {
		ex.halt(err)
	}
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) withLogPrefix(prefix string) logging {
	logfn := log.logfn
	if logfn == nil {
		return log
	}
	return logging{logfn: func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
