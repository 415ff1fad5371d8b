package gochain

import (
	"errors"
	"io"

	"github.com/jcorbin/gochain/internal/panicerr"
)

// New creates an Engine with the default ±256 tier and step limit, then
// applies any options.
func New(opts ...Option) *Engine {
	var eng Engine
	defaultOptions.apply(&eng)
	Options(opts...).apply(&eng)
	return &eng
}

// Expand evaluates one chain of invocations: seeds an empty stack, threads
// it through every operation in order, and materializes the result via a
// terminal consumer or the done handler's flush.
func (eng *Engine) Expand(invs ...Invocation) (res Result, err error) {
	err = panicerr.Recover("expand", func() error {
		res = eng.expand(invs)
		return nil
	})
	var herr haltError
	if errors.As(err, &herr) {
		err = herr.error
	}
	return res, err
}

// ExpandText parses and expands chain source text.
func (eng *Engine) ExpandText(src string) (Result, error) {
	invs, err := ParseChain(src)
	if err != nil {
		return Result{}, err
	}
	return eng.Expand(invs...)
}

// ExpandReaders parses and expands chain source from one or more streams.
func (eng *Engine) ExpandReaders(sources ...io.Reader) (Result, error) {
	invs, err := ParseReaders(sources...)
	if err != nil {
		return Result{}, err
	}
	return eng.Expand(invs...)
}
