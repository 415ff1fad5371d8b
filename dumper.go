package gochain

import (
	"fmt"
	"io"
	"strconv"
)

// Dump writes the result's values one per line with aligned indexes, front
// (most recent) first.
func (res Result) Dump(w io.Writer) error {
	return resultDumper{out: w, values: res.values}.dump()
}

type resultDumper struct {
	out    io.Writer
	values []Value
}

func (d resultDumper) dump() error {
	width := 1
	if n := len(d.values); n > 1 {
		width = len(strconv.Itoa(n - 1))
	}
	for i, v := range d.values {
		if _, err := fmt.Fprintf(d.out, "%*v: %v\n", width, i, v); err != nil {
			return err
		}
	}
	return nil
}
