package runeio

import (
	"bufio"
	"io"
	"strings"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// If the r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

// Named wraps r so that its Name() method reports the given name; input
// tracking uses it to label non-file sources like command line arguments.
func Named(name string, r io.Reader) Reader {
	return namedRuneReader{NewReader(r), name}
}

// NamedString builds a named Reader over literal source text.
func NamedString(name, src string) Reader {
	return Named(name, strings.NewReader(src))
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }
