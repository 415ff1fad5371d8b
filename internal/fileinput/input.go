package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/gochain/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams, tracking the current scan line so that parse errors can
// point at where in which source they happened.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Scan  Line
}

// New builds an Input over the given source streams, read in order.
func New(sources ...io.Reader) *Input {
	return &Input{Queue: sources}
}

// Loc returns the location of the line currently being scanned.
func (in *Input) Loc() Location { return in.Scan.Location }

// ReadRune reads one rune from the current input stream, appending it into
// the current Scan line, and resetting Scan after each line feed. Streams are
// advanced through the Queue in order; io.EOF is returned only once the last
// one is exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}
		r, n, err := in.rr.ReadRune()
		if err == io.EOF {
			if in.nextIn() {
				continue
			}
			return 0, 0, io.EOF
		} else if err != nil {
			return 0, n, err
		}
		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, nil
	}
}

func (in *Input) nextLine() {
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Reset()
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
