package gochain

import (
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/gochain/internal/fileinput"
	"github.com/jcorbin/gochain/internal/runeio"
)

// ParseChain parses chain source text into invocations: a whitespace (or
// comma) separated sequence of operation applications, optionally wrapped in
// Chain( ... ).
func ParseChain(src string) ([]Invocation, error) {
	return ParseReaders(runeio.NamedString("<chain>", src))
}

// ParseReaders parses chain source from one or more streams read in order.
// Streams implementing Name() string (os.File does) label error positions.
func ParseReaders(sources ...io.Reader) ([]Invocation, error) {
	p := parser{in: fileinput.New(sources...)}
	return p.parseSeq(false)
}

type parser struct {
	in *fileinput.Input

	peeked   rune
	havePeek bool
}

func (p *parser) read() (rune, error) {
	if p.havePeek {
		p.havePeek = false
		return p.peeked, nil
	}
	r, _, err := p.in.ReadRune()
	return r, err
}

func (p *parser) unread(r rune) {
	p.peeked, p.havePeek = r, true
}

// skipSpace returns the first non-space rune, or io.EOF.
func (p *parser) skipSpace() (rune, error) {
	for {
		r, err := p.read()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (p *parser) errf(mess string, args ...interface{}) error {
	e := malformed(Invocation{}, mess, args...)
	e.Pos = p.in.Loc().String()
	return e
}

// parseSeq parses invocations until EOF, or until a closing paren when
// nested inside a Chain( ... ) wrapper.
func (p *parser) parseSeq(nested bool) ([]Invocation, error) {
	var invs []Invocation
	for {
		r, err := p.skipSpace()
		if err == io.EOF {
			if nested {
				return nil, p.errf("unexpected end of input in Chain")
			}
			return invs, nil
		} else if err != nil {
			return nil, err
		}
		if r == ',' {
			continue
		}
		if nested && r == ')' {
			return invs, nil
		}
		p.unread(r)

		more, err := p.parseInv()
		if err != nil {
			return nil, err
		}
		invs = append(invs, more...)
	}
}

// parseInv parses one invocation; a Chain( ... ) wrapper splices its inner
// sequence in place.
func (p *parser) parseInv() ([]Invocation, error) {
	pos := p.in.Loc().String()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	r, err := p.skipSpace()
	if err != nil || r != '(' {
		return nil, p.errf("%v: expected argument list", name)
	}

	if name == "Chain" {
		return p.parseSeq(true)
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return []Invocation{{name: name, args: args, pos: pos}}, nil
}

func (p *parser) parseArgs() ([]Term, error) {
	r, err := p.skipSpace()
	if err != nil {
		return nil, p.errf("unexpected end of input in argument list")
	}
	if r == ')' {
		return nil, nil
	}
	p.unread(r)

	var args []Term
	for {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if len(term) == 0 {
			return nil, p.errf("empty argument")
		}
		args = append(args, term)

		r, err := p.skipSpace()
		if err != nil {
			return nil, p.errf("unexpected end of input in argument list")
		}
		switch r {
		case ',':
		case ')':
			return args, nil
		default:
			return nil, p.errf("unexpected %q in argument list", r)
		}
	}
}

// parseTerm collects one argument's tokens up to a top-level comma or the
// closing paren, tracking nesting so that template terms like (($)) stay
// whole.
func (p *parser) parseTerm() (Term, error) {
	var term Term
	depth := 0
	for {
		r, err := p.skipSpace()
		if err != nil {
			return nil, p.errf("unexpected end of input in argument")
		}

		switch {
		case r == ',' && depth == 0, r == ')' && depth == 0:
			p.unread(r)
			return term, nil
		case r == '(':
			depth++
			term = append(term, "(")
		case r == ')':
			depth--
			term = append(term, ")")
		case r == ',':
			term = append(term, ",")
		case r == '$':
			term = append(term, hole)
		case isIdentStart(r):
			p.unread(r)
			name, err := p.ident()
			if err != nil {
				return nil, err
			}
			term = append(term, Token(name))
		case r == '-' || unicode.IsDigit(r):
			p.unread(r)
			num, err := p.number()
			if err != nil {
				return nil, err
			}
			term = append(term, Token(num))
		default:
			return nil, p.errf("unexpected %q in argument", r)
		}
	}
}

func (p *parser) ident() (string, error) {
	var sb strings.Builder
	r, err := p.read()
	if err != nil || !isIdentStart(r) {
		return "", p.errf("expected identifier")
	}
	sb.WriteRune(r)
	for {
		r, err := p.read()
		if err == io.EOF {
			return sb.String(), nil
		} else if err != nil {
			return "", err
		}
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			p.unread(r)
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

// number lexes an optionally signed integer, or a fractional power token
// like 1/8.
func (p *parser) number() (string, error) {
	var sb strings.Builder
	r, err := p.read()
	if err != nil {
		return "", p.errf("expected number")
	}
	if r == '-' {
		sb.WriteRune(r)
		if r, err = p.read(); err != nil {
			return "", p.errf("expected digits after -")
		}
	}
	if !unicode.IsDigit(r) {
		return "", p.errf("expected digits, got %q", r)
	}
	sb.WriteRune(r)

	slashed := false
	for {
		r, err := p.read()
		if err == io.EOF {
			return sb.String(), nil
		} else if err != nil {
			return "", err
		}
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else if r == '/' && !slashed {
			slashed = true
			sb.WriteRune(r)
		} else {
			p.unread(r)
			return sb.String(), nil
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
