package gochain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gochain/internal/runeio"
)

func invStrings(invs []Invocation) []string {
	ss := make([]string, len(invs))
	for i, inv := range invs {
		ss[i] = inv.String()
	}
	return ss
}

func TestParseChain(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "bare sequence",
			src:  "Add(5,6) Pop(2) Subtract($,$)",
			want: []string{"Add(5,6)", "Pop(2)", "Subtract($,$)"},
		},
		{
			name: "chain wrapper splices",
			src:  "Chain(Add(5,6), Pop(), Identity($))",
			want: []string{"Add(5,6)", "Pop()", "Identity($)"},
		},
		{
			name: "commas between invocations are optional",
			src:  "Chain(Push(1) Push(2))",
			want: []string{"Push(1)", "Push(2)"},
		},
		{
			name: "nested template term stays whole",
			src:  "Print(($))",
			want: []string{"Print(($))"},
		},
		{
			name: "negative and fractional numbers",
			src:  "Add(-5,6) Log2(1/8)",
			want: []string{"Add(-5,6)", "Log2(1/8)"},
		},
		{
			name: "identifier tokens in templates",
			src:  "Tokenize(handler_$)",
			want: []string{"Tokenize(handler_$)"},
		},
		{
			name: "whitespace and newlines",
			src:  "Chain(\n\tAdd( 5 , 6 ),\n\tPop(),\n\tNegate($),\n)",
			want: []string{"Add(5,6)", "Pop()", "Negate($)"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			invs, err := ParseChain(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, invStrings(invs))
		})
	}
}

func TestParseChain_errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		mess string
		pos  string
	}{
		{
			name: "missing argument list",
			src:  "Add",
			mess: "expected argument list",
			pos:  "<chain>:1",
		},
		{
			name: "truncated argument list",
			src:  "Add(5,",
			mess: "unexpected end of input",
			pos:  "<chain>:1",
		},
		{
			name: "unterminated chain wrapper",
			src:  "Chain(Add(5,6)",
			mess: "unexpected end of input in Chain",
			pos:  "<chain>:1",
		},
		{
			name: "stray token",
			src:  "Add(5,6)\n%",
			mess: "expected identifier",
			pos:  "<chain>:2",
		},
		{
			name: "empty argument",
			src:  "Add(,6)",
			mess: "empty argument",
			pos:  "<chain>:1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseChain(tc.src)
			require.Error(t, err)
			var mce MalformedChainError
			require.ErrorAs(t, err, &mce)
			assert.Contains(t, mce.Msg, tc.mess)
			assert.Equal(t, tc.pos, mce.Pos)
		})
	}
}

func TestParseReaders(t *testing.T) {
	invs, err := ParseReaders(
		runeio.NamedString("one.chain", "Add(1,2)"),
		runeio.NamedString("two.chain", "Pop() Identity($)"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Add(1,2)", "Pop()", "Identity($)"}, invStrings(invs))

	_, err = ParseReaders(
		runeio.NamedString("one.chain", "Add(1,2)"),
		runeio.NamedString("two.chain", "\n!"),
	)
	require.Error(t, err)
	var mce MalformedChainError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "two.chain:2", mce.Pos)
}
