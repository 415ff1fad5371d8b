package lut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_additive(t *testing.T) {
	st := For(Tier256)

	for a := int64(-256); a <= 256; a += 7 {
		for b := int64(0); b <= 256; b += 11 {
			sum, ok := st.Add(a, b)
			require.True(t, ok, "Add(%v,%v) should be defined", a, b)
			assert.Equal(t, a+b, sum, "Add(%v,%v)", a, b)

			diff, ok := st.Sub(a, b)
			require.True(t, ok, "Sub(%v,%v) should be defined", a, b)
			assert.Equal(t, a-b, diff, "Sub(%v,%v)", a, b)
		}
	}

	// first operand may range out to twice the tier bound
	if sum, ok := st.Add(-400, 200); assert.True(t, ok) {
		assert.Equal(t, int64(-200), sum)
	}
	if diff, ok := st.Sub(512, 256); assert.True(t, ok) {
		assert.Equal(t, int64(256), diff)
	}

	// absent when the result would leave the doubled range
	_, ok := st.Add(400, 200)
	assert.False(t, ok, "Add(400,200) exceeds the doubled range")
	_, ok = st.Sub(-500, 100)
	assert.False(t, ok, "Sub(-500,100) exceeds the doubled range")

	// absent when an operand leaves the table entirely
	_, ok = st.Add(1000, 1)
	assert.False(t, ok, "first operand beyond the doubled bound")
	_, ok = st.Add(1, 300)
	assert.False(t, ok, "second operand beyond the tier bound")
}

func TestStore_neg(t *testing.T) {
	st := For(Tier256)
	for a := int64(-512); a <= 512; a++ {
		v, ok := st.Neg(a)
		require.True(t, ok, "Neg(%v) should be defined", a)
		assert.Equal(t, -a, v, "Neg(%v)", a)
	}
	_, ok := st.Neg(513)
	assert.False(t, ok)
}

func TestStore_pow2(t *testing.T) {
	st := For(Tier256)

	tok, ok := st.Pow2(0)
	require.True(t, ok)
	assert.Equal(t, "1", tok)

	tok, ok = st.Pow2(3)
	require.True(t, ok)
	assert.Equal(t, "8", tok)

	tok, ok = st.Pow2(-3)
	require.True(t, ok)
	assert.Equal(t, "1/8", tok)

	tok, ok = st.Pow2(MaxExp)
	require.True(t, ok)
	assert.Equal(t, "9444732965739290427392", tok)

	_, ok = st.Pow2(MaxExp + 1)
	assert.False(t, ok)

	for n := -MaxExp; n <= MaxExp; n++ {
		tok, ok := st.Pow2(n)
		require.True(t, ok, "Pow2(%v)", n)
		back, ok := st.Log2(tok)
		require.True(t, ok, "Log2(%q)", tok)
		assert.Equal(t, n, back, "Log2(Pow2(%v))", n)
	}

	_, ok = st.Log2("3")
	assert.False(t, ok, "3 is not a power of two")
	_, ok = st.Log2("1/3")
	assert.False(t, ok, "1/3 is not a fractional power of two")
}

func TestStore_tiers(t *testing.T) {
	st := For(Tier512)
	assert.Equal(t, Tier512, st.Tier())

	if sum, ok := st.Add(500, 512); assert.True(t, ok) {
		assert.Equal(t, int64(1012), sum)
	}
	if sum, ok := st.Add(-1000, 500); assert.True(t, ok) {
		assert.Equal(t, int64(-500), sum)
	}

	// same store comes back from the cache
	assert.Same(t, st, For(Tier512))
}
