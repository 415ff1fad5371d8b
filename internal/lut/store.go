// Package lut holds the generated lookup table store backing the bounded
// arithmetic unit. All entries are produced ahead of use for a whole range
// tier; lookups after that are single map probes keyed by the fnv1a hash of
// the concatenated operand tokens, mirroring the name-splicing dispatch the
// tables were originally addressed by.
package lut

import (
	"strconv"
	"sync"

	"github.com/segmentio/fasthash/fnv1a"
	"lukechampine.com/uint128"
)

// Tier selects the symmetric per-operand range the additive tables cover.
type Tier int

// The supported range tiers. Results are defined out to twice the tier
// bound, so that chained intermediate results can feed back in as the first
// operand of a later lookup.
const (
	Tier256  Tier = 256
	Tier512  Tier = 512
	Tier1024 Tier = 1024
)

// MaxExp bounds the POW2/LOG2 tables. Far beyond any realistic use, but
// cheap: the whole exponent table is under 150 entries either way.
const MaxExp = 73

// Store is one tier's worth of generated tables. Read-only after New.
type Store struct {
	tier Tier

	add  map[uint64]int64
	sub  map[uint64]int64
	neg  map[int64]int64
	pow2 map[int]string
	log2 map[uint64]int
}

var (
	storeMu sync.Mutex
	stores  map[Tier]*Store
)

// For returns the (lazily built, cached) Store for a tier.
func For(tier Tier) *Store {
	storeMu.Lock()
	defer storeMu.Unlock()
	if st := stores[tier]; st != nil {
		return st
	}
	st := New(tier)
	if stores == nil {
		stores = make(map[Tier]*Store)
	}
	stores[tier] = st
	return st
}

// New generates all tables for a tier.
func New(tier Tier) *Store {
	r := int64(tier)
	st := &Store{
		tier: tier,
		add:  make(map[uint64]int64),
		sub:  make(map[uint64]int64),
		neg:  make(map[int64]int64, 4*r+1),
		pow2: make(map[int]string, 2*MaxExp+1),
		log2: make(map[uint64]int, 2*MaxExp+1),
	}

	// The additive tables store only the canonical quadrant: second operand
	// non-negative, first operand out to twice the tier bound. Entries whose
	// result would land outside that doubled range are simply absent.
	for a := -2 * r; a <= 2*r; a++ {
		atok := strconv.FormatInt(a, 10)
		st.neg[a] = -a
		for b := int64(0); b <= r; b++ {
			btok := strconv.FormatInt(b, 10)
			if sum := a + b; -2*r <= sum && sum <= 2*r {
				st.add[pairKey(atok, btok)] = sum
			}
			if diff := a - b; -2*r <= diff && diff <= 2*r {
				st.sub[pairKey(atok, btok)] = diff
			}
		}
	}

	for n := 0; n <= MaxExp; n++ {
		tok := uint128.From64(1).Lsh(uint(n)).String()
		st.pow2[n] = tok
		st.log2[tokKey(tok)] = n
		if n > 0 {
			frac := "1/" + tok
			st.pow2[-n] = frac
			st.log2[tokKey(frac)] = -n
		}
	}

	return st
}

// Tier reports the range tier this store was generated for.
func (st *Store) Tier() Tier { return st.tier }

// Add looks up a+b; b must already be sign-canonicalized to non-negative.
func (st *Store) Add(a, b int64) (int64, bool) {
	v, ok := st.add[pairKey(strconv.FormatInt(a, 10), strconv.FormatInt(b, 10))]
	return v, ok
}

// Sub looks up a-b; b must already be sign-canonicalized to non-negative.
func (st *Store) Sub(a, b int64) (int64, bool) {
	v, ok := st.sub[pairKey(strconv.FormatInt(a, 10), strconv.FormatInt(b, 10))]
	return v, ok
}

// Neg looks up the additive inverse of a.
func (st *Store) Neg(a int64) (int64, bool) {
	v, ok := st.neg[a]
	return v, ok
}

// Pow2 looks up the token for 2^n; negative n yields a fractional 1/2^k token.
func (st *Store) Pow2(n int) (string, bool) {
	tok, ok := st.pow2[n]
	return tok, ok
}

// Log2 looks up the exponent for a power-of-two token, fractional included.
func (st *Store) Log2(tok string) (int, bool) {
	n, ok := st.log2[tokKey(tok)]
	return n, ok
}

func pairKey(atok, btok string) uint64 {
	h := fnv1a.AddString64(fnv1a.Init64, atok)
	h = fnv1a.AddString64(h, ",")
	return fnv1a.AddString64(h, btok)
}

func tokKey(tok string) uint64 {
	return fnv1a.HashString64(tok)
}
