package dice

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// Source yields random integers in [0, n).
type Source interface {
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a Source seeded from the runtime's random state.
func NewRandomSource() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *pcgSource) IntN(n int) int {
	return s.r.IntN(n)
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// IntN panics if n <= 0 or if crypto/rand fails.
func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("dice: IntN called with n <= 0")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}
