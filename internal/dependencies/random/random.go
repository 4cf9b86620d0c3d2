package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float64 in [0, 1)
	Float64() float64

	// Pick returns a random element of the given choices, or "" if empty
	Pick(choices []string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Float64 returns a random float64 in [0, 1) with millesimal resolution,
// which is plenty for placing a target in a percentage-based play area
func (r *CryptoRandom) Float64() float64 {
	return float64(r.Intn(1000)) / 1000.0
}

// Pick returns a uniformly random element of choices
func (r *CryptoRandom) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[r.Intn(len(choices))]
}
