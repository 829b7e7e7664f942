package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source yields uniformly distributed integers over an inclusive range.
// The PIN-entry engine consumes this interface so tests can substitute a
// deterministic sequence.
type Source interface {
	// UniformBetween returns an integer in [low, high], both inclusive,
	// drawn uniformly at random. low must not exceed high.
	UniformBetween(low, high int) int
}

// CryptoSource draws from crypto/rand. This is the production source:
// selector re-seeding is a shoulder-surfing countermeasure, so it must not
// be predictable from previous observations.
type CryptoSource struct{}

// UniformBetween implements Source.
func (CryptoSource) UniformBetween(low, high int) int {
	if low > high {
		panic(fmt.Sprintf("random: invalid range [%d, %d]", low, high))
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(high-low+1)))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// no safe way to continue picking selector positions.
		panic(fmt.Sprintf("random: system entropy source failed: %v", err))
	}
	return low + int(n.Int64())
}
