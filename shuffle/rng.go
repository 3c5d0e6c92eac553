// Sources shared by callers and tests.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - Neither *rand.Rand nor *StepSource is goroutine-safe.

package shuffle

import (
	"math/bits"
	"math/rand/v2"
)

// defaultSeed is used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// NewRand returns a deterministic PCG-backed generator usable as a Source.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim for the
// state and mixed (SplitMix64 finalizer) for the stream.
//
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewPCG(s, mix64(s)))
}

// mix64 is the SplitMix64 finalizer; small input changes flip about half of
// the output bits.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// StepSource is a fully predictable Source for tests and demos.
//
// It holds a 64-bit counter that starts at initial and grows by step after
// every draw (wrapping). A draw maps the counter into [0, n) with a widening
// multiply, returning the high word of counter·n. Small counters therefore map
// to 0: NewStepSource(0, 1) yields 0 for the first 2^64/n draws.
type StepSource struct {
	x    uint64
	step uint64
}

// NewStepSource returns a StepSource starting at initial, advancing by step.
func NewStepSource(initial, step uint64) *StepSource {
	return &StepSource{x: initial, step: step}
}

// IntN implements Source. It panics if n <= 0.
func (s *StepSource) IntN(n int) int {
	if n <= 0 {
		panic("shuffle: StepSource.IntN with non-positive n")
	}
	hi, _ := bits.Mul64(s.x, uint64(n))
	s.x += s.step
	return int(hi)
}

var (
	_ Source = (*StepSource)(nil)
	_ Source = (*rand.Rand)(nil)
)
