package shuffle_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shuffler/shuffle"
)

// TestRandom_StepSource is the documented deterministic vector: a stepping
// source starting at 0 maps every early draw to 0, so each element is swapped
// with the head in turn.
func TestRandom_StepSource(t *testing.T) {
	r := seq(10)
	shuffle.Random(r, shuffle.NewStepSource(0, 1))
	assert.Equal(t, []int{10, 1, 2, 3, 4, 5, 6, 7, 8, 9}, r)
}

// TestRandom_Nondeterministic checks that a real generator moves the deck
// away from both the identity and the stepping-source result.
func TestRandom_Nondeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	r := seq(10)
	shuffle.Random(r, rng)
	assert.NotEqual(t, seq(10), r)
	assert.NotEqual(t, []int{10, 1, 2, 3, 4, 5, 6, 7, 8, 9}, r)
	requireSameMultiset(t, seq(10), r)
}

// TestRandom_SeedDeterminism verifies identical seeds give identical decks
// and that seed 0 falls back to the default seed.
func TestRandom_SeedDeterminism(t *testing.T) {
	a, b := seq(52), seq(52)
	shuffle.Random(a, shuffle.NewRand(42))
	shuffle.Random(b, shuffle.NewRand(42))
	require.Equal(t, a, b)

	c, d := seq(52), seq(52)
	shuffle.Random(c, shuffle.NewRand(0))
	shuffle.Random(d, shuffle.NewRand(1))
	assert.Equal(t, c, d, "seed 0 must use the default seed")
}

// countingSource records every bound it is asked for and always answers n-1.
type countingSource struct {
	bounds []int
}

func (c *countingSource) IntN(n int) int {
	c.bounds = append(c.bounds, n)
	return n - 1
}

// TestRandom_FullRangeDraws pins the draw pattern: exactly N draws, each over
// the full range [0, N).
func TestRandom_FullRangeDraws(t *testing.T) {
	src := &countingSource{}
	r := seq(6)
	shuffle.Random(r, src)
	assert.Equal(t, []int{6, 6, 6, 6, 6, 6}, src.bounds)
	// swap(i, 5) for every i rotates the head to the back step by step
	assert.Equal(t, []int{6, 1, 2, 3, 4, 5}, r)
}

// TestRandom_Empty must not consult the source at all.
func TestRandom_Empty(t *testing.T) {
	src := &countingSource{}
	var r []int
	shuffle.Random(r, src)
	assert.Empty(t, src.bounds)
}

// TestRandom_NilSource is a programmer error.
func TestRandom_NilSource(t *testing.T) {
	assert.Panics(t, func() { shuffle.Random(seq(3), nil) })
}

// TestStepSource_Draws checks the widening-multiply mapping.
func TestStepSource_Draws(t *testing.T) {
	s := shuffle.NewStepSource(0, 1<<62)
	got := []int{s.IntN(4), s.IntN(4), s.IntN(4), s.IntN(4), s.IntN(4)}
	assert.Equal(t, []int{0, 1, 2, 3, 0}, got)

	assert.Panics(t, func() { s.IntN(0) })
}
