package shuffle_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// seq returns [1..n].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// requireSameMultiset fails unless got is a permutation of want.
func requireSameMultiset(t *testing.T, want, got []int) {
	t.Helper()
	require.Len(t, got, len(want), "length must be preserved")
	a := append([]int(nil), want...)
	b := append([]int(nil), got...)
	sort.Ints(a)
	sort.Ints(b)
	require.Equal(t, a, b, "multiset must be preserved")
}

// swapLog is an Interface that records every swap it performs.
type swapLog struct {
	data  []string
	swaps [][2]int
}

func (s *swapLog) Len() int { return len(s.data) }
func (s *swapLog) Swap(i, j int) {
	s.swaps = append(s.swaps, [2]int{i, j})
	s.data[i], s.data[j] = s.data[j], s.data[i]
}
