package shuffle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/shuffler/shuffle"
)

// TestReverse_Basic flips a short deck.
func TestReverse_Basic(t *testing.T) {
	v := []int{1, 2, 3}
	shuffle.Reverse(v)
	assert.Equal(t, []int{3, 2, 1}, v)
}

// TestReverse_Involution checks that Reverse∘Reverse is the identity for
// every length from 0 to 33.
func TestReverse_Involution(t *testing.T) {
	for n := 0; n <= 33; n++ {
		v := seq(n)
		shuffle.Reverse(v)
		shuffle.Reverse(v)
		assert.Equal(t, seq(n), v, "n=%d", n)
	}
}

// TestReverse_Degenerate covers empty and singleton decks.
func TestReverse_Degenerate(t *testing.T) {
	var empty []string
	shuffle.Reverse(empty)
	assert.Empty(t, empty)

	one := []string{"A♠"}
	shuffle.Reverse(one)
	assert.Equal(t, []string{"A♠"}, one)
}

// TestPutBack_Basic mirrors the canonical cut of two cards.
func TestPutBack_Basic(t *testing.T) {
	v := []int{1, 2, 3, 4}
	shuffle.PutBack(v, 2)
	assert.Equal(t, []int{3, 4, 1, 2}, v)
}

// TestPutBack_Policy walks the amount normalization rules.
func TestPutBack_Policy(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		amount int
		want   []int
	}{
		{"zero amount", 5, 0, []int{1, 2, 3, 4, 5}},
		{"full length", 5, 5, []int{1, 2, 3, 4, 5}},
		{"one", 5, 1, []int{2, 3, 4, 5, 1}},
		{"wraps past length", 5, 7, []int{3, 4, 5, 1, 2}},
		{"multiple of length", 5, 15, []int{1, 2, 3, 4, 5}},
		{"negative rotates right", 5, -1, []int{5, 1, 2, 3, 4}},
		{"negative wraps", 5, -6, []int{5, 1, 2, 3, 4}},
		{"empty deck", 0, 3, []int{}},
		{"singleton", 1, 9, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := seq(tc.n)
			shuffle.PutBack(v, tc.amount)
			assert.Equal(t, tc.want, v)
		})
	}
}

// TestPutBack_MatchesMoveToEnd compares against "move the first k elements
// to the end" for every length/amount pair up to 12.
func TestPutBack_MatchesMoveToEnd(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for a := 0; a <= 2*n; a++ {
			v := seq(n)
			k := a % n
			want := append(append([]int(nil), v[k:]...), v[:k]...)
			shuffle.PutBack(v, a)
			assert.Equal(t, want, v, "n=%d amount=%d", n, a)
		}
	}
}

// TestPutBack_Inverse checks put_back(put_back(S, a), N - a mod N) == S.
func TestPutBack_Inverse(t *testing.T) {
	for n := 1; n <= 16; n++ {
		for a := 0; a <= 3*n; a++ {
			v := seq(n)
			shuffle.PutBack(v, a)
			shuffle.PutBack(v, n-a%n)
			assert.Equal(t, seq(n), v, "n=%d amount=%d", n, a)
		}
	}
}

// TestRemoveMiddle_Nine is the documented vector with one leftover element.
func TestRemoveMiddle_Nine(t *testing.T) {
	v := seq(9)
	shuffle.RemoveMiddle(v)
	assert.Equal(t, []int{1, 2, 3, 8, 9, 4, 5, 6, 7}, v)
}

// TestRemoveMiddle_Lengths pins the layout A D B C for every remainder.
func TestRemoveMiddle_Lengths(t *testing.T) {
	cases := map[int][]int{
		0:  {},
		1:  {1},
		3:  {1, 2, 3},
		4:  {1, 4, 2, 3},
		5:  {1, 2, 5, 3, 4},
		7:  {1, 2, 3, 4, 7, 5, 6},
		8:  {1, 2, 7, 8, 3, 4, 5, 6},
		11: {1, 2, 3, 4, 5, 10, 11, 6, 7, 8, 9},
		12: {1, 2, 3, 10, 11, 12, 4, 5, 6, 7, 8, 9},
	}
	for n, want := range cases {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			v := seq(n)
			shuffle.RemoveMiddle(v)
			assert.Equal(t, want, v)
		})
	}
}

// TestGeometric_Interface runs the Interface entry points on a recording
// collection to confirm they only ever swap.
func TestGeometric_Interface(t *testing.T) {
	s := &swapLog{data: []string{"a", "b", "c", "d", "e"}}

	shuffle.ReverseData(s)
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, s.data)
	assert.Len(t, s.swaps, 2)

	shuffle.PutBackData(s, 2)
	assert.Equal(t, []string{"c", "b", "a", "e", "d"}, s.data)

	shuffle.RemoveMiddleData(s)
	assert.Equal(t, []string{"c", "b", "d", "a", "e"}, s.data)
}
