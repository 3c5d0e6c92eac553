package shuffle

// Riffle performs a perfect (Faro) interleave of s in place.
//
// Description:
//
//	The deck is split at middle = ⌈N/2⌉ (N/2 rounded half up) into a top half
//	[0, middle) and a bottom half [middle, N). The output alternates
//	top[0], bottom[0], top[1], bottom[1], …
//
// Algorithm Outline:
//  1. i is the write cursor (step 2), j the read cursor (step 1).
//  2. Resolve where logical slot j physically lives now (lazyMap, identity
//     by default). If that is ≥ N, stop.
//  3. Swap it into position i and record i → resolved.
//  4. Repeat 2–3 for logical slot middle+j into position i+1.
//
// Instead of an auxiliary copy, the permutation is done with swaps while a
// lazy index map remembers where earlier swaps displaced each logical slot.
//
// Edge cases:
//   - N == 0 is a no-op.
//   - For odd N the bottom half runs out one slot early; the loop stops on the
//     unresolvable slot and the last element stays where the swaps left it.
//   - Any out-of-range resolution terminates the pass early, leaving a
//     partial permutation. This is not an error.
//
// Examples:
//
//	[1..10] → [1 6 2 7 3 5 4 9 8 10]
//	[1..9]  → [1 6 2 7 3 5 4 9 8]
//
// Complexity: O(N) time, O(N) transient space.
func Riffle[T any](s []T) {
	RiffleData(Slice[T](s))
}

// RiffleData is Riffle for any Interface.
func RiffleData(data Interface) {
	n := data.Len()
	if n == 0 {
		return
	}
	middle := (n + 1) / 2
	moved := newLazyMap(n)

	for i, j := 0, 0; i < n; i, j = i+2, j+1 {
		found := moved.resolve(j)
		if found >= n {
			return
		}
		data.Swap(i, found)
		moved.record(i, found)

		found = moved.resolve(middle + j)
		if found >= n {
			return
		}
		data.Swap(i+1, found)
		moved.record(i+1, found)
	}
}

// lazyMap maps a logical slot to the physical index currently holding it.
// Keys are dense in [0, n), so a flat table replaces a hash map.
// Entries store physical+1; zero means "never moved".
type lazyMap struct {
	at []int
}

func newLazyMap(n int) lazyMap {
	return lazyMap{at: make([]int, n)}
}

// resolve returns the physical index of logical slot k, defaulting to k.
// Keys outside the table resolve to themselves.
func (m lazyMap) resolve(k int) int {
	if k >= len(m.at) || m.at[k] == 0 {
		return k
	}
	return m.at[k] - 1
}

// record notes that logical slot k now lives at physical index p.
func (m lazyMap) record(k, p int) {
	m.at[k] = p + 1
}
