package shuffle

// Random shuffles s in place with draws from src.
//
// For every i in [0, N), ascending, a value r is drawn from the FULL range
// [0, N) and positions i and r are swapped. This is not Fisher–Yates (which
// draws from the shrinking range [i, N)) and the resulting distribution over
// permutations is not uniform. Callers that need an unbiased permutation
// should use math/rand/v2's Shuffle instead.
//
// Exactly N draws are made; an empty s draws nothing. src must not be nil.
//
// Complexity: O(N) time, O(1) space.
func Random[T any](s []T, src Source) {
	RandomData(Slice[T](s), src)
}

// RandomData is Random for any Interface.
func RandomData(data Interface, src Source) {
	if src == nil {
		panic("shuffle: Random with nil Source")
	}
	n := data.Len()
	for i := 0; i < n; i++ {
		data.Swap(i, src.IntN(n))
	}
}
