package shuffle

// Interface is the minimal capability a collection needs to be shuffled by
// this package. The methods require that the elements of the collection be
// enumerable by an integer index. No ordering or equality is needed.
type Interface interface {
	// Len is the number of elements in the collection.
	Len() int
	// Swap swaps the elements with indexes i and j.
	Swap(i, j int)
}

// Source yields uniformly distributed integers on demand.
//
// IntN returns a value in the half-open range [0, n) and advances the
// generator state. n is always > 0 when called from this package.
// *math/rand/v2.Rand satisfies Source.
type Source interface {
	IntN(n int) int
}

// Slice attaches Interface to a []T, like sort.IntSlice does for sort.
type Slice[T any] []T

func (s Slice[T]) Len() int      { return len(s) }
func (s Slice[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
