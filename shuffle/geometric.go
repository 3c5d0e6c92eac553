package shuffle

// Reverse flips s in place: the element at i trades places with N-1-i.
// Applying Reverse twice restores the original order.
//
// Complexity: O(N) time, O(1) space.
func Reverse[T any](s []T) {
	ReverseData(Slice[T](s))
}

// ReverseData is Reverse for any Interface.
func ReverseData(data Interface) {
	reverseRange(data, 0, data.Len())
}

// PutBack rotates s left by amount positions: the element at amount mod N
// becomes the new first element and the first amount elements move to the
// end, keeping their relative order ("cut" the deck).
//
// Policy:
//   - N == 0 or amount mod N == 0 is a no-op.
//   - amount ≥ N is reduced modulo N.
//   - amount < 0 rotates right by |amount| (Euclidean remainder).
//
// Complexity: O(N) time, O(1) space (three reversals).
func PutBack[T any](s []T, amount int) {
	PutBackData(Slice[T](s), amount)
}

// PutBackData is PutBack for any Interface.
func PutBackData(data Interface, amount int) {
	n := data.Len()
	if n == 0 {
		return
	}
	k := amount % n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}

	// rotate-left(k) == rev(rev([0,k)) ++ rev([k,n)))
	reverseRange(data, 0, k)
	reverseRange(data, k, n)
	reverseRange(data, 0, n)
}

// RemoveMiddle cuts s into four runs and reassembles them so that the last
// run lands right after the first one:
//
//	q = N/4, r = N%4
//	A = [0, q+r)  B = [q+r, 2q+r)  C = [2q+r, 3q+r)  D = [3q+r, N)
//	A B C D  →  A D B C
//
// The remainder r always stays with the leading run A, so the three moved
// runs have equal length q. For N < 4 every moved run is empty and the call
// is a no-op.
//
// The exchange is done as two run swaps: B ↔ C, then D ↔ (B's range, which
// now holds C).
//
// Complexity: O(N) time, O(1) space.
func RemoveMiddle[T any](s []T) {
	RemoveMiddleData(Slice[T](s))
}

// RemoveMiddleData is RemoveMiddle for any Interface.
func RemoveMiddleData(data Interface) {
	n := data.Len()
	q := n / 4
	if q == 0 {
		return
	}
	r := n - q*4

	b := q + r
	c := b + q
	d := c + q

	swapRuns(data, b, c, q)
	swapRuns(data, d, b, q)
}

// reverseRange reverses data[lo:hi).
func reverseRange(data Interface, lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		data.Swap(i, j)
	}
}

// swapRuns exchanges data[a:a+n) with data[b:b+n) element-wise.
// The runs must not overlap.
func swapRuns(data Interface, a, b, n int) {
	for k := 0; k < n; k++ {
		data.Swap(a+k, b+k)
	}
}
