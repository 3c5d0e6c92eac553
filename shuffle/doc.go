// Package shuffle implements in-place permutation primitives that model
// physical deck shuffles.
//
// 🚀 What is in the box?
//
//	• Riffle       — perfect (Faro) interleave of the two halves
//	• PutBack      — cyclic left rotation ("cut" the top cards to the bottom)
//	• Reverse      — flip the whole deck
//	• RemoveMiddle — pull the middle quarters and drop the last quarter in between
//	• Random       — single pass swap-with-random-index, driven by an injected Source
//
// ✨ Key properties:
//   - Generic: every operation works on []T for any T, or on any collection
//     implementing Interface (Len + Swap), like sort.Interface.
//   - In place: elements are only ever swapped pairwise; length and the
//     multiset of elements are preserved.
//   - Total: no operation fails. Degenerate inputs (empty decks, oversized
//     rotation amounts, lengths not divisible by 4) follow fixed policies.
//   - Deterministic: randomness comes exclusively from the Source passed to
//     Random. Nothing here seeds or stores a generator.
//
// ⚙️ Usage:
//
//	deck := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
//	shuffle.Riffle(deck)      // [1 6 2 7 3 5 4 9 8 10]
//	shuffle.PutBack(deck, 3)  // rotate left by 3
//	shuffle.Reverse(deck)
//
//	rng := shuffle.NewRand(42)
//	shuffle.Random(deck, rng)
//
// Concurrency:
//
//	Operations are synchronous and hold no shared state. Callers must not run
//	two operations on the same sequence concurrently; a Source is mutated by
//	Random and must not be shared across goroutines without synchronization.
//
// Complexity:
//
//	All operations are O(N) time. Riffle allocates O(N) transient memory for
//	its lookup table; the others allocate nothing.
package shuffle
