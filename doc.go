// Package shuffler is a small toolkit of in-place deck shuffles — from the
// single primitives a dealer performs to replayable multi-round routines.
//
// 🚀 What is shuffler?
//
//	A pure-Go, generic library that brings together:
//		• Primitives: riffle (Faro interleave), put back (cut), reverse,
//		  remove middle (quadrant swap), random (full-range swap pass)
//		• Routines: named chains of primitives in text or YAML form
//		• A CLI that deals a deck through a routine
//
// ✨ Why choose shuffler?
//
//   - Generic – works on []T for any T, or any Len/Swap collection
//   - In place – elements are only swapped, never copied wholesale
//   - Deterministic – randomness is always an injected Source
//   - Total – degenerate decks follow fixed policies instead of failing
//
// Under the hood, everything is organized under these subpackages:
//
//	shuffle/      — the primitives, the Source abstraction and seeded sources
//	routine/      — routine model, text/YAML codecs, runner with hooks
//	cmd/shuffler/ — command line front end
//
// Quick example:
//
//	[1 2 3 4 5 6 7 8 9 10] ─riffle→ [1 6 2 7 3 5 4 9 8 10]
//
//	go get github.com/katalvlaran/shuffler
package shuffler
