// Package routine chains shuffle primitives into reusable dealer routines.
//
// 🚀 What is a routine?
//
//	A routine is an ordered list of steps (riffle, put_back N, reverse,
//	remove_middle, random) applied to a deck one after another, optionally
//	repeated several rounds. Dealers chain riffle → cut → flip all the time;
//	a routine names that chain once and replays it exactly.
//
// ✨ Key features:
//   - Text form:  "riffle; put_back 3; reverse"  (Parse / Routine.String)
//   - YAML form:  steps + repeat, decoded with gopkg.in/yaml.v3 (Load / LoadFile)
//   - Runner:     Run / RunData with functional options (WithSource, WithSeed,
//     WithContext, WithOnStep)
//
// ⚙️ Usage:
//
//	r, err := routine.Parse("riffle; put_back 3; reverse")
//	if err != nil {
//	  // handle ErrUnknownKind, ErrBadAmount, ...
//	}
//	r.Repeat = 4
//	err = routine.Run(r, deck, routine.WithSeed(7))
//
// Errors:
//   - ErrEmptyRoutine     — a routine with no steps.
//   - ErrUnknownKind      — an unrecognized step name.
//   - ErrBadAmount        — put_back amount missing or not an integer.
//   - ErrAmountOnly       — an amount attached to a step that takes none.
//   - ErrNoSource         — a random step with no Source configured.
//   - ErrOptionViolation  — an invalid Option (e.g. nil Source).
package routine
