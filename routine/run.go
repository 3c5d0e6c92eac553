package routine

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/shuffler/shuffle"
)

// Run applies r to deck in place, Rounds() times, step by step.
//
// Run validates r first, then checks that a Source is configured when r has a
// Random step. The context is checked before every step; on cancellation the
// deck keeps the state reached so far and the context error is returned
// wrapped with the round and step.
//
// Complexity: O(rounds · steps · N).
func Run[T any](r Routine, deck []T, opts ...Option) error {
	return RunData(r, shuffle.Slice[T](deck), opts...)
}

// RunData is Run for any shuffle.Interface.
func RunData(r Routine, data shuffle.Interface, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if r.NeedsSource() && o.Source == nil {
		return ErrNoSource
	}

	rounds := r.Rounds()
	for round := 0; round < rounds; round++ {
		for i, st := range r.Steps {
			if err := o.Ctx.Err(); err != nil {
				return errors.Wrapf(err, "round %d step %d", round+1, i+1)
			}
			apply(st, data, o.Source)
			o.OnStep(round, i, st)
		}
	}
	return nil
}

// apply dispatches one validated step.
func apply(st Step, data shuffle.Interface, src shuffle.Source) {
	switch st.Kind {
	case Riffle:
		shuffle.RiffleData(data)
	case PutBack:
		shuffle.PutBackData(data, st.Amount)
	case Reverse:
		shuffle.ReverseData(data)
	case RemoveMiddle:
		shuffle.RemoveMiddleData(data)
	case Random:
		shuffle.RandomData(data, src)
	}
}
