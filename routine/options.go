package routine

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/shuffler/shuffle"
)

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when Run
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize Run.
type Options struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// Source feeds Random steps. Required only when the routine has one.
	Source shuffle.Source

	// OnStep is called after every applied step with the zero-based round
	// and step index.
	OnStep func(round, index int, step Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no Source and a
// no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(int, int, Step) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSource sets the Source used by Random steps. A nil src is an option
// violation.
func WithSource(src shuffle.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = errors.Wrap(ErrOptionViolation, "nil Source")
			return
		}
		o.Source = src
	}
}

// WithSeed installs a deterministic shuffle.NewRand(seed) Source.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Source = shuffle.NewRand(seed)
	}
}

// WithOnStep registers a callback run after each step.
func WithOnStep(fn func(round, index int, step Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
