package routine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for routine parsing, validation and execution.
var (
	// ErrEmptyRoutine is returned when a routine has no steps.
	ErrEmptyRoutine = errors.New("routine: no steps")

	// ErrUnknownKind is returned for an unrecognized step name.
	ErrUnknownKind = errors.New("routine: unknown step")

	// ErrBadAmount is returned when a put_back amount is missing or malformed.
	ErrBadAmount = errors.New("routine: put_back needs an integer amount")

	// ErrAmountOnly is returned when an amount is attached to a step that
	// takes none.
	ErrAmountOnly = errors.New("routine: only put_back takes an amount")

	// ErrNoSource is returned when a routine with a random step runs without
	// a Source.
	ErrNoSource = errors.New("routine: random step needs a source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("routine: invalid option supplied")
)

// Kind identifies one shuffle primitive.
type Kind int

const (
	// Riffle is a perfect interleave of the two halves.
	Riffle Kind = iota + 1
	// PutBack moves the top Amount cards to the bottom.
	PutBack
	// Reverse flips the deck.
	Reverse
	// RemoveMiddle moves the last quarter in front of the middle quarters.
	RemoveMiddle
	// Random is a full-range swap pass driven by a Source.
	Random
)

var kindNames = map[Kind]string{
	Riffle:       "riffle",
	PutBack:      "put_back",
	Reverse:      "reverse",
	RemoveMiddle: "remove_middle",
	Random:       "random",
}

// String returns the canonical step name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind maps a step name to its Kind. Matching ignores case and accepts
// '-' in place of '_' ("Put-Back").
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "-", "_")
	for k, s := range kindNames {
		if s == norm {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Step is one primitive applied to the deck. Amount is used by PutBack only.
type Step struct {
	Kind   Kind
	Amount int
}

// String renders the step in the text form accepted by Parse.
func (s Step) String() string {
	if s.Kind == PutBack {
		return fmt.Sprintf("%s %d", s.Kind, s.Amount)
	}
	return s.Kind.String()
}

// Validate reports whether the step is well formed.
func (s Step) Validate() error {
	if _, ok := kindNames[s.Kind]; !ok {
		return errors.Wrap(ErrUnknownKind, s.Kind.String())
	}
	if s.Kind != PutBack && s.Amount != 0 {
		return errors.Wrapf(ErrAmountOnly, "%s %d", s.Kind, s.Amount)
	}
	return nil
}

// Routine is an ordered list of steps, replayed Repeat times.
// Repeat <= 0 means a single round.
type Routine struct {
	Steps  []Step `yaml:"steps"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// Rounds returns how many times Steps will be applied.
func (r Routine) Rounds() int {
	if r.Repeat <= 0 {
		return 1
	}
	return r.Repeat
}

// NeedsSource reports whether any step consumes random draws.
func (r Routine) NeedsSource() bool {
	for _, s := range r.Steps {
		if s.Kind == Random {
			return true
		}
	}
	return false
}

// Validate checks every step and rejects empty routines.
func (r Routine) Validate() error {
	if len(r.Steps) == 0 {
		return ErrEmptyRoutine
	}
	for i, s := range r.Steps {
		if err := s.Validate(); err != nil {
			return errors.WithMessagef(err, "step %d", i+1)
		}
	}
	return nil
}

// String renders the steps as "riffle; put_back 3; reverse".
// Repeat is not part of the text form.
func (r Routine) String() string {
	parts := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}
