package routine

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a step either as a scalar ("riffle", "put_back 3")
// or as a single-key mapping ({put_back: 3}).
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		st, err := parseStep(value.Value)
		if err != nil {
			return errors.WithMessagef(err, "line %d", value.Line)
		}
		*s = st
		return nil

	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return errors.Errorf("routine: line %d: a step mapping must have exactly one key", value.Line)
		}
		kind, err := ParseKind(value.Content[0].Value)
		if err != nil {
			return errors.WithMessagef(err, "line %d", value.Line)
		}
		var amount int
		if err := value.Content[1].Decode(&amount); err != nil {
			return errors.Wrapf(ErrBadAmount, "line %d: %v", value.Content[1].Line, err)
		}
		st := Step{Kind: kind, Amount: amount}
		if err := st.Validate(); err != nil {
			return errors.WithMessagef(err, "line %d", value.Line)
		}
		*s = st
		return nil

	default:
		return errors.Errorf("routine: line %d: a step must be a name or a single-key mapping", value.Line)
	}
}

// MarshalYAML emits the scalar form, or {put_back: N} for cuts.
func (s Step) MarshalYAML() (interface{}, error) {
	if s.Kind == PutBack {
		return map[string]int{s.Kind.String(): s.Amount}, nil
	}
	return s.Kind.String(), nil
}

// Load decodes and validates a YAML routine document:
//
//	repeat: 4
//	steps:
//	  - riffle
//	  - put_back: 3
//	  - reverse
func Load(r io.Reader) (Routine, error) {
	var rt Routine
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rt); err != nil {
		if errors.Is(err, io.EOF) {
			return Routine{}, ErrEmptyRoutine
		}
		return Routine{}, errors.Wrap(err, "decode routine")
	}
	if err := rt.Validate(); err != nil {
		return Routine{}, err
	}
	return rt, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (Routine, error) {
	f, err := os.Open(path)
	if err != nil {
		return Routine{}, errors.Wrap(err, "open routine")
	}
	defer f.Close()

	rt, err := Load(f)
	if err != nil {
		return Routine{}, errors.WithMessage(err, path)
	}
	return rt, nil
}

// Encode writes r as a YAML document that Load reads back.
func Encode(w io.Writer, r Routine) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode routine")
	}
	return errors.Wrap(enc.Close(), "encode routine")
}
