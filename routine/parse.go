package routine

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads the text form of a routine.
//
// Grammar (informal):
//
//	routine = step { sep step }
//	sep     = ";" | "," | newline
//	step    = name [ ( ":" | " " ) amount | "(" amount ")" ]
//
// Everything after '#' on a line is a comment. Blank steps are skipped.
// The result is validated; Repeat is left at zero (one round).
//
// Example:
//
//	riffle; put_back 3; reverse
//	riffle, put_back:3, reverse   # same routine
func Parse(text string) (Routine, error) {
	var r Routine
	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.FieldsFunc(line, isSeparator) {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			st, err := parseStep(tok)
			if err != nil {
				return Routine{}, errors.WithMessagef(err, "step %d", len(r.Steps)+1)
			}
			r.Steps = append(r.Steps, st)
		}
	}
	if err := r.Validate(); err != nil {
		return Routine{}, err
	}
	return r, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(text string) Routine {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

func isSeparator(r rune) bool {
	return r == ';' || r == ','
}

// parseStep reads one "name", "name N", "name:N" or "name(N)" token.
func parseStep(tok string) (Step, error) {
	name, arg := tok, ""
	if i := strings.IndexAny(tok, ":( \t"); i >= 0 {
		name, arg = tok[:i], strings.TrimSpace(tok[i+1:])
		if tok[i] == '(' {
			if !strings.HasSuffix(arg, ")") {
				return Step{}, errors.Wrapf(ErrBadAmount, "unbalanced parenthesis in %q", tok)
			}
			arg = strings.TrimSpace(strings.TrimSuffix(arg, ")"))
		}
	}

	kind, err := ParseKind(name)
	if err != nil {
		return Step{}, err
	}
	if arg == "" {
		if kind == PutBack {
			return Step{}, errors.Wrapf(ErrBadAmount, "%q", tok)
		}
		return Step{Kind: kind}, nil
	}
	if kind != PutBack {
		return Step{}, errors.Wrapf(ErrAmountOnly, "%q", tok)
	}
	amount, err := strconv.Atoi(arg)
	if err != nil {
		return Step{}, errors.Wrapf(ErrBadAmount, "%q", tok)
	}
	return Step{Kind: kind, Amount: amount}, nil
}
