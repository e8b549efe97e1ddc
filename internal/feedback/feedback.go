// internal/feedback/feedback.go
//
// Textual encoding of accumulated feedback, shared by CLI flags, environment
// variables and the JSON API.
//
// Encoding (Spec):
//   Greens:  five characters, a letter or one of ". _ ?" for unknown.
//            "" means no greens.            e.g. "..a.k"
//   Yellows: five comma-separated groups of letters, one per position.
//            "" means no yellows.           e.g. ",,a,tn,t"
//   Greys:   letters known to be absent.    e.g. "roecli"
//
// Parsing fails fast: malformed fields wrap ErrInvalidFeedback, and feedback
// that contradicts itself wraps solver.ErrContradictoryFeedback.

package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Markaronin/wordle-solver/internal/game"
	"github.com/Markaronin/wordle-solver/internal/solver"
)

// ErrInvalidFeedback is wrapped by every encoding error.
var ErrInvalidFeedback = errors.New("invalid feedback")

// Spec is feedback in its textual form.
type Spec struct {
	Greens  string `json:"greens"`
	Yellows string `json:"yellows"`
	Greys   string `json:"greys"`
}

// IsZero reports whether the spec carries no knowledge at all.
func (s Spec) IsZero() bool {
	return s.Greens == "" && s.Yellows == "" && s.Greys == ""
}

func (s Spec) String() string {
	return fmt.Sprintf("greens=%q yellows=%q greys=%q", s.Greens, s.Yellows, s.Greys)
}

// Parse decodes and validates a Spec.
func Parse(s Spec) (solver.Feedback, error) {
	var fb solver.Feedback

	if g := strings.ToLower(strings.TrimSpace(s.Greens)); g != "" {
		if len(g) != solver.WordLength {
			return fb, fieldErr("greens", s.Greens, fmt.Sprintf("want %d characters, got %d", solver.WordLength, len(g)))
		}
		for i := 0; i < solver.WordLength; i++ {
			c := g[i]
			switch {
			case c == '.' || c == '_' || c == '?':
			case c >= 'a' && c <= 'z':
				fb.Greens[i] = c
			default:
				return fb, fieldErr("greens", s.Greens, fmt.Sprintf("character %q at position %d", c, i+1))
			}
		}
	}

	if y := strings.ToLower(strings.TrimSpace(s.Yellows)); y != "" {
		groups := strings.Split(y, ",")
		if len(groups) != solver.WordLength {
			return fb, fieldErr("yellows", s.Yellows, fmt.Sprintf("want %d comma-separated groups, got %d", solver.WordLength, len(groups)))
		}
		for i, group := range groups {
			set, err := letters(strings.TrimSpace(group))
			if err != nil {
				return fb, fieldErr("yellows", s.Yellows, fmt.Sprintf("group %d: %v", i+1, err))
			}
			fb.Yellows[i] = set
		}
	}

	set, err := letters(strings.ToLower(strings.TrimSpace(s.Greys)))
	if err != nil {
		return fb, fieldErr("greys", s.Greys, err.Error())
	}
	fb.Greys = set

	if err := fb.Validate(); err != nil {
		return fb, err
	}
	return fb, nil
}

// Format renders fb canonically: letters sorted within each group, empty
// fields omitted. Parse(Format(fb)) == fb for any valid fb.
func Format(fb solver.Feedback) Spec {
	var s Spec

	greens := make([]byte, solver.WordLength)
	anyGreen := false
	for i, c := range fb.Greens {
		if c == 0 {
			greens[i] = '.'
			continue
		}
		greens[i] = c
		anyGreen = true
	}
	if anyGreen {
		s.Greens = string(greens)
	}

	groups := make([]string, solver.WordLength)
	anyYellow := false
	for i, ys := range fb.Yellows {
		groups[i] = ys.String()
		anyYellow = anyYellow || !ys.Empty()
	}
	if anyYellow {
		s.Yellows = strings.Join(groups, ",")
	}

	s.Greys = fb.Greys.String()
	return s
}

// Accumulate layers one played round (guess and its true marks) onto fb.
//
// A miss for a letter that is hit or present elsewhere in the same guess only
// says "no further copy here", so it is recorded as a yellow at that position
// rather than a grey; true marks therefore never make the feedback
// contradictory.
func Accumulate(fb solver.Feedback, guess solver.Word, marks []game.Mark) (solver.Feedback, error) {
	if len(marks) != solver.WordLength {
		return fb, fmt.Errorf("%w: %d marks for %s", ErrInvalidFeedback, len(marks), guess)
	}

	var present solver.LetterSet
	for i, m := range marks {
		if m == game.MarkHit || m == game.MarkPresent {
			present = present.With(guess[i])
		}
	}

	for i, m := range marks {
		c := guess[i]
		switch m {
		case game.MarkHit:
			fb.Greens[i] = c
		case game.MarkPresent:
			fb.Yellows[i] = fb.Yellows[i].With(c)
		case game.MarkMiss:
			if present.Has(c) {
				if fb.Greens[i] != c {
					fb.Yellows[i] = fb.Yellows[i].With(c)
				}
				continue
			}
			fb.Greys = fb.Greys.With(c)
		default:
			return fb, fmt.Errorf("%w: unknown mark %q at position %d", ErrInvalidFeedback, m, i+1)
		}
	}
	return fb, nil
}

// letters turns a run of lowercase letters into a set.
func letters(s string) (solver.LetterSet, error) {
	var set solver.LetterSet
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("character %q is not a letter", c)
		}
		set = set.With(c)
	}
	return set, nil
}

func fieldErr(field, value, reason string) error {
	return fmt.Errorf("%w: %s %q: %s", ErrInvalidFeedback, field, value, reason)
}
