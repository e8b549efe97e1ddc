// internal/daily/daily.go
//
// Deterministic "answer of the day" used by self-play: every run on the same
// UTC date with the same salt and answer list plays the same word.
//
// The index is HMAC-SHA256(salt, "YYYY-MM-DD"), first 8 bytes read as a
// big-endian uint64, modulo the number of answers.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"

	"github.com/Markaronin/wordle-solver/internal/solver"
)

// ErrNoAnswers is returned when the picker has nothing to choose from.
var ErrNoAnswers = errors.New("daily: empty answer list")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker chooses the answer of the day from a fixed list.
type Picker struct {
	salt    []byte
	answers []solver.Word
}

func NewPicker(salt string, answers []solver.Word) *Picker {
	return &Picker{salt: []byte(salt), answers: answers}
}

// Index returns the position in the answer list for day.
func (p *Picker) Index(day time.Time) (int, error) {
	if len(p.answers) == 0 {
		return 0, ErrNoAnswers
	}
	mac := hmac.New(sha256.New, p.salt)
	mac.Write([]byte(DateKey(day)))
	n := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(n % uint64(len(p.answers))), nil
}

// Answer returns the answer for day.
func (p *Picker) Answer(day time.Time) (solver.Word, error) {
	i, err := p.Index(day)
	if err != nil {
		return solver.Word{}, err
	}
	return p.answers[i], nil
}
