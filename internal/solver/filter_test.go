package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterAnswers(t *testing.T) {
	list := words(t, testAnswers...)

	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{"no knowledge keeps everything", NewState(), testAnswers},
		{"example feedback", FromFeedback(exampleFeedback()), []string{"tangy"}},
		{"green k at 5", FromFeedback(Feedback{Greens: [WordLength]byte{0, 0, 0, 0, 'k'}}), []string{"stank", "blank", "thank", "shank"}},
		{"everything grey", FromFeedback(Feedback{Greys: FullLetterSet}), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strings(FilterAnswers(tt.state, list))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterAnswers() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), CountMatches(tt.state, list))
		})
	}
}

func TestFilterAnswers_PreservesOrderAndInput(t *testing.T) {
	list := words(t, "shank", "stank", "thank", "blank")
	orig := append([]Word(nil), list...)

	got := FilterAnswers(FromFeedback(Feedback{Greys: LettersOf("b")}), list)

	assert.Equal(t, []string{"shank", "stank", "thank"}, Strings(got))
	assert.Equal(t, orig, list, "input must not be modified")
}
