package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"cafe", "caf\u00e9", 1},
		{"caf\u00e9", "cafe\u0301", 1},
		{"\U0001F44D\U0001F3FD", "\U0001F44D", 1},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, EditDistance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestEditDistanceIdentity(t *testing.T) {
	for _, w := range []string{"", "a", "passphrase", "na\u00efve", "\U0001F1FA\U0001F1F8"} {
		assert.Equal(t, 0, EditDistance(w, w), "word %q", w)
	}
}

func TestShortestEditDistance(t *testing.T) {
	tests := []struct {
		name string
		list []string
		want int
	}{
		{"single word", []string{"alone"}, 0},
		{"duplicates only", []string{"same", "same"}, 0},
		{"duplicates skipped", []string{"cat", "hat", "cat"}, 1},
		{"closest pair in second half", []string{"alpha", "bravo", "delta", "deltas"}, 1},
		{"far apart", []string{"aaaa", "bbbb", "cccc"}, 4},
		{"mixed", []string{"abandon", "ability", "able", "about"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortestEditDistance(tt.list))
		})
	}
}

func TestMeanEditDistance(t *testing.T) {
	assert.Equal(t, 0.0, MeanEditDistance(nil))
	assert.Equal(t, 0.0, MeanEditDistance([]string{"alone"}))
	assert.Equal(t, 3.0, MeanEditDistance([]string{"kitten", "sitting"}))
	// Pairs by position: (a,b)=1, (a,a)=0, (b,a)=1.
	assert.InDelta(t, 2.0/3.0, MeanEditDistance([]string{"a", "b", "a"}), 1e-12)
}
