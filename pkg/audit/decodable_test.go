package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniquelyDecodable(t *testing.T) {
	tests := []struct {
		name string
		list []string
		want bool
	}{
		{"prefix free", []string{"a", "b"}, true},
		{"concatenation of two words", []string{"a", "ab", "b"}, false},
		// Not prefix free, but suffix free, so every string parses one way.
		{"prefix pair only", []string{"a", "ab"}, true},
		{"classic decodable non-prefix code", []string{"0", "01", "11"}, true},
		{"found in the second round", []string{"a", "ab", "bab"}, false},
		{"duplicates collapse", []string{"abc", "abc"}, true},
		{"empty word", []string{"", "a"}, false},
		{"dice words", []string{"ace", "acetone", "tone", "one"}, false},
		{"graphemes", []string{"\u00e9", "e\u0301"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsUniquelyDecodable(tt.list)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUniquelyDecodableBounds(t *testing.T) {
	_, err := IsUniquelyDecodable([]string{"a", "ab", "bab"}, WithMaxDecodabilityRounds(1))
	assert.ErrorIs(t, err, ErrResourceExhausted, "needs a second round")

	got, err := IsUniquelyDecodable([]string{"a", "ab", "bab"}, WithMaxDecodabilityRounds(2))
	require.NoError(t, err)
	assert.False(t, got)

	_, err = IsUniquelyDecodable([]string{"a", "ab", "ac", "x"}, WithMaxDanglingSuffixes(1))
	assert.ErrorIs(t, err, ErrResourceExhausted, "two dangling suffixes in the first set")

	got, err = IsUniquelyDecodable([]string{"a", "b"}, WithMaxDecodabilityRounds(1), WithMaxDanglingSuffixes(1))
	require.NoError(t, err)
	assert.True(t, got, "prefix-free lists never start a round")
}
