package audit

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ShortestWord returns the word with the fewest grapheme clusters. When
// several words share the minimum length, the last one in list order wins.
func ShortestWord(list []string) (string, error) {
	i, err := extremeIndex(list, func(n, best int) bool { return n <= best })
	if err != nil {
		return "", err
	}
	return list[i], nil
}

// LongestWord returns the word with the most grapheme clusters. When several
// words share the maximum length, the last one in list order wins.
func LongestWord(list []string) (string, error) {
	i, err := extremeIndex(list, func(n, best int) bool { return n >= best })
	if err != nil {
		return "", err
	}
	return list[i], nil
}

// extremeIndex returns the index of the last word whose length beats or ties
// every earlier candidate according to better.
func extremeIndex(list []string, better func(n, best int) bool) (int, error) {
	if len(list) == 0 {
		return 0, ErrInvalidInput
	}
	idx := 0
	best := CharacterCount(list[0])
	for i := 1; i < len(list); i++ {
		if n := CharacterCount(list[i]); better(n, best) {
			idx, best = i, n
		}
	}
	return idx, nil
}

// MeanWordLength returns the mean grapheme count of the list at 32-bit
// precision. The value is for display; derived metrics use the full
// precision mean.
func MeanWordLength(list []string) (float32, error) {
	if len(list) == 0 {
		return 0, ErrInvalidInput
	}
	total := 0
	for _, word := range list {
		total += CharacterCount(word)
	}
	return float32(total) / float32(len(list)), nil
}

func (s *symbols) meanWordLength() float64 {
	total := 0
	for _, seq := range s.seqs {
		total += len(seq)
	}
	return float64(total) / float64(len(s.seqs))
}

// HasBlankLines reports whether any entry is empty or whitespace only.
func HasBlankLines(list []string) bool {
	for _, word := range list {
		if strings.TrimSpace(word) == "" {
			return true
		}
	}
	return false
}

// HasStartingOrTrailingSpace reports whether any entry has leading or
// trailing whitespace.
func HasStartingOrTrailingSpace(list []string) bool {
	for _, word := range list {
		if strings.TrimSpace(word) != word {
			return true
		}
	}
	return false
}

// HasNonASCIICharacters reports whether any entry contains a byte outside
// the ASCII range.
func HasNonASCIICharacters(list []string) bool {
	for _, word := range list {
		for i := 0; i < len(word); i++ {
			if word[i] > 0x7f {
				return true
			}
		}
	}
	return false
}

// HasDuplicatesExact reports whether two entries are byte-for-byte equal.
func HasDuplicatesExact(list []string) bool {
	seen := make(map[string]struct{}, len(list))
	for _, word := range list {
		if _, ok := seen[word]; ok {
			return true
		}
		seen[word] = struct{}{}
	}
	return false
}

// HasDuplicatesFuzzy reports whether two entries collide once lower-cased
// and trimmed, so "Cat" and "cat " count as duplicates.
func HasDuplicatesFuzzy(list []string) bool {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(list))
	for _, word := range list {
		key := fuzzyKey(lower, word)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// CountUniqueWords returns the number of distinct entries after lower-casing
// and trimming each one.
func CountUniqueWords(list []string) int {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(list))
	for _, word := range list {
		seen[fuzzyKey(lower, word)] = struct{}{}
	}
	return len(seen)
}

func fuzzyKey(lower cases.Caser, word string) string {
	return strings.TrimSpace(lower.String(word))
}

// normalization forms in the order a word is classified against them.
var normForms = []norm.Form{norm.NFC, norm.NFD, norm.NFKC, norm.NFKD}

// HasUniformUnicodeNormalization reports whether every word is in the same
// Unicode normalization form. Each word is assigned the first of NFC, NFD,
// NFKC and NFKD it already satisfies (or none of them); the list is uniform
// when all words share one assignment. Plain ASCII is NFC, so a list of
// decomposed (NFD) words that also contains plain-ASCII words is reported as
// mixed: the ASCII words count as NFC and the accented ones as NFD.
func HasUniformUnicodeNormalization(list []string) bool {
	first := -2
	for _, word := range list {
		form := -1
		for i, f := range normForms {
			if f.IsNormalString(word) {
				form = i
				break
			}
		}
		if first == -2 {
			first = form
		} else if form != first {
			return false
		}
	}
	return true
}
