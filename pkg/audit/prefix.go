package audit

// HasPrefixWords reports whether some word is a proper prefix of another
// word with a different value. Identical entries are never compared with
// each other.
func HasPrefixWords(list []string) bool {
	return segment(list).anyPair(1, hasPrefix)
}

// HasSuffixWords reports whether some word is a proper suffix of another
// word with a different value.
func HasSuffixWords(list []string) bool {
	return segment(list).anyPair(1, hasSuffix)
}

// anyPair reports whether match(a, b) holds for some ordered pair of
// value-distinct words.
func (s *symbols) anyPair(workers int, match func(a, b []int32) bool) bool {
	return anyChunk(len(s.seqs), workers, func(lo, hi int, stop func() bool) bool {
		for i := lo; i < hi; i++ {
			if stop() {
				return false
			}
			for j := range s.seqs {
				if s.words[i] != s.words[j] && match(s.seqs[i], s.seqs[j]) {
					return true
				}
			}
		}
		return false
	})
}

// FirstDifferingIndex returns the zero-based grapheme index of the first
// position where a and b differ. When one word is a prefix of the other the
// shorter word's length is returned.
//
//	FirstDifferingIndex("hello", "help") == 3
//	FirstDifferingIndex("zip", "zippy") == 3
func FirstDifferingIndex(a, b string) int {
	s := segment([]string{a, b})
	return firstDifferingIndex(s.seqs[0], s.seqs[1])
}

func firstDifferingIndex(a, b []int32) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// LongestSharedPrefix returns the longest prefix, in grapheme clusters,
// shared by two value-distinct words of the list. longestWordLength is the
// grapheme length of the longest word; no distinct pair can share more than
// longestWordLength-1 characters, so the scan stops once that is found.
// Lists without two distinct words yield 0.
func LongestSharedPrefix(list []string, longestWordLength int) int {
	return segment(list).longestSharedPrefix(longestWordLength, 1)
}

func (s *symbols) longestSharedPrefix(longestWordLength, workers int) int {
	bound := longestWordLength - 1
	return maxChunk(len(s.seqs), workers, bound, func(lo, hi int, stop func() bool) int {
		longest := 0
		for i := lo; i < hi; i++ {
			if stop() {
				break
			}
			for j := i + 1; j < len(s.seqs); j++ {
				if s.words[i] == s.words[j] {
					continue
				}
				if n := firstDifferingIndex(s.seqs[i], s.seqs[j]); n > longest {
					longest = n
					if longest >= bound {
						return longest
					}
				}
			}
		}
		return longest
	})
}
