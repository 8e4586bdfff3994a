package audit

// levenshtein holds the two DP rows reused across pairs of one scan.
type levenshtein struct {
	prev, curr []int
}

// distance returns the Levenshtein distance between two symbol sequences.
func (l *levenshtein) distance(a, b []int32) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	n := len(b)
	if cap(l.prev) < n+1 {
		l.prev = make([]int, n+1)
		l.curr = make([]int, n+1)
	}
	prev, curr := l.prev[:n+1], l.curr[:n+1]
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[n]
}

// EditDistance returns the Levenshtein distance between two words counted in
// grapheme clusters: the fewest single-character insertions, deletions or
// substitutions that turn a into b.
func EditDistance(a, b string) int {
	s := segment([]string{a, b})
	var l levenshtein
	return l.distance(s.seqs[0], s.seqs[1])
}

// ShortestEditDistance returns the smallest edit distance between two
// value-distinct words. Every unordered pair is visited. Lists without two
// distinct words yield 0.
func ShortestEditDistance(list []string) int {
	d, _ := segment(list).shortestEditDistance(1)
	return d
}

func (s *symbols) shortestEditDistance(workers int) (int, bool) {
	// Distinct words are at least one edit apart; a zero would only come
	// from identical entries, which are skipped.
	const floor = 1
	d, ok := minChunk(len(s.seqs), workers, floor, func(lo, hi int, stop func() bool) (int, bool) {
		var l levenshtein
		best, found := 0, false
		for i := lo; i < hi; i++ {
			if stop() {
				break
			}
			for j := i + 1; j < len(s.seqs); j++ {
				if s.words[i] == s.words[j] {
					continue
				}
				d := l.distance(s.seqs[i], s.seqs[j])
				if !found || d < best {
					best, found = d, true
				}
				if best <= floor {
					return best, true
				}
			}
		}
		return best, found
	})
	if !ok {
		return 0, false
	}
	return d, true
}

// MeanEditDistance returns the mean edit distance over every unordered pair
// of positions, duplicates included. Lists shorter than two words yield 0.
func MeanEditDistance(list []string) float64 {
	return segment(list).meanEditDistance(1)
}

func (s *symbols) meanEditDistance(workers int) float64 {
	sum, count := sumChunk(len(s.seqs), workers, func(lo, hi int) (int64, int64) {
		var l levenshtein
		var sum, count int64
		for i := lo; i < hi; i++ {
			for j := i + 1; j < len(s.seqs); j++ {
				sum += int64(l.distance(s.seqs[i], s.seqs[j]))
				count++
			}
		}
		return sum, count
	})
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
