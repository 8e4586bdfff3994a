package audit

import "fmt"

// IsUniquelyDecodable reports whether every concatenation of words from the
// list splits back into words in exactly one way. It runs the
// Sardinas–Patterson procedure over the distinct values of the list (list
// order and repeated entries do not matter) and is the most expensive check
// in this package. Bound it with WithMaxDecodabilityRounds or
// WithMaxDanglingSuffixes; exceeding a bound returns ErrResourceExhausted.
//
//	IsUniquelyDecodable([]string{"a", "b"})       // true
//	IsUniquelyDecodable([]string{"a", "ab", "b"}) // false: "ab" = "a"+"b"
func IsUniquelyDecodable(list []string, opts ...Option) (bool, error) {
	o := newOptions(opts)
	return segment(list).uniquelyDecodable(o.MaxDecodabilityRounds, o.MaxDanglingSuffixes)
}

// uniquelyDecodable implements Sardinas–Patterson on symbol sequences.
//
//  1. S1 holds the dangling suffixes w[len(u):] for every pair of distinct
//     codewords where u is a proper prefix of w.
//  2. S(n+1) holds, for each tail t in S(n) and codeword w, the remainder
//     w[len(t):] when t is a prefix of w, and t[len(w):] when w is a proper
//     prefix of t.
//  3. An empty remainder (a tail equal to a codeword) means two different
//     parsings exist.
//
// Every tail is a suffix of some codeword, so the set of tails seen so far
// can only grow to a finite size; the procedure stops when a round adds
// nothing new. maxRounds and maxSuffixes of 0 mean unbounded.
func (s *symbols) uniquelyDecodable(maxRounds, maxSuffixes int) (bool, error) {
	codewords := make([][]int32, 0, len(s.seqs))
	distinct := make(map[string]struct{}, len(s.seqs))
	for _, seq := range s.seqs {
		key := seqKey(seq)
		if _, ok := distinct[key]; ok {
			continue
		}
		distinct[key] = struct{}{}
		if len(seq) == 0 {
			// The empty word can be inserted anywhere in a concatenation.
			return false, nil
		}
		codewords = append(codewords, seq)
	}

	seen := make(map[string]struct{})
	var current [][]int32
	add := func(tail []int32) {
		key := seqKey(tail)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		current = append(current, tail)
	}

	for i, u := range codewords {
		for j, w := range codewords {
			if i != j && len(u) < len(w) && hasPrefix(w, u) {
				add(w[len(u):])
			}
		}
	}

	for round := 1; len(current) > 0; round++ {
		if maxRounds > 0 && round > maxRounds {
			return false, fmt.Errorf("%w: unique decodability still undecided after %d rounds", ErrResourceExhausted, maxRounds)
		}
		if maxSuffixes > 0 && len(seen) > maxSuffixes {
			return false, fmt.Errorf("%w: more than %d dangling suffixes", ErrResourceExhausted, maxSuffixes)
		}

		tails := current
		current = nil
		for _, t := range tails {
			for _, w := range codewords {
				switch {
				case hasPrefix(w, t):
					if len(w) == len(t) {
						return false, nil
					}
					add(w[len(t):])
				case hasPrefix(t, w):
					add(t[len(w):])
				}
			}
		}
	}
	return true, nil
}
