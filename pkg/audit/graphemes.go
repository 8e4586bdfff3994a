package audit

import (
	"encoding/binary"

	"github.com/rivo/uniseg"
)

// CharacterCount returns the number of grapheme clusters in word.
func CharacterCount(word string) int {
	return uniseg.GraphemeClusterCount(word)
}

// symbols is a list segmented into grapheme clusters. Each distinct cluster
// is interned as a small integer so pairwise scans compare ints instead of
// re-segmenting strings for every pair.
type symbols struct {
	words []string
	seqs  [][]int32
	// alphabet is the number of distinct grapheme clusters across the list.
	alphabet int
}

func segment(list []string) *symbols {
	ids := make(map[string]int32)
	s := &symbols{
		words: list,
		seqs:  make([][]int32, len(list)),
	}
	for i, word := range list {
		seq := make([]int32, 0, len(word))
		g := uniseg.NewGraphemes(word)
		for g.Next() {
			cluster := g.Str()
			id, ok := ids[cluster]
			if !ok {
				id = int32(len(ids))
				ids[cluster] = id
			}
			seq = append(seq, id)
		}
		s.seqs[i] = seq
	}
	s.alphabet = len(ids)
	return s
}

// length returns the grapheme count of the i-th word.
func (s *symbols) length(i int) int {
	return len(s.seqs[i])
}

func hasPrefix(seq, prefix []int32) bool {
	if len(prefix) > len(seq) {
		return false
	}
	for i, c := range prefix {
		if seq[i] != c {
			return false
		}
	}
	return true
}

func hasSuffix(seq, suffix []int32) bool {
	if len(suffix) > len(seq) {
		return false
	}
	off := len(seq) - len(suffix)
	for i, c := range suffix {
		if seq[off+i] != c {
			return false
		}
	}
	return true
}

// seqKey encodes a symbol sequence as a map key.
func seqKey(seq []int32) string {
	buf := make([]byte, 4*len(seq))
	for i, c := range seq {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(c))
	}
	return string(buf)
}
