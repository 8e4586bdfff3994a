package audit

import (
	"math"
	"math/big"
)

const (
	// bruteForceAlphabet is the lowercase Latin alphabet an attacker would
	// enumerate, roughly 4.7 bits per character.
	bruteForceAlphabet = 26

	// shannonBase is 2^2.6 to two significant digits: Shannon's 1951
	// estimate of about 2.6 bits of entropy per character of English.
	shannonBase = 6.1
)

// EntropyPerWord returns log2(listLength), the bits of entropy contributed by
// one word drawn uniformly from a list of that length.
func EntropyPerWord(listLength int) (float64, error) {
	if listLength <= 0 {
		return 0, ErrInvalidInput
	}
	return math.Log2(float64(listLength)), nil
}

// IsAboveBruteForceLine reports whether listLength <= 26^shortestWordLength.
// When it holds, guessing every lowercase string of the shortest word's
// length is at least as much work as guessing a word from the list, so the
// per-word entropy estimate is not an overestimate. The power is computed
// in integers.
func IsAboveBruteForceLine(listLength, shortestWordLength int) bool {
	bound := new(big.Int).Exp(big.NewInt(bruteForceAlphabet), big.NewInt(int64(shortestWordLength)), nil)
	return big.NewInt(int64(listLength)).Cmp(bound) <= 0
}

// IsAboveShannonLine reports whether listLength <= 6.1^shortestWordLength,
// a stricter line than IsAboveBruteForceLine.
func IsAboveShannonLine(listLength, shortestWordLength int) bool {
	return float64(listLength) <= math.Pow(shannonBase, float64(shortestWordLength))
}

// AssumedEntropyPerCharacter is the worst case per-character entropy: every
// word of the passphrase happens to be a shortest word. A zero shortest length
// yields 0.
func AssumedEntropyPerCharacter(entropyPerWord float64, shortestWordLength int) float64 {
	if shortestWordLength == 0 {
		return 0
	}
	return entropyPerWord / float64(shortestWordLength)
}

// EfficiencyPerCharacter is the average case per-character entropy. Pass the
// full precision mean, not the value reported in ListAttributes. A zero mean
// yields 0.
func EfficiencyPerCharacter(entropyPerWord, meanWordLength float64) float64 {
	if meanWordLength == 0 {
		return 0
	}
	return entropyPerWord / meanWordLength
}

// KraftMcmillanOutcome is the result of the Kraft–McMillan check.
type KraftMcmillanOutcome int

const (
	Satisfied KraftMcmillanOutcome = iota
	NotSatisfied
)

func (k KraftMcmillanOutcome) String() string {
	switch k {
	case Satisfied:
		return "satisfied"
	case NotSatisfied:
		return "not satisfied"
	default:
		return "unknown"
	}
}

// SatisfiesKraftMcmillan checks the McMillan inequality for the list read as
// a code over its own alphabet (the distinct grapheme clusters it uses):
//
//	Σ D^(-len(w)) <= 1
//
// This is necessary for the list to admit a uniquely decodable code.
func SatisfiesKraftMcmillan(list []string) KraftMcmillanOutcome {
	return segment(list).kraftMcmillan()
}

// kraftMcmillan evaluates the inequality exactly: with L the longest length,
// multiplying through by D^L gives Σ D^(L-len(w)) <= D^L.
func (s *symbols) kraftMcmillan() KraftMcmillanOutcome {
	longest := 0
	byLength := make(map[int]int64)
	for _, seq := range s.seqs {
		byLength[len(seq)]++
		if len(seq) > longest {
			longest = len(seq)
		}
	}

	d := big.NewInt(int64(s.alphabet))
	sum := new(big.Int)
	term := new(big.Int)
	for l, count := range byLength {
		term.Exp(d, big.NewInt(int64(longest-l)), nil)
		term.Mul(term, big.NewInt(count))
		sum.Add(sum, term)
	}
	bound := new(big.Int).Exp(d, big.NewInt(int64(longest)), nil)
	if sum.Cmp(bound) <= 0 {
		return Satisfied
	}
	return NotSatisfied
}
