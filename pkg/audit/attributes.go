package audit

import (
	"encoding/json"
	"fmt"
)

// ListAttributes is the result of auditing one word list. It is a snapshot:
// ComputeAttributes builds it once and nothing updates it afterwards.
type ListAttributes struct {
	ListLength          int     `json:"list_length"`
	MeanWordLength      float32 `json:"mean_word_length"`
	EntropyPerWord      float64 `json:"entropy_per_word"`
	ShortestWordLength  int     `json:"shortest_word_length"`
	ShortestWordExample string  `json:"shortest_word_example"`
	LongestWordLength   int     `json:"longest_word_length"`
	LongestWordExample  string  `json:"longest_word_example"`

	HasDuplicatesExact             bool `json:"has_duplicates_exact"`
	HasDuplicatesFuzzy             bool `json:"has_duplicates_fuzzy"`
	HasBlankLines                  bool `json:"has_blank_lines"`
	UniqueWords                    int  `json:"unique_words"`
	HasStartingOrTrailingSpace     bool `json:"has_starting_or_trailing_space"`
	HasNonASCIICharacters          bool `json:"has_non_ascii_characters"`
	HasUniformUnicodeNormalization bool `json:"has_uniform_unicode_normalization"`

	IsFreeOfPrefixWords bool `json:"is_free_of_prefix_words"`
	IsFreeOfSuffixWords bool `json:"is_free_of_suffix_words"`
	IsUniquelyDecodable bool `json:"is_uniquely_decodable"`

	EfficiencyPerCharacter     float64              `json:"efficiency_per_character"`
	AssumedEntropyPerCharacter float64              `json:"assumed_entropy_per_character"`
	IsAboveBruteForceLine      bool                 `json:"is_above_brute_force_line"`
	IsAboveShannonLine         bool                 `json:"is_above_shannon_line"`
	ShortestEditDistance       int                  `json:"shortest_edit_distance"`
	MeanEditDistance           float64              `json:"mean_edit_distance"`
	LongestSharedPrefix        int                  `json:"longest_shared_prefix"`
	UniqueCharacterPrefix      int                  `json:"unique_character_prefix"`
	KraftMcmillan              KraftMcmillanOutcome `json:"kraft_mcmillan"`
	Samples                    []string             `json:"samples"`
}

var kraftMcmillanNames = map[KraftMcmillanOutcome]string{
	Satisfied:    "Satisfied",
	NotSatisfied: "NotSatisfied",
}

// MarshalJSON encodes the outcome as "Satisfied" or "NotSatisfied".
func (k KraftMcmillanOutcome) MarshalJSON() ([]byte, error) {
	name, ok := kraftMcmillanNames[k]
	if !ok {
		return nil, fmt.Errorf("audit: unknown Kraft-McMillan outcome %d", int(k))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts the names produced by MarshalJSON.
func (k *KraftMcmillanOutcome) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for outcome, n := range kraftMcmillanNames {
		if n == name {
			*k = outcome
			return nil
		}
	}
	return fmt.Errorf("audit: unknown Kraft-McMillan outcome %q", name)
}

// ComputeAttributes audits list. The list must be non-empty; an empty list
// returns ErrInvalidInput. Either every attribute is computed or an error is
// returned.
//
// Single-word lists, and lists whose entries are all identical, have no
// distinct pairs: ShortestEditDistance, MeanEditDistance and
// LongestSharedPrefix are then 0.
func ComputeAttributes(list []string, opts ...Option) (ListAttributes, error) {
	o := newOptions(opts)
	if len(list) == 0 {
		return ListAttributes{}, fmt.Errorf("%w: nothing to audit", ErrInvalidInput)
	}
	if o.MaxPairwiseWords > 0 && len(list) > o.MaxPairwiseWords {
		return ListAttributes{}, fmt.Errorf("%w: %d words exceeds the pairwise limit of %d",
			ErrResourceExhausted, len(list), o.MaxPairwiseWords)
	}

	s := segment(list)

	// Last-seen wins on ties, for both extremes.
	shortest, longest := 0, 0
	total := 0
	for i := range s.seqs {
		n := s.length(i)
		total += n
		if n <= s.length(shortest) {
			shortest = i
		}
		if n >= s.length(longest) {
			longest = i
		}
	}
	shortestLen, longestLen := s.length(shortest), s.length(longest)

	entropy, err := EntropyPerWord(len(list))
	if err != nil {
		return ListAttributes{}, err
	}

	decodable, err := s.uniquelyDecodable(o.MaxDecodabilityRounds, o.MaxDanglingSuffixes)
	if err != nil {
		return ListAttributes{}, err
	}

	samples, err := GenerateSamples(list, o.Rand, o.SampleCount)
	if err != nil {
		return ListAttributes{}, err
	}

	shortestEdit, _ := s.shortestEditDistance(o.Parallelism)
	sharedPrefix := s.longestSharedPrefix(longestLen, o.Parallelism)

	return ListAttributes{
		ListLength:          len(list),
		MeanWordLength:      float32(total) / float32(len(list)),
		EntropyPerWord:      entropy,
		ShortestWordLength:  shortestLen,
		ShortestWordExample: list[shortest],
		LongestWordLength:   longestLen,
		LongestWordExample:  list[longest],

		HasDuplicatesExact:             HasDuplicatesExact(list),
		HasDuplicatesFuzzy:             HasDuplicatesFuzzy(list),
		HasBlankLines:                  HasBlankLines(list),
		UniqueWords:                    CountUniqueWords(list),
		HasStartingOrTrailingSpace:     HasStartingOrTrailingSpace(list),
		HasNonASCIICharacters:          HasNonASCIICharacters(list),
		HasUniformUnicodeNormalization: HasUniformUnicodeNormalization(list),

		IsFreeOfPrefixWords: !s.anyPair(o.Parallelism, hasPrefix),
		IsFreeOfSuffixWords: !s.anyPair(o.Parallelism, hasSuffix),
		IsUniquelyDecodable: decodable,

		EfficiencyPerCharacter:     EfficiencyPerCharacter(entropy, s.meanWordLength()),
		AssumedEntropyPerCharacter: AssumedEntropyPerCharacter(entropy, shortestLen),
		IsAboveBruteForceLine:      IsAboveBruteForceLine(len(list), shortestLen),
		IsAboveShannonLine:         IsAboveShannonLine(len(list), shortestLen),
		ShortestEditDistance:       shortestEdit,
		MeanEditDistance:           s.meanEditDistance(o.Parallelism),
		LongestSharedPrefix:        sharedPrefix,
		UniqueCharacterPrefix:      sharedPrefix + 1,
		KraftMcmillan:              s.kraftMcmillan(),
		Samples:                    samples,
	}, nil
}
