package audit

import "math/rand"

// GenerateSamples draws n words uniformly at random, with replacement, from
// list using r. The draw is for showing what passphrases from the list look
// like. It is NOT suitable for generating real passphrases: r is not a
// cryptographic source and words can repeat.
func GenerateSamples(list []string, r *rand.Rand, n int) ([]string, error) {
	if len(list) == 0 {
		return nil, ErrInvalidInput
	}
	samples := make([]string, n)
	for i := range samples {
		samples[i] = list[r.Intn(len(list))]
	}
	return samples, nil
}
