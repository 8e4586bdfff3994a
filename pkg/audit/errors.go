package audit

import "errors"

var (
	// ErrInvalidInput is returned when a metric needs at least one word
	// (minimum, maximum, mean or logarithm) and the list is empty.
	ErrInvalidInput = errors.New("audit: list must contain at least one word")

	// ErrResourceExhausted is returned when a scan exceeds a configured bound
	// (see WithMaxPairwiseWords, WithMaxDecodabilityRounds and
	// WithMaxDanglingSuffixes).
	ErrResourceExhausted = errors.New("audit: configured resource bound exceeded")
)
