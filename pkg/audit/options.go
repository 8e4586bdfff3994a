package audit

import (
	"math/rand"
	"time"
)

// DefaultSampleCount is the number of sample words drawn per audit.
const DefaultSampleCount = 30

// Options configures ComputeAttributes. Zero bounds mean unbounded.
type Options struct {
	// Rand drives sampling. nil means a time-seeded generator.
	Rand *rand.Rand
	// SampleCount is the number of sample words; <= 0 means DefaultSampleCount.
	SampleCount int
	// MaxDecodabilityRounds caps the Sardinas–Patterson rounds.
	MaxDecodabilityRounds int
	// MaxDanglingSuffixes caps the number of distinct dangling suffixes.
	MaxDanglingSuffixes int
	// MaxPairwiseWords rejects longer lists before any O(n²) scan starts.
	MaxPairwiseWords int
	// Parallelism is the number of goroutines used by pairwise scans.
	Parallelism int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sequential, unbounded options with 30 samples.
func DefaultOptions() Options {
	return Options{
		SampleCount: DefaultSampleCount,
		Parallelism: 1,
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SampleCount <= 0 {
		o.SampleCount = DefaultSampleCount
	}
	if o.Parallelism < 1 {
		o.Parallelism = 1
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// WithRand sets the generator used for sampling.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed makes sampling deterministic. A seed of 0 keeps the time-seeded
// default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Rand = rand.New(rand.NewSource(seed))
		}
	}
}

// WithSampleCount sets how many sample words are drawn.
func WithSampleCount(n int) Option {
	return func(o *Options) { o.SampleCount = n }
}

// WithMaxDecodabilityRounds caps the unique decodability check.
func WithMaxDecodabilityRounds(n int) Option {
	return func(o *Options) { o.MaxDecodabilityRounds = n }
}

// WithMaxDanglingSuffixes caps the dangling suffix set of the unique
// decodability check.
func WithMaxDanglingSuffixes(n int) Option {
	return func(o *Options) { o.MaxDanglingSuffixes = n }
}

// WithMaxPairwiseWords rejects lists longer than n.
func WithMaxPairwiseWords(n int) Option {
	return func(o *Options) { o.MaxPairwiseWords = n }
}

// WithParallelism spreads pairwise scans over n goroutines.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithOptions replaces every setting with o.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}
