package lang

import (
	"math/rand/v2"

	"github.com/wojfil/iskierka/log"
)

// Option configures loading and generation. Options irrelevant to the
// receiving function are ignored, so one option list can serve both.
type Option func(*options)

type options struct {
	logger log.Logger
	rng    *rand.Rand
	limit  int64
}

func makeOptions(opts ...Option) options {
	o := options{limit: DefaultLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger routes load diagnostics and generation tracing to l. The
// default is the zero Logger, which discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed seeds the generator deterministically. Equal seeds over an equal
// lexicon reproduce the same sequence of pairs.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, 0)) }
}

// WithRand supplies the generator's random source directly, overriding
// WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithLimit sets the recursion depth limit for generation. Values below one
// are ignored.
func WithLimit(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}
