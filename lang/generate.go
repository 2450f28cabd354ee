package lang

import (
	"log/slog"
	"math/rand/v2"

	"github.com/wojfil/iskierka/log"
)

// DefaultLimit is the recursion depth limit a Generator starts with. It
// keeps deeply self-referential grammars from exhausting the stack.
const DefaultLimit = 2048

// Pair is one generated sample: a single grammar expansion rendered on both
// tracks.
type Pair struct {
	Natural     string `json:"natural"`
	Programming string `json:"programming"`
}

// Generator draws weighted random expansions from a ready Lexicon. Each
// Generator owns its random source and depth counter, so it is not safe for
// concurrent use, but any number of Generators may share one Lexicon.
type Generator struct {
	lex    *Lexicon
	rng    *rand.Rand
	limit  int64
	level  int64
	logger log.Logger
}

// NewGenerator returns a Generator over lex. Without WithSeed or WithRand
// the random source is seeded from the process-global generator.
func NewGenerator(lex *Lexicon, opts ...Option) *Generator {
	o := makeOptions(opts...)
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{lex: lex, rng: o.rng, limit: o.limit, logger: o.logger}
}

// SetLimit replaces the recursion depth limit. Values below one are ignored.
func (g *Generator) SetLimit(n int64) {
	if n > 0 {
		g.limit = n
	}
}

// Next generates one pair from the root variable.
func (g *Generator) Next() (Pair, error) {
	if !g.lex.Ready() {
		return Pair{}, ErrNotReady
	}
	return g.Expand(g.lex.root)
}

// Expand generates one pair from the variable behind h. The depth counter
// resets on every call, so a failed expansion does not poison later ones.
func (g *Generator) Expand(h Handle) (Pair, error) {
	if !g.lex.Ready() {
		return Pair{}, ErrNotReady
	}
	if h < 0 || int(h) >= g.lex.Len() {
		return Pair{}, ErrUndefined
	}
	g.level = 0
	pair, err := g.expandVariable(g.lex.variable(h))
	if err != nil {
		g.logger.Debug("expansion failed",
			slog.String("variable", g.lex.Name(h)), slog.Any("error", err))
	}
	return pair, err
}

func (g *Generator) expandVariable(v *Variable) (Pair, error) {
	return g.expandAlternative(v.pick(g.rng))
}

// expandAlternative resolves each distinct referenced variable once, then
// renders both tracks from the shared results. Resolving once is what makes
// a reference repeated across tracks, or within one, expand identically.
func (g *Generator) expandAlternative(alt *Alternative) (Pair, error) {
	var memo map[Handle]Pair
	if len(alt.refs) > 0 {
		memo = make(map[Handle]Pair, len(alt.refs))
	}
	for _, h := range alt.refs {
		g.level++
		if g.level >= g.limit {
			return Pair{}, ErrDepth.With(slog.Int64("limit", g.limit))
		}
		sub, err := g.expandVariable(g.lex.variable(h))
		if err != nil {
			return Pair{}, err
		}
		g.level--
		memo[h] = sub
	}
	return Pair{
		Natural:     renderTrack(alt.Natural, memo, func(p Pair) string { return p.Natural }),
		Programming: renderTrack(alt.Programming, memo, func(p Pair) string { return p.Programming }),
	}, nil
}

// renderTrack concatenates units, patching whitespace around references that
// rendered empty: one space before the reference is dropped, or failing that
// one space immediately after it, so "a _x b" with an empty _x yields "a b".
func renderTrack(units []Unit, memo map[Handle]Pair, track func(Pair) string) string {
	var out []byte
	omit := false
	for _, u := range units {
		if u.Kind == UnitLiteral {
			text := u.Text
			if omit {
				omit = false
				if len(text) > 0 && isSpace(text[0]) {
					text = text[1:]
				}
			}
			out = append(out, text...)
			continue
		}
		omit = false
		add := track(memo[u.Ref])
		if add == "" {
			if len(out) > 0 && isSpace(out[len(out)-1]) {
				out = out[:len(out)-1]
			} else {
				omit = true
			}
			continue
		}
		out = append(out, add...)
	}
	return string(out)
}
