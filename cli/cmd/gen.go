package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/wojfil/iskierka/lang"
)

// Gen generates sample pairs from the loaded rules.
type Gen struct {
	Count  int     `default:"1"         help:"Number of pairs to generate."                  short:"n"`
	Root   string  `default:"output"    help:"Variable to expand."                           short:"r"`
	Seed   *uint64 `                    help:"Seed the random source for reproducible runs."          placeholder:"N"`
	Limit  int64   `default:"2048"      help:"Recursion depth limit per expansion."`
	Filter string  `                    help:"Keep only pairs matching this expression."     short:"f" placeholder:"EXPR"`
	Tries  int     `default:"100"       help:"Expansion attempts per emitted pair."`
	JSON   bool    `                    help:"Emit pairs as JSON lines."                     name:"json"`
}

// filterEnv is the environment a --filter expression evaluates in, for
// example 'nlen < 80 and programming contains "("'.
type filterEnv struct {
	Natural     string `expr:"natural"`
	Programming string `expr:"programming"`
	NLen        int    `expr:"nlen"`
	PLen        int    `expr:"plen"`
}

// Run executes the gen command.
func (g *Gen) Run(ctx context.Context) error {
	lex, err := Load(ctx)
	if err != nil {
		return err
	}

	root, ok := lex.Lookup(g.Root)
	if !ok {
		return ErrNoSuchName.With(slog.String("name", g.Root))
	}

	var filter *vm.Program
	if g.Filter != "" {
		filter, err = expr.Compile(g.Filter, expr.Env(filterEnv{}), expr.AsBool())
		if err != nil {
			return ErrBadFilter.Wrap(err)
		}
	}

	opts := []lang.Option{
		lang.WithLimit(g.Limit),
		lang.WithLogger(Logger(ctx)),
	}
	if g.Seed != nil {
		opts = append(opts, lang.WithSeed(*g.Seed))
	}
	gen := lang.NewGenerator(lex, opts...)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	enc := json.NewEncoder(w)

	for i := 0; i < g.Count; i++ {
		pair, err := g.draw(gen, root, filter)
		if err != nil {
			return err
		}
		if g.JSON {
			if err := enc.Encode(pair); err != nil {
				return ErrWriteOutput.Wrap(err)
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", pair.Natural, pair.Programming); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}
	return nil
}

// draw expands pairs until one passes the filter. Depth failures count
// against the attempt budget instead of aborting, since a recursive grammar
// can legitimately overrun the limit on unlucky draws.
func (g *Gen) draw(gen *lang.Generator, root lang.Handle, filter *vm.Program) (lang.Pair, error) {
	for try := 0; try < g.Tries; try++ {
		pair, err := gen.Expand(root)
		if err != nil {
			if errors.Is(err, lang.ErrDepth) {
				continue
			}
			return lang.Pair{}, err
		}
		if filter != nil {
			out, err := expr.Run(filter, filterEnv{
				Natural:     pair.Natural,
				Programming: pair.Programming,
				NLen:        len(pair.Natural),
				PLen:        len(pair.Programming),
			})
			if err != nil {
				return lang.Pair{}, ErrBadFilter.Wrap(err)
			}
			keep, ok := out.(bool)
			if !ok {
				return lang.Pair{}, ErrFilterValue
			}
			if !keep {
				continue
			}
		}
		return pair, nil
	}
	return lang.Pair{}, ErrExhausted.With(slog.Int("tries", g.Tries))
}
