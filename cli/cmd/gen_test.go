package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/expr-lang/expr"

	"github.com/wojfil/iskierka/lang"
)

func testGenerator(t *testing.T) (*lang.Lexicon, *lang.Generator) {
	t.Helper()
	lex, err := lang.LoadSources(context.Background(), []lang.Source{{
		Path: "t.iski",
		Text: `#output
_color
"_color"

#color
red
red

#color
blue
blue
`,
	}})
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	return lex, lang.NewGenerator(lex, lang.WithSeed(5))
}

func TestGenDrawFilter(t *testing.T) {
	lex, gen := testGenerator(t)
	g := &Gen{Tries: 100}

	prog, err := expr.Compile(`natural == "blue"`, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	pair, err := g.draw(gen, lex.Root(), prog)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if pair.Natural != "blue" || pair.Programming != `"blue"` {
		t.Fatalf("pair = %+v", pair)
	}
}

func TestGenDrawExhausted(t *testing.T) {
	lex, gen := testGenerator(t)
	g := &Gen{Tries: 10}

	prog, err := expr.Compile(`nlen > 100`, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := g.draw(gen, lex.Root(), prog); !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want %v", err, ErrExhausted)
	}
}

func TestGenDrawNoFilter(t *testing.T) {
	lex, gen := testGenerator(t)
	g := &Gen{Tries: 1}

	pair, err := g.draw(gen, lex.Root(), nil)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if pair.Natural != "red" && pair.Natural != "blue" {
		t.Fatalf("pair = %+v", pair)
	}
}

func TestOptionsContext(t *testing.T) {
	ctx := WithOptions(context.Background(), Options{Dir: "rules", Quiet: true})
	opts := OptionsFrom(ctx)
	if opts.Dir != "rules" || !opts.Quiet {
		t.Fatalf("opts = %+v", opts)
	}
	if got := OptionsFrom(context.Background()); got != (Options{}) {
		t.Fatalf("missing options should be zero, got %+v", got)
	}
}

func TestLoggerQuiet(t *testing.T) {
	quiet := WithOptions(context.Background(), Options{Quiet: true})
	if l := Logger(quiet); l.Logger != nil {
		t.Fatal("quiet context should yield the discarding zero logger")
	}
	if l := Logger(context.Background()); l.Logger == nil {
		t.Fatal("default context should yield the package default logger")
	}
}
