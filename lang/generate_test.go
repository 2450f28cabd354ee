package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateSeedDeterminism(t *testing.T) {
	const text = `#output
pick _color or _size
choose(_color, _size)

#color
red
"red"

#color
blue
"blue"

#size
big
"big"

#size
small
"small"
`
	a := NewGenerator(mustLoad(t, text), WithSeed(42))
	b := NewGenerator(mustLoad(t, text), WithSeed(42))
	for i := 0; i < 50; i++ {
		pa, err := a.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		pb, _ := b.Next()
		if pa != pb {
			t.Fatalf("iteration %d: %+v != %+v", i, pa, pb)
		}
	}
}

func TestGenerateSingleAlternative(t *testing.T) {
	lex := mustLoad(t, "#output\nhello\nworld\n")

	// a single alternative must be chosen without drawing randomness
	if alt := lex.Variable(lex.Root()).pick(nil); alt == nil {
		t.Fatal("pick(nil) returned nil")
	}

	pair, err := NewGenerator(lex).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if want := (Pair{Natural: "hello", Programming: "world"}); pair != want {
		t.Fatalf("pair = %+v, want %+v", pair, want)
	}
}

func TestGenerateSharedReference(t *testing.T) {
	lex := mustLoad(t, `#output
_color and _color
pair("_color", "_color")

#color
red
red

#color
blue
blue
`)
	gen := NewGenerator(lex, WithSeed(7))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		pair, err := gen.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		var color string
		switch pair.Natural {
		case "red and red":
			color = "red"
		case "blue and blue":
			color = "blue"
		default:
			t.Fatalf("repeated reference diverged within a track: %q", pair.Natural)
		}
		if want := `pair("` + color + `", "` + color + `")`; pair.Programming != want {
			t.Fatalf("tracks diverged: natural %q, programming %q", pair.Natural, pair.Programming)
		}
		seen[color] = true
	}
	if !seen["red"] || !seen["blue"] {
		t.Fatalf("200 draws never produced both colors: %v", seen)
	}
}

func TestGenerateEmptyExpansion(t *testing.T) {
	lex := mustLoad(t, `#output
a _gap b
_gap b

#gap
##empty
##empty
`)
	pair, err := NewGenerator(lex).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if pair.Natural != "a b" {
		t.Fatalf("natural = %q, want %q", pair.Natural, "a b")
	}
	if pair.Programming != "b" {
		t.Fatalf("programming = %q, want %q", pair.Programming, "b")
	}
}

func TestGenerateAdjacentReferences(t *testing.T) {
	lex := mustLoad(t, `#output
_foo_bar
_bar_foo

#foo
foo
foo

#bar
bar
bar
`)
	pair, err := NewGenerator(lex).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if pair.Natural != "foobar" || pair.Programming != "barfoo" {
		t.Fatalf("pair = %+v, want foobar/barfoo", pair)
	}
}

func TestGenerateWeightedDistribution(t *testing.T) {
	lex := mustLoad(t, `#output
_coin
_coin

#coin weight 1
heads
heads

#coin weight 9
tails
tails
`)
	gen := NewGenerator(lex, WithSeed(1))
	tails := 0
	const n = 10000
	for i := 0; i < n; i++ {
		pair, err := gen.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if pair.Natural == "tails" {
			tails++
		}
	}
	if ratio := float64(tails) / n; ratio < 0.85 || ratio > 0.95 {
		t.Fatalf("tails ratio = %.3f, want about 0.9", ratio)
	}
}

func TestGenerateUniformWhenAllWeightsZero(t *testing.T) {
	lex := mustLoad(t, `#output
_coin
_coin

#coin weight 0
heads
heads

#coin weight 0
tails
tails
`)
	gen := NewGenerator(lex, WithSeed(1))
	tails := 0
	const n = 10000
	for i := 0; i < n; i++ {
		pair, err := gen.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if pair.Natural == "tails" {
			tails++
		}
	}
	if ratio := float64(tails) / n; ratio < 0.45 || ratio > 0.55 {
		t.Fatalf("tails ratio = %.3f, want about 0.5", ratio)
	}
}

func TestGenerateDepthLimit(t *testing.T) {
	lex := mustLoad(t, `#output
go _output
do _output

#leaf
stop
halt
`)
	gen := NewGenerator(lex, WithSeed(3))
	if _, err := gen.Next(); !errors.Is(err, ErrDepth) {
		t.Fatalf("cyclic grammar: err = %v, want %v", err, ErrDepth)
	}

	// the depth counter resets per call, so the generator stays usable
	leaf, _ := lex.Lookup("leaf")
	pair, err := gen.Expand(leaf)
	if err != nil {
		t.Fatalf("Expand(leaf) after depth failure: %v", err)
	}
	if pair.Natural != "stop" || pair.Programming != "halt" {
		t.Fatalf("pair = %+v", pair)
	}

	gen.SetLimit(8)
	if _, err := gen.Next(); !errors.Is(err, ErrDepth) {
		t.Fatalf("after SetLimit: err = %v, want %v", err, ErrDepth)
	}
}

func TestGenerateBoundedRecursion(t *testing.T) {
	// recursive but convergent: list is either one item or item, list
	lex := mustLoad(t, `#output
_list
[_list]

#list
_item
_item

#list
_item, _list
_item, _list

#item
x
x
`)
	gen := NewGenerator(lex, WithSeed(11))
	for i := 0; i < 100; i++ {
		pair, err := gen.Next()
		if err != nil {
			if errors.Is(err, ErrDepth) {
				continue
			}
			t.Fatalf("Next: %v", err)
		}
		if !strings.HasPrefix(pair.Natural, "x") {
			t.Fatalf("natural = %q", pair.Natural)
		}
		if !strings.HasPrefix(pair.Programming, "[x") {
			t.Fatalf("programming = %q", pair.Programming)
		}
	}
}

func TestGeneratorNotReady(t *testing.T) {
	gen := NewGenerator(nil)
	if _, err := gen.Next(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Next on nil lexicon: err = %v, want %v", err, ErrNotReady)
	}
	if _, err := gen.Expand(0); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Expand on nil lexicon: err = %v, want %v", err, ErrNotReady)
	}
}

func TestGeneratorExpandBadHandle(t *testing.T) {
	gen := NewGenerator(mustLoad(t, "#output\nhi\nho\n"))
	for _, h := range []Handle{-1, 99} {
		if _, err := gen.Expand(h); !errors.Is(err, ErrUndefined) {
			t.Fatalf("Expand(%d): err = %v, want %v", h, err, ErrUndefined)
		}
	}
}

func TestSetLimitIgnoresNonPositive(t *testing.T) {
	gen := NewGenerator(mustLoad(t, "#output\nhi\nho\n"))
	gen.SetLimit(0)
	gen.SetLimit(-5)
	if gen.limit != DefaultLimit {
		t.Fatalf("limit = %d, want %d", gen.limit, DefaultLimit)
	}
}
