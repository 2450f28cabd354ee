package lang

import (
	"errors"
	"slices"
	"testing"
)

func TestScanTrack(t *testing.T) {
	lex := newLexicon()
	x := lex.declare("x")
	y := lex.declare("y")

	lit := literalUnit
	ref := refUnit

	for _, tt := range []struct {
		name string
		line string
		want []Unit
	}{
		{"plain literal", "hello world", []Unit{lit("hello world")}},
		{"single reference", "a _x b", []Unit{lit("a "), ref(x), lit(" b")}},
		{"leading reference", "_x tail", []Unit{lit(""), ref(x), lit(" tail")}},
		{"trailing reference", "go _x", []Unit{lit("go "), ref(x)}},
		{"adjacent references", "_x_y", []Unit{lit(""), ref(x), ref(y)}},
		{"spaced references", "_x _y", []Unit{lit(""), ref(x), lit(" "), ref(y)}},
		{"snake case stays literal", "foo_bar", []Unit{lit("foo_bar")}},
		{"digit before prefix", "1_x", []Unit{lit("1"), ref(x)}},
		{"prefix before space", "a _ b", []Unit{lit("a _ b")}},
		{"prefix at end", "a_", []Unit{lit("a_")}},
		{"quoted reference", `f("_x")`, []Unit{lit(`f("`), ref(x), lit(`")`)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanTrack(tt.line, lex)
			if err != nil {
				t.Fatalf("scanTrack(%q): %v", tt.line, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("scanTrack(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScanTrackErrors(t *testing.T) {
	lex := newLexicon()
	lex.declare("x")

	for _, tt := range []struct {
		name string
		line string
		want error
	}{
		{"reserved line", "## anything", ErrReservedLine},
		{"double prefix", "__x", ErrEmptyRef},
		{"undefined name", "_nope", ErrUndefined},
		{"empty terminal name", "_x_", ErrUndefined},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := scanTrack(tt.line, lex); !errors.Is(err, tt.want) {
				t.Fatalf("scanTrack(%q) err = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}
