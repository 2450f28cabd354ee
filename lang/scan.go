package lang

import (
	"iter"
	"log/slog"
	"strings"
)

// sourceLines yields the lines of text without their terminators. Trailing
// carriage returns are left for trimRight so CRLF sources load the same as
// LF sources.
func sourceLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			if !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
		}
	}
}

func trimRight(s string) string {
	i := len(s)
	for i > 0 && isSpace(s[i-1]) {
		i--
	}
	return s[:i]
}

func trimLeft(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// scanTrack tokenizes one track line into units, resolving every reference
// against lex. The line must already be trimmed and non-empty.
//
// A Prefix byte opens a reference only when it is not the last byte of the
// line, is not followed by whitespace, and is not preceded by a letter, so
// snake_case words pass through as literals. A reference ends at the first
// byte that cannot continue a name; when that byte is itself a Prefix the
// next reference begins immediately, which is how adjacent references such
// as _a_b are written.
func scanTrack(line string, lex *Lexicon) ([]Unit, *Error) {
	if len(line) >= 2 && line[0] == Marker && line[1] == Marker {
		return nil, ErrReservedLine.With(slog.String("text", line))
	}

	var units []Unit
	start, literal := 0, true

	for i := 0; i < len(line); i++ {
		if literal {
			if line[i] == Prefix &&
				i+1 < len(line) && !isSpace(line[i+1]) &&
				(i == 0 || !isNameStart(line[i-1])) {
				units = append(units, literalUnit(line[start:i]))
				start, literal = i, false
			}
			continue
		}
		if isNameByte(line[i]) {
			continue
		}
		name := line[start+1 : i]
		if name == "" {
			return nil, ErrEmptyRef.With(slog.String("text", line))
		}
		h, ok := lex.Lookup(name)
		if !ok {
			return nil, ErrUndefined.With(slog.String("name", name))
		}
		units = append(units, refUnit(h))
		start, literal = i, line[i] != Prefix
	}

	if literal {
		units = append(units, literalUnit(line[start:]))
	} else {
		name := line[start+1:]
		h, ok := lex.Lookup(name)
		if !ok {
			return nil, ErrUndefined.With(slog.String("name", name))
		}
		units = append(units, refUnit(h))
	}
	return units, nil
}
