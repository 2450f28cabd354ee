package lang

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/wojfil/iskierka/log"
)

// LoadDir loads every *.iski file directly under dir into a sealed Lexicon.
// Files are processed in name order. Loads with no options are memoized by
// source content, so repeated loads of an unchanged directory share one
// lexicon.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*Lexicon, error) {
	o := makeOptions(opts...)
	sources, err := ReadDirSources(dir)
	if err != nil {
		o.logger.ErrorContext(ctx, "cannot load rules", slog.Any("error", err))
		return nil, err
	}
	if len(sources) == 0 {
		err := ErrNoSources.With(slog.String("dir", dir))
		o.logger.ErrorContext(ctx, "cannot load rules", slog.Any("error", err))
		return nil, err
	}
	return loadCached(ctx, sources, opts...)
}

// LoadSources builds a Lexicon from in-memory sources, in the order given.
//
// Loading is two-pass: the first pass registers every declared name and
// checks block structure, the second parses track lines against the complete
// name set, so blocks may reference variables declared anywhere. The first
// error aborts the load and no Lexicon is returned.
func LoadSources(ctx context.Context, sources []Source, opts ...Option) (*Lexicon, error) {
	o := makeOptions(opts...)
	ld := &loader{lex: newLexicon(), logger: o.logger}

	if len(sources) == 0 {
		return nil, ld.report(ErrNoSources)
	}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, ld.report(ErrReadSource.Wrap(err))
		}
		if err := ld.firstPass(src); err != nil {
			return nil, err
		}
	}
	if ld.lex.root < 0 {
		return nil, ld.report(ErrNoRoot.With(slog.String("name", RootName)))
	}
	for _, src := range sources {
		if err := ld.secondPass(src); err != nil {
			return nil, err
		}
	}
	for h := range ld.lex.vars {
		v := ld.lex.variable(Handle(h))
		if v.Len() == 0 {
			return nil, ld.report(ErrEmptyVar.With(slog.String("name", v.Name())))
		}
		v.seal()
	}

	ld.lex.fp = fingerprint(sources)
	ld.lex.ready = true
	o.logger.DebugContext(ctx, "rules loaded",
		slog.Int("sources", len(sources)),
		slog.Int("variables", ld.lex.Len()),
		slog.String("fingerprint", ld.lex.fp))
	return ld.lex, nil
}

type loader struct {
	lex    *Lexicon
	logger log.Logger
}

// report logs a load diagnostic and returns it.
func (ld *loader) report(err *Error) error {
	ld.logger.Error("cannot load rules", slog.Any("error", err))
	return err
}

// fail is report with source position attached.
func (ld *loader) fail(err *Error, path string, line int64) error {
	return ld.report(err.With(slog.String("file", path), slog.Int64("line", line)))
}

type blockState int

const (
	stateDecl blockState = iota
	stateNatural
	stateProgramming
)

// firstPass registers every declared variable name and verifies that each
// declaration is followed by its two track lines.
func (ld *loader) firstPass(src Source) error {
	state := stateDecl
	n := int64(0)
	for raw := range sourceLines(src.Text) {
		n++
		line := trimRight(raw)
		switch state {
		case stateDecl:
			if line == "" || line[0] != Marker || line == EmptyToken {
				continue
			}
			name, _, err := scanDeclName(line)
			if err != nil {
				return ld.fail(err, src.Path, n)
			}
			ld.lex.declare(name)
			state = stateNatural
		case stateNatural:
			if line == "" {
				return ld.fail(ErrTruncated.With(slog.String("track", "natural")), src.Path, n)
			}
			state = stateProgramming
		case stateProgramming:
			if line == "" {
				return ld.fail(ErrTruncated.With(slog.String("track", "programming")), src.Path, n)
			}
			state = stateDecl
		}
	}
	if state != stateDecl {
		track := "natural"
		if state == stateProgramming {
			track = "programming"
		}
		return ld.fail(ErrTruncated.With(slog.String("track", track)), src.Path, n)
	}
	return nil
}

// secondPass parses declarations and track lines, filling the variables
// registered by the first pass.
func (ld *loader) secondPass(src Source) error {
	var (
		state  = stateDecl
		n      = int64(0)
		v      *Variable
		weight int64
		nat    []Unit
	)
	for raw := range sourceLines(src.Text) {
		n++
		line := trimRight(raw)
		switch state {
		case stateDecl:
			if line == "" || line[0] != Marker || line == EmptyToken {
				continue
			}
			name, rest, err := scanDeclName(line)
			if err != nil {
				return ld.fail(err, src.Path, n)
			}
			weight, err = scanDeclWeight(line, rest)
			if err != nil {
				return ld.fail(err, src.Path, n)
			}
			v = ld.lex.variable(ld.lex.declare(name))
			state = stateNatural
		case stateNatural:
			units, err := ld.track(line, src.Path, n, "natural")
			if err != nil {
				return err
			}
			nat = units
			state = stateProgramming
		case stateProgramming:
			units, err := ld.track(line, src.Path, n, "programming")
			if err != nil {
				return err
			}
			if err := v.insert(makeAlternative(nat, units), weight); err != nil {
				return ld.fail(err.With(slog.String("name", v.Name())), src.Path, n)
			}
			state = stateDecl
		}
	}
	// truncation would have failed the first pass already
	return nil
}

// track parses one track line into units. The EmptyToken sentinel yields a
// nil unit list, rendering as the empty string.
func (ld *loader) track(line, path string, n int64, name string) ([]Unit, error) {
	empty := line == EmptyToken
	line = trimLeft(line)
	if line == "" {
		return nil, ld.fail(ErrTruncated.With(slog.String("track", name)), path, n)
	}
	if empty {
		return nil, nil
	}
	units, err := scanTrack(line, ld.lex)
	if err != nil {
		return nil, ld.fail(err, path, n)
	}
	return units, nil
}

// scanDeclName parses the variable name of a declaration line, which must
// start with Marker. It returns the offset just past the name.
func scanDeclName(line string) (string, int, *Error) {
	if len(line) == 1 {
		return "", 0, ErrMissingName
	}
	if line[1] == Marker {
		return "", 0, ErrReservedLine.With(slog.String("text", line))
	}
	if !isNameStart(line[1]) {
		return "", 0, ErrBadNameStart.With(slog.String("char", line[1:2]))
	}
	i := 1
	for ; i < len(line) && !isSpace(line[i]); i++ {
		if !isNameByte(line[i]) {
			return "", 0, ErrBadNameChar.With(slog.String("char", line[i:i+1]))
		}
	}
	return line[1:i], i, nil
}

// scanDeclWeight parses the optional weight clause after the name. A bare
// declaration weighs 1; "weight" is the only recognized property and takes a
// decimal integer of digits only.
func scanDeclWeight(line string, i int) (int64, *Error) {
	if i == len(line) {
		return 1, nil
	}
	for ; i < len(line) && isSpace(line[i]); i++ {
	}
	start := i
	for ; i < len(line) && !isSpace(line[i]); i++ {
	}
	if prop := line[start:i]; prop != weightKeyword {
		return 0, ErrBadProperty.With(slog.String("property", prop))
	}
	for ; i < len(line) && isSpace(line[i]); i++ {
	}
	if i == len(line) {
		return 0, ErrNoWeight
	}
	start = i
	digits := true
	for ; i < len(line) && !isSpace(line[i]); i++ {
		if line[i] < '0' || line[i] > '9' {
			digits = false
		}
	}
	value := line[start:i]
	if !digits {
		return 0, ErrBadWeight.With(slog.String("value", value))
	}
	w, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, ErrHugeWeight.With(slog.String("value", value))
	}
	return w, nil
}
