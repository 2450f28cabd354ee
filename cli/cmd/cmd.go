// Package cmd implements the subcommands of the iskierka CLI.
package cmd

import (
	"context"

	"github.com/wojfil/iskierka/lang"
	"github.com/wojfil/iskierka/log"
)

// Kong template variable identifiers shared with the cli package.
const (
	ConfigIdentifier = "config"
	CacheIdentifier  = "cache"
)

type optionsKey struct{}

// Options carries the global flags every command needs.
type Options struct {
	// Dir is the directory holding *.iski rule files.
	Dir string
	// Quiet suppresses rule loading diagnostics.
	Quiet bool
}

// WithOptions returns a context carrying the global command options.
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// OptionsFrom retrieves the global command options stored in ctx.
func OptionsFrom(ctx context.Context) Options {
	opts, _ := ctx.Value(optionsKey{}).(Options)
	return opts
}

// Logger returns the logger commands should hand to the engine: the package
// default, or the discarding zero Logger when --quiet was given.
func Logger(ctx context.Context) log.Logger {
	if OptionsFrom(ctx).Quiet {
		return log.Logger{}
	}
	return log.Default()
}

// Load loads the rule directory selected by the global flags.
func Load(ctx context.Context) (*lang.Lexicon, error) {
	opts := OptionsFrom(ctx)
	lex, err := lang.LoadDir(ctx, opts.Dir, lang.WithLogger(Logger(ctx)))
	if err != nil {
		return nil, ErrLoadRules.Wrap(err)
	}
	return lex, nil
}
