package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/wojfil/iskierka/lang"
)

// Check loads the rule directory and reports whether it is usable. A failed
// load exits nonzero with the loader's diagnostics already printed.
type Check struct {
	Probe int `default:"16" help:"Trial expansions of the root variable (0 disables)."`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	lex, err := Load(ctx)
	if err != nil {
		return err
	}

	// a loadable grammar can still be unable to terminate, so probe it
	gen := lang.NewGenerator(lex, lang.WithLogger(Logger(ctx)))
	for i := 0; i < c.Probe; i++ {
		if _, err := gen.Next(); err != nil {
			return ErrLoadRules.Wrap(err).
				With(slog.Int("probe", i))
		}
	}

	fmt.Fprintf(os.Stdout, "ok: %d variables (%s)\n", lex.Len(), lex.Fingerprint())
	return nil
}
