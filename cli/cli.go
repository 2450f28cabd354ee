// Package cli implements the iskierka command-line interface.
package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/wojfil/iskierka/cli/cmd"
	"github.com/wojfil/iskierka/cli/cmd/browse"
	"github.com/wojfil/iskierka/pkg"
)

// CLI is the top-level command-line interface for iskierka.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Dir     string           `default:"." help:"Directory with *.iski rule files." short:"d" type:"existingdir"`
	Quiet   bool             `help:"Suppress rule loading diagnostics." short:"q"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Gen    cmd.Gen       `cmd:"" default:"withargs" help:"Generate sample pairs"`
	Check  cmd.Check     `cmd:"" help:"Load rules and report problems"`
	Init   cmd.Init      `cmd:"" help:"Scaffold rules and configuration"`
	Browse browse.Browse `cmd:"" help:"Explore the grammar interactively"`
}

// Run executes the iskierka CLI with the given context and arguments. The
// exit function receives the exit code when kong terminates early, such as
// for --help.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath(),
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Name + " " + strings.TrimSpace(pkg.Version),
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		// The closure reads the ctx variable at call time, so commands see
		// the values attached below after parsing.
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Configuration(resolveYAML, configPath()),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithOptions(ctx, cmd.Options{Dir: cli.Dir, Quiet: cli.Quiet})

	return ktx.Run(ctx, &cli)
}
