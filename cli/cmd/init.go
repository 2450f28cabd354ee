package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/wojfil/iskierka/lang"
	"github.com/wojfil/iskierka/log"
)

// Init scaffolds a rules directory with a starter grammar and writes the
// default configuration file.
type Init struct {
	Config string `default:"${config}" help:"Configuration file to write." type:"path"`
	Force  bool   `help:"Overwrite existing files."`
}

// configFile mirrors the flags the cli resolver reads back. Hyphenated flag
// names use underscores here.
type configFile struct {
	Dir       string `yaml:"dir"`
	Quiet     bool   `yaml:"quiet"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogPretty bool   `yaml:"log_pretty"`
}

const starterName = "starter." + lang.Extension

const starterRules = `This is an iskierka grammar. Lines outside rule blocks
are ignored, so files can annotate themselves freely.

#output
say _greeting to _name
print("_greeting", "_name")

#greeting
hello
"hello"

#greeting weight 2
good morning
"good morning"

#name
world
"world"
`

// Run executes the init command.
func (c *Init) Run(ctx context.Context) error {
	opts := OptionsFrom(ctx)

	rules := filepath.Join(opts.Dir, starterName)
	if err := c.write(rules, []byte(starterRules)); err != nil {
		return ErrWriteRules.Wrap(err).With(slog.String("path", rules))
	}

	conf := configFile{
		Dir:       opts.Dir,
		LogLevel:  log.DefaultLevel.String(),
		LogFormat: log.DefaultFormat.String(),
		LogPretty: true,
	}
	text, err := yaml.Marshal(conf)
	if err != nil {
		return ErrWriteConfig.Wrap(err)
	}
	if err := c.write(c.Config, text); err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("path", c.Config))
	}

	log.InfoContext(ctx, "initialized",
		slog.String("rules", rules),
		slog.String("config", c.Config))
	return nil
}

func (c *Init) write(path string, data []byte) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if c.Force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrTargetExists.Wrap(err)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
