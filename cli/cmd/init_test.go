package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/wojfil/iskierka/lang"
)

func TestInitScaffold(t *testing.T) {
	dir := t.TempDir()
	ctx := WithOptions(context.Background(), Options{Dir: dir, Quiet: true})
	c := &Init{Config: filepath.Join(dir, "config.yaml")}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// the starter grammar must itself be loadable
	lex, err := lang.LoadDir(ctx, dir, lang.WithLogger(Logger(ctx)))
	if err != nil || !lex.Ready() {
		t.Fatalf("starter rules do not load: %v", err)
	}
	if _, err := lang.NewGenerator(lex, lang.WithSeed(1)).Next(); err != nil {
		t.Fatalf("starter rules do not generate: %v", err)
	}

	text, err := os.ReadFile(c.Config)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var conf map[string]any
	if err := yaml.Unmarshal(text, &conf); err != nil {
		t.Fatalf("config is not YAML: %v", err)
	}
	if conf["log_level"] != "info" {
		t.Fatalf("config = %v", conf)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	ctx := WithOptions(context.Background(), Options{Dir: dir, Quiet: true})
	c := &Init{Config: filepath.Join(dir, "config.yaml")}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := c.Run(ctx); !errors.Is(err, ErrTargetExists) {
		t.Fatalf("second Run: err = %v, want %v", err, ErrTargetExists)
	}

	c.Force = true
	if err := c.Run(ctx); err != nil {
		t.Fatalf("forced Run: %v", err)
	}
}
