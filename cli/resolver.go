package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for the YAML configuration
// file written by the init command.
//
// The file is a flat mapping of flag names to values, with hyphens replaced
// by underscores:
//
//	dir: rules
//	log_level: debug
//	log_pretty: true
//
// Command-line flags override configuration file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		// An empty file is a valid, empty configuration.
		if errors.Is(err, io.EOF) {
			return yamlResolver(nil), nil
		}

		return nil, err
	}

	return yamlResolver(values), nil
}

type yamlResolver map[string]any

func (yamlResolver) Validate(*kong.Application) error { return nil }

func (r yamlResolver) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]
	if !ok {
		return nil, nil
	}

	return value, nil
}
