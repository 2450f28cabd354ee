package lang

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/readahead"
)

// Source is one rule file held in memory. Path is used only for diagnostics
// and cache fingerprints.
type Source struct {
	Path string
	Text string
}

// ReadDirSources reads every *.iski file directly under dir, sorted by file
// name so loads are deterministic regardless of directory order. It does not
// recurse.
func ReadDirSources(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ErrReadSource.Wrap(err).With(slog.String("dir", dir))
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), "."+Extension) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		text, err := readFile(path)
		if err != nil {
			return nil, ErrReadSource.Wrap(err).With(slog.String("path", path))
		}
		sources = append(sources, Source{Path: path, Text: text})
	}
	return sources, nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	r := readahead.NewReader(f)
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
