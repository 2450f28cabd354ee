package lang

import (
	"context"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// lexCache memoizes sealed lexicons by source fingerprint. Entries are
// parsed at most once; concurrent loads of the same content share the
// result, including a failed one, since equal content fails equally.
var lexCache sync.Map // string -> *cacheEntry

type cacheEntry struct {
	once sync.Once
	lex  *Lexicon
	err  error
}

// loadCached parses sources once per distinct content. Options change
// diagnostics and nothing else, yet they make loads observably different, so
// any option list bypasses the cache.
func loadCached(ctx context.Context, sources []Source, opts ...Option) (*Lexicon, error) {
	if len(opts) > 0 {
		return LoadSources(ctx, sources, opts...)
	}
	e, _ := lexCache.LoadOrStore(fingerprint(sources), &cacheEntry{})
	entry := e.(*cacheEntry)
	entry.once.Do(func() {
		entry.lex, entry.err = LoadSources(ctx, sources)
	})
	return entry.lex, entry.err
}

// ClearCache drops every memoized lexicon.
func ClearCache() { lexCache.Clear() }

// fingerprint hashes source paths and contents into a short base-36 key.
func fingerprint(sources []Source) string {
	h := xxh3.New()
	for _, s := range sources {
		h.WriteString(s.Path)
		h.Write([]byte{0})
		h.WriteString(s.Text)
		h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 36)
}
