package browse

import "github.com/sahilm/fuzzy"

// complete ranks lexicon names against the typed query. An empty query shows
// the first names in lexical order instead of nothing, so the list doubles
// as an index of the grammar.
func complete(names []string, query string) []string {
	if query == "" {
		if len(names) > maxMatches {
			names = names[:maxMatches]
		}
		return names
	}

	ranked := fuzzy.Find(query, names)
	if len(ranked) > maxMatches {
		ranked = ranked[:maxMatches]
	}

	matches := make([]string, len(ranked))
	for i, m := range ranked {
		matches[i] = m.Str
	}
	return matches
}
