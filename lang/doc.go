// Package lang implements the iskierka rule language: a grammar of named,
// weighted variables that expands into pairs of corresponding strings, one
// natural-language rendering and one programming rendering.
//
// # Rule syntax
//
// Rule sources are *.iski files made of three-line blocks:
//
//	#greeting weight 3
//	say _word to the user
//	print("_word")
//
// Line 1 declares a variable with an optional weight (default 1). Line 2 is
// the natural track, line 3 the programming track. Within a track, _name
// references another variable; the reserved token ##empty denotes an empty
// track. Lines outside a block that do not start with # are ignored, so they
// can hold comments and spacing.
//
// Declaring the same name in multiple blocks accumulates alternatives into
// one variable. Each generation draws one alternative per variable, weighted
// by the declared weights (uniform when all weights are zero).
//
// # Loading and generating
//
//	lex, err := lang.LoadDir(ctx, "rules")
//	if err != nil {
//	    // any error leaves the lexicon permanently not ready
//	}
//
//	gen := lang.NewGenerator(lex, lang.WithSeed(42))
//	pair, err := gen.Next()
//
// Loading runs two passes: the first discovers every variable name and
// validates block structure, the second parses track lines and fills the
// variables, which allows references to variables declared later or in other
// files. After a successful load every variable is sealed and the lexicon is
// immutable, so any number of Generators may share it concurrently as long
// as each owns its random source.
//
// Expansion resolves each distinct referenced variable exactly once per
// chosen alternative, so a reference that appears in both tracks (or twice
// in one) renders identically everywhere within a single generation.
package lang
