package lang

// Core symbols of the rule language.
const (
	// RootName is the variable every generation starts from.
	RootName = "output"

	// Extension identifies rule source files, without the leading dot.
	Extension = "iski"

	// Marker starts a declaration line, Prefix starts a reference.
	Marker = '#'
	Prefix = '_'

	// EmptyToken is the whole-line sentinel for an empty track.
	EmptyToken = "##empty"

	weightKeyword = "weight"
)

// Handle identifies a variable within its Lexicon. Handles are dense indexes
// assigned in declaration order and remain valid for the lexicon's lifetime.
type Handle int

// UnitKind discriminates the variants of Unit.
type UnitKind uint8

const (
	// UnitLiteral is verbatim text.
	UnitLiteral UnitKind = iota
	// UnitRef expands a variable by handle.
	UnitRef
)

// Unit is one token of a parsed track line: either literal text or a
// reference to another variable. The zero Unit is an empty literal.
type Unit struct {
	Kind UnitKind
	Text string // literal text, valid for UnitLiteral
	Ref  Handle // referenced variable, valid for UnitRef
}

func literalUnit(text string) Unit { return Unit{Kind: UnitLiteral, Text: text} }
func refUnit(h Handle) Unit        { return Unit{Kind: UnitRef, Ref: h} }

// isNameStart reports whether b may begin a variable name.
func isNameStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// isNameByte reports whether b may continue a variable name.
func isNameByte(b byte) bool {
	return isNameStart(b) || b >= '0' && b <= '9'
}

// isSpace matches the whitespace set used throughout the rule language.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
