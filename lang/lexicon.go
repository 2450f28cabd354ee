package lang

import "slices"

// Lexicon is the loaded, immutable set of variables parsed from rule
// sources. A lexicon is ready only after a fully successful load; any load
// error leaves it permanently not ready.
type Lexicon struct {
	names map[string]Handle
	vars  []Variable
	root  Handle
	fp    string
	ready bool
}

func newLexicon() *Lexicon {
	return &Lexicon{names: map[string]Handle{}, root: -1}
}

// declare returns the handle for name, registering it on first sight.
func (l *Lexicon) declare(name string) Handle {
	if h, ok := l.names[name]; ok {
		return h
	}
	h := Handle(len(l.vars))
	l.names[name] = h
	l.vars = append(l.vars, Variable{name: name})
	if name == RootName {
		l.root = h
	}
	return h
}

func (l *Lexicon) variable(h Handle) *Variable { return &l.vars[h] }

// Ready reports whether the lexicon loaded successfully and may be used for
// generation.
func (l *Lexicon) Ready() bool { return l != nil && l.ready }

// Len returns the number of declared variables.
func (l *Lexicon) Len() int { return len(l.vars) }

// Root returns the handle of the root variable, or -1 when it was never
// declared.
func (l *Lexicon) Root() Handle { return l.root }

// Fingerprint is a stable content hash of the sources the lexicon was
// loaded from, in base 36.
func (l *Lexicon) Fingerprint() string { return l.fp }

// Lookup resolves a variable name to its handle.
func (l *Lexicon) Lookup(name string) (Handle, bool) {
	h, ok := l.names[name]
	return h, ok
}

// Name returns the name of the variable behind h.
func (l *Lexicon) Name(h Handle) string { return l.vars[h].name }

// Names returns every declared variable name in lexical order.
func (l *Lexicon) Names() []string {
	names := make([]string, 0, len(l.names))
	for name := range l.names {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Variable returns the variable behind h for inspection.
func (l *Lexicon) Variable(h Handle) *Variable {
	if h < 0 || int(h) >= len(l.vars) {
		return nil
	}
	return &l.vars[h]
}
