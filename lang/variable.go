package lang

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Alternative is one weighted production of a variable: two parallel unit
// tracks plus the set of variables either track references.
type Alternative struct {
	Natural     []Unit
	Programming []Unit

	// refs holds the distinct handles referenced by either track, sorted.
	// Expansion resolves each exactly once, so both tracks agree on every
	// shared reference.
	refs []Handle
}

func makeAlternative(natural, programming []Unit) Alternative {
	a := Alternative{Natural: natural, Programming: programming}
	for _, u := range natural {
		if u.Kind == UnitRef {
			a.refs = append(a.refs, u.Ref)
		}
	}
	for _, u := range programming {
		if u.Kind == UnitRef {
			a.refs = append(a.refs, u.Ref)
		}
	}
	slices.Sort(a.refs)
	a.refs = slices.Compact(a.refs)
	return a
}

// Variable is a named set of alternatives with cumulative weights. Variables
// are mutable only while their lexicon loads; seal makes them permanent.
type Variable struct {
	name   string
	alts   []Alternative
	cum    []int64 // cumulative weights, parallel to alts
	total  int64
	sealed bool
}

func (v *Variable) Name() string { return v.name }
func (v *Variable) Len() int     { return len(v.alts) }

// Alternatives returns the productions of v in declaration order. The
// returned slice is shared and must not be modified.
func (v *Variable) Alternatives() []Alternative { return v.alts }

// insert appends an alternative with the given weight.
func (v *Variable) insert(alt Alternative, weight int64) *Error {
	if v.sealed {
		return ErrSealed
	}
	if weight > math.MaxInt64-v.total {
		return ErrTotalWeight
	}
	v.total += weight
	v.alts = append(v.alts, alt)
	v.cum = append(v.cum, v.total)
	return nil
}

// seal freezes v. A variable whose weights are all zero is resealed with
// uniform weights so that every alternative stays reachable.
func (v *Variable) seal() {
	if v.total == 0 {
		for i := range v.cum {
			v.cum[i] = int64(i + 1)
		}
		v.total = int64(len(v.cum))
	}
	v.sealed = true
}

// pick selects one alternative. A single-alternative variable short-circuits
// without drawing from rng, so rng may be nil in that case.
func (v *Variable) pick(rng *rand.Rand) *Alternative {
	if len(v.alts) == 1 {
		return &v.alts[0]
	}
	n := rng.Int64N(v.total)
	for i := range v.cum {
		if v.cum[i] > n {
			return &v.alts[i]
		}
	}
	// unreachable once sealed: total is the last cumulative weight
	return &v.alts[len(v.alts)-1]
}
