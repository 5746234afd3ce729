package match

import "fmt"

// setMatcher interprets its target as a set: Cons tries one alternative
// per distinct element (in first-occurrence order — the enumeration order
// for Set over an infinite target is left to the implementer by the
// matching-state specification, and this is the choice documented for
// this engine), and the tail is the entire original set, unchanged:
// elements may be selected again on a later Cons. Unlike List and
// Multiset, Set assumes a finite target: computing "distinct elements"
// requires seeing every element at least once.
type setMatcher struct{ inner Matcher }

// SetMatcher returns the Set(inner) matcher.
func SetMatcher(inner Matcher) Matcher { return setMatcher{inner: inner} }

func (m setMatcher) Name() string { return "set(" + m.inner.Name() + ")" }

func (m setMatcher) Equals(a, b Value) bool {
	as, aok := a.AsList()
	bs, bok := b.AsList()
	if !aok || !bok {
		return valuesEqual(a, b)
	}
	aDistinct := distinct(m.inner, drain(as))
	bDistinct := distinct(m.inner, drain(bs))
	if len(aDistinct) != len(bDistinct) {
		return false
	}
	for _, x := range aDistinct {
		found := false
		for _, y := range bDistinct {
			if m.inner.Equals(x, y) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m setMatcher) Decompose(tag string, args []Pattern, _ Bindings, t Value) (Seq[[]Atom], error) {
	elems, ok := t.AsList()
	if !ok {
		return emptySeq[[]Atom](), fmt.Errorf("match: set matcher target is not a list value: %v", t)
	}

	switch tag {
	case "cons":
		head, tail := args[0], args[1]
		uniq := distinct(m.inner, drain(elems))
		return setConsAlternatives(m, uniq, t, head, tail), nil

	default:
		return emptySeq[[]Atom](), &UnsupportedPatternError{Matcher: m.Name(), Tag: tag}
	}
}

// setConsAlternatives lazily yields one alternative per distinct element
// already computed in uniq; the tail of every alternative is the whole
// original target, since a Set element can be reused.
func setConsAlternatives(m setMatcher, uniq []Value, whole Value, headPat, tailPat Pattern) Seq[[]Atom] {
	if len(uniq) == 0 {
		return emptySeq[[]Atom]()
	}
	head, rest := uniq[0], uniq[1:]
	alt := []Atom{
		NewAtom(headPat, m.inner, head),
		NewAtom(tailPat, m, whole),
	}
	return Seq[[]Atom]{next: func() ([]Atom, Seq[[]Atom], bool) {
		return alt, setConsAlternatives(m, rest, whole, headPat, tailPat), true
	}}
}

// distinct returns elems with later duplicates (per inner.Equals) removed,
// preserving first-occurrence order.
func distinct(inner Matcher, elems []Value) []Value {
	out := make([]Value, 0, len(elems))
	for _, el := range elems {
		seen := false
		for _, kept := range out {
			if inner.Equals(kept, el) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, el)
		}
	}
	return out
}
