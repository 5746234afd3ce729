package match

import "fmt"

// multisetMatcher interprets its target as an unordered bag: Cons tries
// every element as the head, in positional (first-element-first) order,
// with the tail being every other element in its original relative order.
type multisetMatcher struct{ inner Matcher }

// MultisetMatcher returns the Multiset(inner) matcher.
func MultisetMatcher(inner Matcher) Matcher { return multisetMatcher{inner: inner} }

func (m multisetMatcher) Name() string { return "multiset(" + m.inner.Name() + ")" }

// Equals compares two Multiset-shaped targets as bags: every element of a
// must have an unused match in b. Both sides are drained to plain slices,
// so this is only meaningful for known-finite targets.
func (m multisetMatcher) Equals(a, b Value) bool {
	as, aok := a.AsList()
	bs, bok := b.AsList()
	if !aok || !bok {
		return valuesEqual(a, b)
	}
	aElems := drain(as)
	bElems := drain(bs)
	if len(aElems) != len(bElems) {
		return false
	}
	used := make([]bool, len(bElems))
	for _, x := range aElems {
		found := false
		for j, y := range bElems {
			if used[j] {
				continue
			}
			if m.inner.Equals(x, y) {
				used[j] = true
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

func drain(s Seq[Value]) []Value {
	out := []Value{}
	for {
		v, rest, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
		s = rest
	}
}

func (m multisetMatcher) Decompose(tag string, args []Pattern, _ Bindings, t Value) (Seq[[]Atom], error) {
	elems, ok := t.AsList()
	if !ok {
		return emptySeq[[]Atom](), fmt.Errorf("match: multiset matcher target is not a list value: %v", t)
	}

	switch tag {
	case "cons":
		head, tail := args[0], args[1]
		return multisetConsAlternatives(m, nil, elems, head, tail), nil

	default:
		return emptySeq[[]Atom](), &UnsupportedPatternError{Matcher: m.Name(), Tag: tag}
	}
}

// multisetConsAlternatives lazily enumerates one alternative per element
// position of a (possibly infinite) target, in positional order: the
// element at that position becomes the head, and every other element —
// those before it plus those after, in their original relative order —
// becomes the tail. Pulling the n-th alternative costs exactly n pulls
// from the underlying sequence, which is what makes Cons productive
// against an unbounded multiset target such as [1..].
func multisetConsAlternatives(m multisetMatcher, before []Value, remaining Seq[Value], headPat, tailPat Pattern) Seq[[]Atom] {
	return Seq[[]Atom]{next: func() ([]Atom, Seq[[]Atom], bool) {
		head, after, ok := remaining.Next()
		if !ok {
			return nil, emptySeq[[]Atom](), false
		}
		tailSeq := concatSeq(sliceSeq(before), after)
		alt := []Atom{
			NewAtom(headPat, m.inner, head),
			NewAtom(tailPat, m, LazyList(tailSeq)),
		}
		grown := append(append([]Value{}, before...), head)
		return alt, multisetConsAlternatives(m, grown, after, headPat, tailPat), true
	}}
}
