package match

import "fmt"

// listMatcher interprets its target as an ordered sequence: Cons splits
// strictly into head and tail, Join tries every prefix/suffix split from
// shortest prefix to longest.
type listMatcher struct{ inner Matcher }

// ListMatcher returns the List(inner) matcher: order-sensitive
// decomposition of a sequence whose elements are matched against inner.
func ListMatcher(inner Matcher) Matcher { return listMatcher{inner: inner} }

func (m listMatcher) Name() string { return "list(" + m.inner.Name() + ")" }

// Equals compares two List-shaped targets elementwise. Both sides are
// drained to a plain slice, so this is only meaningful for known-finite
// lists — the same caveat Value.Elements documents.
func (m listMatcher) Equals(a, b Value) bool {
	as, aok := a.AsList()
	bs, bok := b.AsList()
	if !aok || !bok {
		return valuesEqual(a, b)
	}
	return seqElementsEqual(m.inner, as, bs)
}

func seqElementsEqual(inner Matcher, as, bs Seq[Value]) bool {
	for {
		av, aRest, aok := as.Next()
		bv, bRest, bok := bs.Next()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if !inner.Equals(av, bv) {
			return false
		}
		as, bs = aRest, bRest
	}
}

func (m listMatcher) Decompose(tag string, args []Pattern, _ Bindings, t Value) (Seq[[]Atom], error) {
	elems, ok := t.AsList()
	if !ok {
		return emptySeq[[]Atom](), fmt.Errorf("match: list matcher target is not a list value: %v", t)
	}

	switch tag {
	case "cons":
		head, tail := args[0], args[1]
		first, rest, ok := elems.Next()
		if !ok {
			return emptySeq[[]Atom](), nil
		}
		alt := []Atom{
			NewAtom(head, m.inner, first),
			NewAtom(tail, m, LazyList(rest)),
		}
		return singleSeq(alt), nil

	case "join":
		prefix, suffix := args[0], args[1]
		return listJoinAlternatives(m, nil, elems, prefix, suffix), nil

	default:
		return emptySeq[[]Atom](), &UnsupportedPatternError{Matcher: m.Name(), Tag: tag}
	}
}

// listJoinAlternatives lazily enumerates every prefix/suffix split of a
// (possibly infinite) sequence, shortest prefix first. prefixSoFar holds
// the elements already committed to the prefix; producing the next
// alternative pulls exactly one further element from the remaining
// suffix, which is what keeps Join productive against an unbounded
// target such as the primes.
func listJoinAlternatives(m listMatcher, prefixSoFar []Value, suffix Seq[Value], prefixPat, suffixPat Pattern) Seq[[]Atom] {
	here := []Atom{
		NewAtom(prefixPat, m, List(prefixSoFar...)),
		NewAtom(suffixPat, m, LazyList(suffix)),
	}
	return Seq[[]Atom]{next: func() ([]Atom, Seq[[]Atom], bool) {
		next, rest, ok := suffix.Next()
		if !ok {
			return here, emptySeq[[]Atom](), true
		}
		grown := append(append([]Value{}, prefixSoFar...), next)
		return here, listJoinAlternatives(m, grown, rest, prefixPat, suffixPat), true
	}}
}
