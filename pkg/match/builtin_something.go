package match

// somethingMatcher is the opaque matcher: it implements nothing beyond
// the universal patterns (Wildcard, VarBind, Predicate, ValueEq, ...). Any
// User pattern former directed at it is an error, since an opaque target
// has no declared decomposition.
type somethingMatcher struct{}

// Something is the canonical opaque matcher. Use it for a target whose
// internal shape the pattern should not inspect at all.
func Something() Matcher { return somethingMatcher{} }

func (somethingMatcher) Name() string { return "something" }

func (somethingMatcher) Equals(a, b Value) bool { return valuesEqual(a, b) }

func (m somethingMatcher) Decompose(tag string, _ []Pattern, _ Bindings, _ Value) (Seq[[]Atom], error) {
	return emptySeq[[]Atom](), &UnsupportedPatternError{Matcher: m.Name(), Tag: tag}
}
