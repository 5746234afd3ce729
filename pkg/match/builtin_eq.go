package match

// eqMatcher is the atomic-equality matcher for leaf types (numbers,
// strings, symbols, ...). Like Something, it supports no User pattern
// former; ValueEq against it compares by value equality.
type eqMatcher struct{}

// Eq is the canonical leaf matcher.
func Eq() Matcher { return eqMatcher{} }

func (eqMatcher) Name() string { return "eq" }

func (eqMatcher) Equals(a, b Value) bool { return valuesEqual(a, b) }

func (m eqMatcher) Decompose(tag string, _ []Pattern, _ Bindings, _ Value) (Seq[[]Atom], error) {
	return emptySeq[[]Atom](), &UnsupportedPatternError{Matcher: m.Name(), Tag: tag}
}
