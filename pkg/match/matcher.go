package match

// Matcher is the extension point matcher authors implement: a marker
// paired with a decomposition strategy that determines which User pattern
// formers apply to values of a particular shape, and how they decompose.
//
// Decompose must be total — return an empty (nil) alternative list rather
// than failing — and referentially transparent: calling it twice with the
// same arguments must yield equivalent alternatives. Returning a non-nil
// error from Decompose signals that the matcher cannot decompose the atom
// at all: tag is not supported by this matcher (UnsupportedPatternError),
// or, for the built-in container matchers, the target is not list-shaped.
// The engine panics with that error. It is distinct from "tag is supported
// but produced zero alternatives for this target", which is a normal
// match failure, not an error.
type Matcher interface {
	// Name identifies the matcher for diagnostics and error messages.
	Name() string

	// Equals reports whether two targets of this matcher's shape are
	// equal. Leaf matchers compare by value; container matchers compare
	// structurally via their inner matcher.
	Equals(a, b Value) bool

	// Decompose answers, for the User pattern former named tag directed
	// at this matcher with target t under bindings b: a (possibly
	// infinite, lazily produced) sequence of alternatives, each
	// alternative a list of new MatchingAtoms whose conjunction is
	// equivalent to "this User(tag, args) matches t". Join against an
	// unbounded target is the reason this is a Seq rather than a plain
	// slice: the set of prefix/suffix splits of an infinite list is
	// itself infinite, and must be produced on demand.
	Decompose(tag string, args []Pattern, b Bindings, t Value) (Seq[[]Atom], error)
}

// Atom is a single unit of unresolved match obligation: a pattern paired
// with the matcher and target it is to be checked against.
type Atom struct {
	Pattern Pattern
	Matcher Matcher
	Target  Value

	// deferred counts how many times this atom has been re-queued
	// because it was a Later pattern whose dependencies were not yet
	// bound. It is only meaningful for LaterPattern atoms.
	deferred int
}

// NewAtom constructs a MatchingAtom.
func NewAtom(p Pattern, m Matcher, t Value) Atom {
	return Atom{Pattern: p, Matcher: m, Target: t}
}

// concatAtoms returns a freshly allocated slice holding a's elements
// followed by b's. Atom stacks are never mutated in place: every
// expansion step produces a new stack so that sibling search branches
// sharing a stack prefix cannot corrupt one another.
func concatAtoms(a, b []Atom) []Atom {
	out := make([]Atom, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// pushTop returns rest with newAtoms prepended — they will be processed
// before anything already in rest.
func pushTop(newAtoms []Atom, rest []Atom) []Atom {
	return concatAtoms(newAtoms, rest)
}

// pushBottom returns rest with atom appended — it will be processed only
// after everything already in rest, used to re-queue a deferred Later
// atom.
func pushBottom(rest []Atom, atom Atom) []Atom {
	return concatAtoms(rest, []Atom{atom})
}
