// Package match implements a non-linear pattern-matching engine over
// user-defined data structures, in the style of Egison.
//
// Given a target value, a Matcher describing how to decompose values of
// that shape, and a Pattern built from a small algebra of combinators, the
// package produces the stream of variable bindings that make the pattern
// hold against the target. A pattern matched against a list can be
// interpreted as a List (order matters), a Multiset (any order), or a Set
// (any subset), purely by choosing a different Matcher — the pattern
// itself does not change.
//
// The core does not attempt unification beyond value equality on bound
// variables, performs no type inference, does not optimize patterns, and
// does not persist or cache results across invocations. Search is
// single-threaded and lazy: MatchAll and MatchDFS return a Seq that is
// pulled element by element, so an infinite solution space is safe to
// consume a prefix of.
package match
