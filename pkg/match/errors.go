package match

import "fmt"

// NoMatchError is returned by MatchFirst when no clause has any solution.
// It is the only error kind the core ever returns as an ordinary Go
// error; ArityMismatchError and UnsupportedPatternError below indicate a
// malformed pattern/matcher pairing and are raised as a panic, since they
// are programmer errors rather than expected runtime outcomes.
// DeadlockError is never raised.
type NoMatchError struct{}

func (*NoMatchError) Error() string { return "match: no clause matched" }

// ErrNoMatch is the sentinel NoMatchError value MatchFirst returns.
var ErrNoMatch = &NoMatchError{}

// ArityMismatchError reports that an Or pattern's two branches declared
// different binding arities, a static precondition of the pattern
// algebra. Detected eagerly, before a search begins, by walking the
// clause's pattern with Arity.
type ArityMismatchError struct {
	Left, Right int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("match: Or branches have mismatched arity (%d vs %d)", e.Left, e.Right)
}

// UnsupportedPatternError reports that a User pattern former was directed
// at a matcher that does not implement it — e.g. Cons against Something.
// Detected lazily, the first time the engine tries to expand that atom.
type UnsupportedPatternError struct {
	Matcher string
	Tag     string
}

func (e *UnsupportedPatternError) Error() string {
	return fmt.Sprintf("match: matcher %q does not support pattern former %q", e.Matcher, e.Tag)
}

// DeadlockError would report that every remaining atom in a state is a
// Later pattern whose dependencies can never resolve. In practice this
// condition is handled per-state by silently dropping the state (per the
// no-progress rule in the matching state dispatch), exactly as a branch
// that simply fails would be — see State.step. DeadlockError exists so
// that behavior has a name in diagnostics and tests, not because the
// engine ever returns or panics with one.
type DeadlockError struct{}

func (*DeadlockError) Error() string {
	return "match: remaining atoms are all deferred Later patterns with no progress"
}
