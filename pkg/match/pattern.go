package match

import "fmt"

// Pattern is the sum of every pattern former the algebra supports. No
// evaluation happens at construction time: closures captured by a pattern
// are only invoked once the search driver pops the atom carrying them.
type Pattern interface {
	isPattern()
}

// WildcardPattern binds nothing and always matches.
type WildcardPattern struct{}

// Wildcard constructs the pattern that matches any target and binds
// nothing.
func Wildcard() Pattern { return WildcardPattern{} }

func (WildcardPattern) isPattern() {}

// VarBindPattern binds the whole target to the next binding slot. Name is
// advisory, carried only for diagnostics and surface-syntax round-tripping.
type VarBindPattern struct{ Name string }

// VarBind constructs a pattern that binds the target under the given
// (advisory) name.
func VarBind(name string) Pattern { return VarBindPattern{Name: name} }

func (VarBindPattern) isPattern() {}

// ValueEqPattern matches iff the target equals the value produced by Expr,
// a closure over the bindings accumulated so far.
type ValueEqPattern struct{ Expr func(Bindings) Value }

// ValueEq constructs an equality pattern whose comparison value is
// computed from the current bindings.
func ValueEq(expr func(Bindings) Value) Pattern { return ValueEqPattern{Expr: expr} }

func (ValueEqPattern) isPattern() {}

// PredicatePattern matches iff Fn(bindings, target) is true. Binds
// nothing.
type PredicatePattern struct{ Fn func(Bindings, Value) bool }

// Predicate constructs a zero-arity filter pattern.
func Predicate(fn func(Bindings, Value) bool) Pattern { return PredicatePattern{Fn: fn} }

func (PredicatePattern) isPattern() {}

// AndPattern matches iff P matches, then Q matches against the same
// target under the bindings P produced. Its arity is the sum of P's and
// Q's.
type AndPattern struct{ P, Q Pattern }

// And constructs a conjunction: match p, then match q under p's bindings,
// against the same target and matcher.
func And(p, q Pattern) Pattern { return AndPattern{P: p, Q: q} }

func (AndPattern) isPattern() {}

// OrPattern is the union of P's and Q's alternatives. Both sides must
// declare equal binding arity; this is checked before a search over an Or
// pattern begins.
type OrPattern struct{ P, Q Pattern }

// Or constructs a disjunction. p and q must have equal static arity.
func Or(p, q Pattern) Pattern { return OrPattern{P: p, Q: q} }

func (OrPattern) isPattern() {}

// NotPattern matches iff P produces no solution under the current
// bindings. Binds nothing; P itself must have arity zero.
type NotPattern struct{ P Pattern }

// Not constructs a negation. p must have arity zero.
func Not(p Pattern) Pattern { return NotPattern{P: p} }

func (NotPattern) isPattern() {}

// LaterPattern evaluates to an equality pattern, but only once Requires
// bindings have been produced by sibling patterns to its right. Used to
// express forward references — e.g. "this value equals the next bound
// value, minus one".
type LaterPattern struct {
	Expr     func(Bindings) Value
	Requires int
}

// Later constructs a deferred equality pattern. requires is the minimum
// number of bindings that must exist before expr may safely be evaluated
// — i.e. the binding-list length once the sibling pattern(s) expr depends
// on have been processed.
func Later(expr func(Bindings) Value, requires int) Pattern {
	return LaterPattern{Expr: expr, Requires: requires}
}

func (LaterPattern) isPattern() {}

// LambdaPattern is a pure value pattern, matched by equality exactly like
// ValueEq. It exists as a distinct pattern former to mirror the source
// algebra's naming (a pattern that computes its value from bindings alone,
// with no forward-reference deferral).
type LambdaPattern struct{ Fn func(Bindings) Value }

// Lambda constructs a pattern equivalent to ValueEq(fn).
func Lambda(fn func(Bindings) Value) Pattern { return LambdaPattern{Fn: fn} }

func (LambdaPattern) isPattern() {}

// UserPattern is the matcher-level extension point: list/multiset/set cons
// and join, and any matcher-specific pattern former a user defines. Tag
// names the former (e.g. "cons", "join"); Args are its sub-patterns.
// Decomposition is delegated entirely to the Matcher the atom carrying
// this pattern is directed at.
type UserPattern struct {
	Tag  string
	Args []Pattern
}

// User constructs a matcher-directed pattern former.
func User(tag string, args ...Pattern) Pattern {
	return UserPattern{Tag: tag, Args: args}
}

func (UserPattern) isPattern() {}

// Cons constructs the canonical two-argument "head/tail" pattern former
// that List, Multiset, and Set all implement under the tag "cons".
func Cons(head, tail Pattern) Pattern { return User("cons", head, tail) }

// Join constructs the two-argument "prefix/suffix split" pattern former
// that List implements under the tag "join".
func Join(prefix, suffix Pattern) Pattern { return User("join", prefix, suffix) }

// Arity computes a pattern's statically declared binding arity, the
// number of values a successful match contributes to Bindings. It also
// enforces the algebra's static preconditions: Or branches must agree in
// arity, and Not's operand must itself have arity zero. An Or violation is
// reported as *ArityMismatchError; a Not violation as a plain error.
func Arity(p Pattern) (int, error) {
	switch v := p.(type) {
	case WildcardPattern:
		return 0, nil
	case VarBindPattern:
		return 1, nil
	case ValueEqPattern:
		return 0, nil
	case PredicatePattern:
		return 0, nil
	case LambdaPattern:
		return 0, nil
	case LaterPattern:
		return 0, nil
	case AndPattern:
		la, err := Arity(v.P)
		if err != nil {
			return 0, err
		}
		lb, err := Arity(v.Q)
		if err != nil {
			return 0, err
		}
		return la + lb, nil
	case OrPattern:
		la, err := Arity(v.P)
		if err != nil {
			return 0, err
		}
		lb, err := Arity(v.Q)
		if err != nil {
			return 0, err
		}
		if la != lb {
			return 0, &ArityMismatchError{Left: la, Right: lb}
		}
		return la, nil
	case NotPattern:
		la, err := Arity(v.P)
		if err != nil {
			return 0, err
		}
		if la != 0 {
			return 0, fmt.Errorf("match: Not operand must have arity zero, got %d", la)
		}
		return 0, nil
	case UserPattern:
		sum := 0
		for _, sub := range v.Args {
			a, err := Arity(sub)
			if err != nil {
				return 0, err
			}
			sum += a
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("match: unknown pattern type %T", p)
	}
}
