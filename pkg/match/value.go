package match

import (
	"fmt"
	"reflect"
)

// Value is a type-erased carrier for target data and bound values. The
// engine never inspects a Value's contents; only matchers, clause bodies,
// and user-supplied closures recover the underlying Go value.
//
// A Value stored and later recovered via Raw is bit-identical to what was
// given to NewValue — Value never copies or coerces its payload.
type Value struct {
	raw any
}

// NewValue wraps an arbitrary Go value as a Value.
func NewValue(v any) Value { return Value{raw: v} }

// Raw recovers the underlying Go value. Callers downcast with a type
// assertion; coercion failures are a construction bug, not a runtime
// condition the engine guards against, since binding arities are declared
// statically per pattern former.
func (v Value) Raw() any { return v.raw }

// String renders the underlying value for diagnostics.
func (v Value) String() string { return fmt.Sprintf("%v", v.raw) }

// List builds a Value wrapping a (possibly infinite) sequence of Values,
// the representation List, Multiset, and Set matchers expect their target
// to be. A sequence rather than a plain slice, so that a target such as
// "the naturals" or "the primes" can be matched against productively:
// Cons and Join only ever pull as many elements as the search driver
// actually demands.
func List(elems ...Value) Value {
	return Value{raw: sliceSeq(elems)}
}

// LazyList builds a List-shaped Value directly from a Seq[Value], for
// targets that are naturally infinite (see IntsFrom, Primes).
func LazyList(s Seq[Value]) Value { return Value{raw: s} }

func sliceSeq(elems []Value) Seq[Value] {
	if len(elems) == 0 {
		return emptySeq[Value]()
	}
	head, rest := elems[0], elems[1:]
	return Seq[Value]{next: func() (Value, Seq[Value], bool) {
		return head, sliceSeq(rest), true
	}}
}

// AsList recovers the Seq[Value] a List-shaped Value wraps. The second
// return is false if the Value was not built with List or LazyList.
func (v Value) AsList() (Seq[Value], bool) {
	s, ok := v.raw.(Seq[Value])
	return s, ok
}

// Elements drains a List-shaped Value into a plain slice. Only safe to
// call on a known-finite list — used by Equals on container matchers and
// by tests/examples that already know their target terminates.
func (v Value) Elements() []Value {
	s, ok := v.AsList()
	if !ok {
		panic("match: value is not list-shaped")
	}
	out := []Value{}
	for {
		x, rest, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, x)
		s = rest
	}
}

// IntList is a convenience constructor for a finite List-shaped Value of
// plain ints, the shape the concrete scenarios in the matching-state
// specification are expressed over.
func IntList(nums ...int) Value {
	elems := make([]Value, len(nums))
	for i, n := range nums {
		elems[i] = NewValue(n)
	}
	return List(elems...)
}

// IntsFrom builds the infinite List-shaped Value n, n+1, n+2, ... — the
// "[n..]" target of the fair-BFS test scenarios.
func IntsFrom(n int) Value {
	var build func(n int) Seq[Value]
	build = func(n int) Seq[Value] {
		return Seq[Value]{next: func() (Value, Seq[Value], bool) {
			return Int(n), build(n + 1), true
		}}
	}
	return LazyList(build(n))
}

// Primes builds the infinite List-shaped Value of primes in increasing
// order, by plain trial division — sufficient for the small scale the
// seed scenarios exercise (twin primes under a few hundred), and not a
// component this engine claims to optimize (the core does not optimize
// patterns or targets, per the purpose-and-scope non-goals).
func Primes() Value {
	isPrime := func(n int) bool {
		if n < 2 {
			return false
		}
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}
	var build func(n int) Seq[Value]
	build = func(n int) Seq[Value] {
		for !isPrime(n) {
			n++
		}
		next := n
		return Seq[Value]{next: func() (Value, Seq[Value], bool) {
			return Int(next), build(next + 1), true
		}}
	}
	return LazyList(build(2))
}

// Int is a convenience constructor wrapping a plain int.
func Int(n int) Value { return NewValue(n) }

// valuesEqual is the engine's default notion of equality for atomic
// leaves: it is used by the Eq matcher and as the fallback for Something,
// and is reused by container matchers to compare elements pairwise.
// reflect.DeepEqual is used rather than ==, since bound values are not
// statically known to be comparable (they may themselves be slices).
func valuesEqual(a, b Value) bool {
	return reflect.DeepEqual(a.raw, b.raw)
}
