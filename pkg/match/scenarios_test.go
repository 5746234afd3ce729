package match_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/gitrdm/goegison/pkg/match"
)

// drainAll pulls every element of s into a plain slice. Only used in
// tests against targets already known to be finite.
func drainAll[T any](s m.Seq[T]) []T {
	out := []T{}
	for {
		v, rest, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
		s = rest
	}
}

func TestListConsDestructure(t *testing.T) {
	target := m.IntList(1, 2, 3)
	x := m.VarBind("x")
	xs := m.VarBind("xs")
	clause := m.NewClause(
		m.Cons(x, xs),
		func(b m.Bindings) []int {
			head := b.At(0).Raw().(int)
			var tail []int
			for _, v := range b.At(1).Elements() {
				tail = append(tail, v.Raw().(int))
			}
			return append([]int{head}, tail...)
		},
	)
	got, err := m.MatchFirst(target, m.ListMatcher(m.Eq()), []m.Clause[[]int]{clause})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

// TestMultisetConsAnyOrder mirrors the matching-state specification's
// concrete scenario 2 exactly: Cons($x, $xs) against a Multiset visits
// every head/tail split in positional (first-element-first) order, not
// merely as-a-set.
func TestMultisetConsAnyOrder(t *testing.T) {
	target := m.IntList(10, 20, 30)
	x := m.VarBind("x")
	xs := m.VarBind("xs")
	type headTail struct {
		Head int
		Tail []int
	}
	clause := m.NewClause(
		m.Cons(x, xs),
		func(b m.Bindings) headTail {
			var tail []int
			for _, v := range b.At(1).Elements() {
				tail = append(tail, v.Raw().(int))
			}
			return headTail{Head: b.At(0).Raw().(int), Tail: tail}
		},
	)
	got := drainAll(m.MatchAll(target, m.MultisetMatcher(m.Eq()), []m.Clause[headTail]{clause}))
	want := []headTail{
		{10, []int{20, 30}},
		{20, []int{10, 30}},
		{30, []int{10, 20}},
	}
	assert.Equal(t, want, got)
}

// TestTwinPrimesViaJoin exercises Join against the infinite prime
// sequence: Join(Wildcard, Cons(p, Cons(q, Wildcard))) picks out every
// adjacent pair in the stream, and the predicate filters to pairs two
// apart.
func TestTwinPrimesViaJoin(t *testing.T) {
	target := m.Primes()
	p := m.VarBind("p")
	q := m.VarBind("q")
	isTwin := m.Predicate(func(b m.Bindings, _ m.Value) bool {
		return b.At(1).Raw().(int)-b.At(0).Raw().(int) == 2
	})
	clause := m.NewClause(
		m.And(
			m.Join(m.Wildcard(), m.Cons(p, m.Cons(q, m.Wildcard()))),
			isTwin,
		),
		func(b m.Bindings) [2]int { return [2]int{b.At(0).Raw().(int), b.At(1).Raw().(int)} },
	)
	results := m.Take(m.MatchAll(target, m.ListMatcher(m.Eq()), []m.Clause[[2]int]{clause}), 3)
	require.Len(t, results, 3)
	want := [][2]int{{3, 5}, {5, 7}, {11, 13}}
	for i, pair := range results {
		if diff := cmp.Diff(want[i], pair); diff != "" {
			t.Errorf("twin prime pair %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestAndOrNotValueOverMultiset mirrors concrete scenario 4 exactly:
// Cons(And(Not(ValueEq(5)), $x), Cons(And(Or(ValueEq(1),ValueEq(2)), $y), $xs))
// against {1,2,5,9,4} as a Multiset — nested And/Or/Not/ValueEq
// composition inside a nested Cons, asserted to the spec's exact
// (x, y, xs) tuple sequence.
func TestAndOrNotValueOverMultiset(t *testing.T) {
	target := m.IntList(1, 2, 5, 9, 4)
	x, y, xs := m.VarBind("x"), m.VarBind("y"), m.VarBind("xs")
	notFive := m.Not(m.ValueEq(func(m.Bindings) m.Value { return m.Int(5) }))
	oneOrTwo := m.Or(
		m.ValueEq(func(m.Bindings) m.Value { return m.Int(1) }),
		m.ValueEq(func(m.Bindings) m.Value { return m.Int(2) }),
	)
	type triple struct {
		X, Y int
		XS   []int
	}
	clause := m.NewClause(
		m.Cons(m.And(notFive, x), m.Cons(m.And(oneOrTwo, y), xs)),
		func(b m.Bindings) triple {
			var tail []int
			for _, v := range b.At(2).Elements() {
				tail = append(tail, v.Raw().(int))
			}
			return triple{X: b.At(0).Raw().(int), Y: b.At(1).Raw().(int), XS: tail}
		},
	)
	got := drainAll(m.MatchAll(target, m.MultisetMatcher(m.Eq()), []m.Clause[triple]{clause}))
	want := []triple{
		{1, 2, []int{5, 9, 4}},
		{2, 1, []int{5, 9, 4}},
		{9, 1, []int{2, 5, 4}},
		{9, 2, []int{1, 5, 4}},
		{4, 1, []int{2, 5, 9}},
		{4, 2, []int{1, 5, 9}},
	}
	assert.Equal(t, want, got)
}

func TestAndOrNotComposition(t *testing.T) {
	target := m.Int(4)
	isEven := m.Predicate(func(_ m.Bindings, v m.Value) bool { return v.Raw().(int)%2 == 0 })
	notThree := m.Not(m.ValueEq(func(m.Bindings) m.Value { return m.Int(3) }))
	clause := m.NewClause(
		m.Or(
			m.And(isEven, notThree),
			m.ValueEq(func(m.Bindings) m.Value { return m.Int(99) }),
		),
		func(m.Bindings) string { return "matched" },
	)
	got, err := m.MatchFirst(target, m.Eq(), []m.Clause[string]{clause})
	require.NoError(t, err)
	assert.Equal(t, "matched", got)
}

// TestLaterForwardReference mirrors the forward-reference scenario:
// matching [1..5] against Cons(Later(p -> p-1, requires 1), Cons(x, xs))
// must bind x=2, xs=[3,4,5], since Later's equality check cannot run
// until x (the sibling one position to its right) has been bound.
func TestLaterForwardReference(t *testing.T) {
	target := m.IntList(1, 2, 3, 4, 5)
	x := m.VarBind("x")
	xs := m.VarBind("xs")
	later := m.Later(func(b m.Bindings) m.Value {
		return m.Int(b.At(0).Raw().(int) - 1)
	}, 1)
	type headTail struct {
		Head int
		Tail []int
	}
	clause := m.NewClause(
		m.Cons(later, m.Cons(x, xs)),
		func(b m.Bindings) headTail {
			head := b.At(0).Raw().(int)
			var tail []int
			for _, v := range b.At(1).Elements() {
				tail = append(tail, v.Raw().(int))
			}
			return headTail{Head: head, Tail: tail}
		},
	)
	result, err := m.MatchFirst(target, m.ListMatcher(m.Eq()), []m.Clause[headTail]{clause})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Head)
	assert.Equal(t, []int{3, 4, 5}, result.Tail)
}

// TestFairBFSPairsOverInfiniteMultiset mirrors concrete scenario 6
// exactly: Cons($x, Cons($y, _)) against the infinite multiset [1..],
// fair-BFS to the documented diagonal order, not merely x != y.
func TestFairBFSPairsOverInfiniteMultiset(t *testing.T) {
	target := m.IntsFrom(1)
	x := m.VarBind("x")
	y := m.VarBind("y")
	clause := m.NewClause(
		m.Cons(x, m.Cons(y, m.Wildcard())),
		func(b m.Bindings) [2]int { return [2]int{b.At(0).Raw().(int), b.At(1).Raw().(int)} },
	)
	results := m.Take(m.MatchAll(target, m.MultisetMatcher(m.Eq()), []m.Clause[[2]int]{clause}), 10)
	require.Len(t, results, 10)
	want := [][2]int{
		{1, 2}, {1, 3}, {2, 1}, {1, 4}, {2, 3},
		{3, 1}, {1, 5}, {2, 4}, {3, 2}, {4, 1},
	}
	for i, pair := range want {
		if diff := cmp.Diff(pair, results[i]); diff != "" {
			t.Errorf("pair %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestPredicateFiltering(t *testing.T) {
	target := m.IntList(1, 2, 3, 4, 5, 6)
	x := m.VarBind("x")
	even := m.Predicate(func(b m.Bindings, _ m.Value) bool {
		return b.At(0).Raw().(int)%2 == 0
	})
	clause := m.NewClause(
		m.And(m.Cons(x, m.Wildcard()), even),
		func(b m.Bindings) int { return b.At(0).Raw().(int) },
	)
	_, err := m.MatchFirst(target, m.ListMatcher(m.Eq()), []m.Clause[int]{clause})
	assert.ErrorIs(t, err, m.ErrNoMatch)
}

// TestPredicateFilteringOverMultiset is the exact concrete scenario from
// the matching-state specification's testable-properties section:
// Cons(And(Predicate(even), $x), _) against a Multiset picks every even
// element in turn as the head, in positional order.
func TestPredicateFilteringOverMultiset(t *testing.T) {
	target := m.IntList(1, 2, 3, 4, 5, 6, 7, 8)
	x := m.VarBind("x")
	even := m.Predicate(func(_ m.Bindings, v m.Value) bool { return v.Raw().(int)%2 == 0 })
	clause := m.NewClause(
		m.Cons(m.And(even, x), m.Wildcard()),
		func(b m.Bindings) int { return b.At(0).Raw().(int) },
	)
	got := drainAll(m.MatchAll(target, m.MultisetMatcher(m.Eq()), []m.Clause[int]{clause}))
	assert.Equal(t, []int{2, 4, 6, 8}, got)
}
