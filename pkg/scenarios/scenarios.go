// Package scenarios collects the seed matching scenarios in runnable
// form, used by cmd/goegison so the CLI does not have to duplicate the
// pattern-construction code.
package scenarios

import (
	"fmt"

	m "github.com/gitrdm/goegison/pkg/match"
)

// Scenario is one named, runnable demonstration, available in both
// fair-breadth-first (Run) and depth-first (RunDFS) form. Both render up
// to limit solutions as strings; tr may be nil.
type Scenario struct {
	Name        string
	Description string
	Run         func(tr *m.Trace, limit int) []string
	RunDFS      func(tr *m.Trace, limit int) []string
}

// All is every registered scenario, in the order they appear in the
// concrete-scenario list.
var All = []Scenario{
	listConsScenario,
	multisetConsScenario,
	twinPrimesScenario,
	andOrNotScenario,
	laterForwardRefScenario,
	fairBFSPairsScenario,
	predicateFilterScenario,
}

// ByName returns the scenario with the given name, or false if none
// matches.
func ByName(name string) (Scenario, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// build wires a single clause's target/matcher/pattern/body into both a
// fair-BFS and a DFS runner, so each scenario below only states its
// pattern once.
func build[T any](target m.Value, matcher m.Matcher, pattern m.Pattern, render func(m.Bindings) T) (
	run func(tr *m.Trace, limit int) []T,
	runDFS func(tr *m.Trace, limit int) []T,
) {
	clause := m.NewClause(pattern, render)
	run = func(tr *m.Trace, limit int) []T {
		return m.Take(m.MatchAllTrace(target, matcher, []m.Clause[T]{clause}, tr), limit)
	}
	runDFS = func(tr *m.Trace, limit int) []T {
		return m.Take(m.MatchDFSTrace(target, matcher, []m.Clause[T]{clause}, tr), limit)
	}
	return run, runDFS
}

var listConsScenario = newScenario(
	"list-cons", "destructure [1 2 3] with Cons(x, xs) under List",
	m.IntList(1, 2, 3), m.ListMatcher(m.Eq()),
	m.Cons(m.VarBind("x"), m.VarBind("xs")),
	func(b m.Bindings) string { return fmt.Sprintf("x=%v xs=%v", b.At(0), b.At(1).Elements()) },
)

var multisetConsScenario = newScenario(
	"multiset-cons", "every possible head/tail split of {10, 20, 30} under Multiset",
	m.IntList(10, 20, 30), m.MultisetMatcher(m.Eq()),
	m.Cons(m.VarBind("x"), m.VarBind("xs")),
	func(b m.Bindings) string { return fmt.Sprintf("x=%v xs=%v", b.At(0), b.At(1).Elements()) },
)

var twinPrimesScenario = func() Scenario {
	p, q := m.VarBind("p"), m.VarBind("q")
	isTwin := m.Predicate(func(b m.Bindings, _ m.Value) bool {
		return b.At(1).Raw().(int)-b.At(0).Raw().(int) == 2
	})
	return newScenario(
		"twin-primes", "adjacent primes p, q with q - p == 2, via Join over the infinite prime stream",
		m.Primes(), m.ListMatcher(m.Eq()),
		m.And(m.Join(m.Wildcard(), m.Cons(p, m.Cons(q, m.Wildcard()))), isTwin),
		func(b m.Bindings) string { return fmt.Sprintf("(%v, %v)", b.At(0), b.At(1)) },
	)
}()

var andOrNotScenario = newScenario(
	"and-or-not", "4 matches (even AND not-three) OR (equals 99)",
	m.Int(4), m.Eq(),
	m.Or(
		m.And(
			m.Predicate(func(_ m.Bindings, v m.Value) bool { return v.Raw().(int)%2 == 0 }),
			m.Not(m.ValueEq(func(m.Bindings) m.Value { return m.Int(3) })),
		),
		m.ValueEq(func(m.Bindings) m.Value { return m.Int(99) }),
	),
	func(m.Bindings) string { return "matched" },
)

var laterForwardRefScenario = func() Scenario {
	later := m.Later(func(b m.Bindings) m.Value { return m.Int(b.At(0).Raw().(int) - 1) }, 1)
	return newScenario(
		"later-forward-ref", "Cons(Later(p -> p-1), Cons(x, xs)) against [1 2 3 4 5] binds x=2",
		m.IntList(1, 2, 3, 4, 5), m.ListMatcher(m.Eq()),
		m.Cons(later, m.Cons(m.VarBind("x"), m.VarBind("xs"))),
		func(b m.Bindings) string { return fmt.Sprintf("x=%v xs=%v", b.At(0), b.At(1).Elements()) },
	)
}()

var fairBFSPairsScenario = newScenario(
	"fair-bfs-pairs", "distinct (x, y) pairs from the infinite multiset [1..], fair-BFS to stay productive",
	m.IntsFrom(1), m.MultisetMatcher(m.Eq()),
	m.Cons(m.VarBind("x"), m.Cons(m.VarBind("y"), m.Wildcard())),
	func(b m.Bindings) string { return fmt.Sprintf("(%v, %v)", b.At(0), b.At(1)) },
)

var predicateFilterScenario = newScenario(
	"predicate-filter", "Cons(x, _) against [1 2 3 4 5 6] filtered to even x fails, since List's head is fixed",
	m.IntList(1, 2, 3, 4, 5, 6), m.ListMatcher(m.Eq()),
	m.And(
		m.Cons(m.VarBind("x"), m.Wildcard()),
		m.Predicate(func(b m.Bindings, _ m.Value) bool { return b.At(0).Raw().(int)%2 == 0 }),
	),
	func(b m.Bindings) string { return fmt.Sprintf("x=%v", b.At(0)) },
)

func newScenario(name, desc string, target m.Value, matcher m.Matcher, pattern m.Pattern, render func(m.Bindings) string) Scenario {
	run, runDFS := build(target, matcher, pattern, render)
	return Scenario{Name: name, Description: desc, Run: run, RunDFS: runDFS}
}

// RunFirst runs a scenario depth-first to just its first solution,
// mirroring MatchFirst rather than MatchAll. It returns ErrNoMatch (via
// err) when RunDFS(tr, 1) yields nothing.
func RunFirst(s Scenario, tr *m.Trace) (string, error) {
	results := s.RunDFS(tr, 1)
	if len(results) == 0 {
		return "", m.ErrNoMatch
	}
	return results[0], nil
}
