package match

// State is a partial matching state: the bindings accumulated so far,
// plus the stack of atoms still to be resolved. A State with an empty
// atom stack is a solution.
type State struct {
	Bindings Bindings
	Atoms    []Atom

	// sinceProgress counts consecutive Later deferrals that have not been
	// interleaved with any other atom being consumed. If it ever exceeds
	// the number of atoms left in the stack, every remaining atom has
	// been round-tripped without progress: the state is a deadlock and is
	// dropped (see step).
	sinceProgress int
}

// newState seeds the initial matching state for a single top-level
// pattern/matcher/target triple.
func newState(p Pattern, m Matcher, t Value) State {
	return State{Bindings: NewBindings(), Atoms: []Atom{NewAtom(p, m, t)}}
}

// isSolution reports whether every atom in the stack has been resolved.
func (s State) isSolution() bool { return len(s.Atoms) == 0 }

// step pops the top atom and lazily expands it into its successor
// states, per the dispatch table in the matching-state specification.
// Most pattern formers produce at most two successors and so are wrapped
// directly; UserPattern delegates to the matcher's own (potentially
// infinite) Decompose sequence. Fatal, programmer-error conditions (an
// error from Decompose, such as UnsupportedPatternError, or an unknown
// pattern type) are reported via panic — see NoMatchError's doc comment.
func (s State) step() Seq[State] {
	atom := s.Atoms[0]
	rest := s.Atoms[1:]

	switch p := atom.Pattern.(type) {
	case WildcardPattern:
		return singleSeq(State{Bindings: s.Bindings, Atoms: rest})

	case VarBindPattern:
		return singleSeq(State{Bindings: s.Bindings.Append(atom.Target), Atoms: rest})

	case ValueEqPattern:
		return valueEqStep(s, atom, rest, p.Expr)

	case LambdaPattern:
		return valueEqStep(s, atom, rest, p.Fn)

	case PredicatePattern:
		if p.Fn(s.Bindings, atom.Target) {
			return singleSeq(State{Bindings: s.Bindings, Atoms: rest})
		}
		return emptySeq[State]()

	case AndPattern:
		newAtoms := []Atom{
			NewAtom(p.P, atom.Matcher, atom.Target),
			NewAtom(p.Q, atom.Matcher, atom.Target),
		}
		return singleSeq(State{Bindings: s.Bindings, Atoms: pushTop(newAtoms, rest)})

	case OrPattern:
		left := State{Bindings: s.Bindings, Atoms: pushTop([]Atom{NewAtom(p.P, atom.Matcher, atom.Target)}, rest)}
		right := State{Bindings: s.Bindings, Atoms: pushTop([]Atom{NewAtom(p.Q, atom.Matcher, atom.Target)}, rest)}
		return concatSeq(singleSeq(left), singleSeq(right))

	case NotPattern:
		return notStep(s, p, atom, rest)

	case LaterPattern:
		return laterStep(s, p, atom, rest)

	case UserPattern:
		return userStep(s, p, atom, rest)

	default:
		panic(&UnsupportedPatternError{Matcher: atom.Matcher.Name(), Tag: "<unknown pattern type>"})
	}
}

func valueEqStep(s State, atom Atom, rest []Atom, expr func(Bindings) Value) Seq[State] {
	v := expr(s.Bindings)
	if atom.Matcher.Equals(v, atom.Target) {
		return singleSeq(State{Bindings: s.Bindings, Atoms: rest})
	}
	return emptySeq[State]()
}

func notStep(s State, p NotPattern, atom Atom, rest []Atom) Seq[State] {
	sub := newState(p.P, atom.Matcher, atom.Target)
	sub.Bindings = s.Bindings
	_, ok := First(dfsSearch(sub))
	if ok {
		// p.P has a solution: Not fails.
		return emptySeq[State]()
	}
	return singleSeq(State{Bindings: s.Bindings, Atoms: rest})
}

func laterStep(s State, p LaterPattern, atom Atom, rest []Atom) Seq[State] {
	if s.Bindings.Len() >= p.Requires {
		return valueEqStep(s, atom, rest, p.Expr)
	}

	// Not ready yet: requeue at the bottom of the remaining stack,
	// incrementing the deferral count. If this atom has now cycled
	// through the whole stack with nothing else making progress, drop
	// the state: it is a deadlock (matching-state §4.E's no-progress
	// rule — see DeadlockError's doc comment for why this is a silent
	// drop rather than a returned/panicked error).
	deferredAtom := atom
	deferredAtom.deferred++
	sinceProgress := s.sinceProgress + 1
	if sinceProgress > len(s.Atoms) {
		return emptySeq[State]()
	}
	return singleSeq(State{
		Bindings:      s.Bindings,
		Atoms:         pushBottom(rest, deferredAtom),
		sinceProgress: sinceProgress,
	})
}

func userStep(s State, p UserPattern, atom Atom, rest []Atom) Seq[State] {
	alternatives, err := atom.Matcher.Decompose(p.Tag, p.Args, s.Bindings, atom.Target)
	if err != nil {
		panic(err)
	}
	return mapSeq(alternatives, func(altAtoms []Atom) State {
		return State{Bindings: s.Bindings, Atoms: pushTop(altAtoms, rest)}
	})
}
