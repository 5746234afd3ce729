package match

// Seq is a lazy, pull-based sequence of results. It is the single-
// threaded analogue of the teacher engine's channel-backed ResultStream:
// the same Take/more-than-one-result shape, but driven by the consumer
// calling Next rather than by a producer goroutine pushing into a
// channel, since the matching-state specification requires the search
// driver to suspend whenever its caller stops pulling, with no background
// threads and no shared mutable state.
//
// A zero Seq is the empty sequence.
type Seq[T any] struct {
	next func() (T, Seq[T], bool)
}

// Next pulls the next element, if any. The returned Seq is the remainder
// of the sequence; ok is false once the sequence is exhausted.
func (s Seq[T]) Next() (T, Seq[T], bool) {
	if s.next == nil {
		var zero T
		return zero, Seq[T]{}, false
	}
	return s.next()
}

// emptySeq returns the empty sequence.
func emptySeq[T any]() Seq[T] { return Seq[T]{} }

// singleSeq returns a sequence yielding exactly v.
func singleSeq[T any](v T) Seq[T] {
	return Seq[T]{next: func() (T, Seq[T], bool) {
		return v, emptySeq[T](), true
	}}
}

// concatSeq lazily appends b after a: a is fully exhausted (one Next call
// at a time) before b's first element is pulled.
func concatSeq[T any](a, b Seq[T]) Seq[T] {
	return Seq[T]{next: func() (T, Seq[T], bool) {
		v, rest, ok := a.Next()
		if ok {
			return v, concatSeq(rest, b), true
		}
		return b.Next()
	}}
}

// concatAllSeq lazily concatenates a sequence-of-sequences produced one
// at a time by gen(i) for i in [0, n). Nothing beyond gen(idx) is
// evaluated until the sequence at idx is exhausted.
func concatAllSeq[T any](n int, gen func(i int) Seq[T]) Seq[T] {
	var build func(i int) Seq[T]
	build = func(i int) Seq[T] {
		if i >= n {
			return emptySeq[T]()
		}
		return Seq[T]{next: func() (T, Seq[T], bool) {
			v, rest, ok := gen(i).Next()
			if ok {
				return v, concatSeq(rest, build(i+1)), true
			}
			return build(i + 1).Next()
		}}
	}
	return build(0)
}

// flatMapSeq lazily concatenates f(a) for every a pulled from s, without
// requiring s (or any f(a)) to be finite: only as many elements of s, and
// of the f(a) sequences already started, are pulled as the consumer
// demands.
func flatMapSeq[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	return Seq[B]{next: func() (B, Seq[B], bool) {
		a, restA, ok := s.Next()
		if !ok {
			var zero B
			return zero, Seq[B]{}, false
		}
		return concatSeq(f(a), flatMapSeq(restA, f)).Next()
	}}
}

// mapSeq lazily applies f to every element of s.
func mapSeq[A, B any](s Seq[A], f func(A) B) Seq[B] {
	return Seq[B]{next: func() (B, Seq[B], bool) {
		v, rest, ok := s.Next()
		if !ok {
			var zero B
			return zero, Seq[B]{}, false
		}
		return f(v), mapSeq(rest, f), true
	}}
}

// Take pulls up to n elements from s, demanding no more of the underlying
// sequence than necessary — the property that makes matching over
// infinite targets productive.
func Take[T any](s Seq[T], n int) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, rest, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
		s = rest
	}
	return out
}

// First pulls the first element of s, if any.
func First[T any](s Seq[T]) (T, bool) {
	v, _, ok := s.Next()
	return v, ok
}
