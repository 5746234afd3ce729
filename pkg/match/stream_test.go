package match

import "testing"

// TestSeqLaziness exercises universal property 7: demanding the first k
// results from an infinite sequence terminates.
func TestSeqLaziness(t *testing.T) {
	var naturals func(n int) Seq[int]
	naturals = func(n int) Seq[int] {
		return Seq[int]{next: func() (int, Seq[int], bool) {
			return n, naturals(n + 1), true
		}}
	}

	got := Take(naturals(0), 5)
	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Take returned %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConcatSeqOrderPreserving(t *testing.T) {
	a := singleSeq(1)
	a = concatSeq(a, singleSeq(2))
	b := concatSeq(a, singleSeq(3))

	got := Take(b, 10)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEmptySeq(t *testing.T) {
	s := emptySeq[int]()
	if _, ok := First(s); ok {
		t.Error("expected empty sequence to yield no elements")
	}
}
