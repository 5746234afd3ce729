package match

import "testing"

// TestArity exercises the static arity computation and its enforced
// preconditions directly, independent of any search.
func TestArity(t *testing.T) {
	t.Run("leaves", func(t *testing.T) {
		cases := []struct {
			name string
			p    Pattern
			want int
		}{
			{"wildcard", Wildcard(), 0},
			{"varbind", VarBind("x"), 1},
			{"valueeq", ValueEq(func(Bindings) Value { return Int(1) }), 0},
			{"predicate", Predicate(func(Bindings, Value) bool { return true }), 0},
			{"lambda", Lambda(func(Bindings) Value { return Int(1) }), 0},
			{"later", Later(func(Bindings) Value { return Int(1) }, 0), 0},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got, err := Arity(c.p)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != c.want {
					t.Errorf("Arity(%s) = %d, want %d", c.name, got, c.want)
				}
			})
		}
	})

	t.Run("and sums arities", func(t *testing.T) {
		p := And(VarBind("x"), VarBind("y"))
		got, err := Arity(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2 {
			t.Errorf("Arity(And) = %d, want 2", got)
		}
	})

	t.Run("or requires equal arity", func(t *testing.T) {
		p := Or(VarBind("x"), Wildcard())
		_, err := Arity(p)
		if err == nil {
			t.Fatal("expected ArityMismatchError, got nil")
		}
		var mismatch *ArityMismatchError
		if !asArityMismatch(err, &mismatch) {
			t.Fatalf("expected *ArityMismatchError, got %T: %v", err, err)
		}
	})

	t.Run("or with matching arity is fine", func(t *testing.T) {
		p := Or(VarBind("x"), VarBind("y"))
		got, err := Arity(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1 {
			t.Errorf("Arity(Or) = %d, want 1", got)
		}
	})

	t.Run("not requires arity zero operand", func(t *testing.T) {
		if _, err := Arity(Not(VarBind("x"))); err == nil {
			t.Fatal("expected error for Not(VarBind), got nil")
		}
		if _, err := Arity(Not(Wildcard())); err != nil {
			t.Fatalf("Not(Wildcard) should be arity zero: %v", err)
		}
	})

	t.Run("cons sums argument arities", func(t *testing.T) {
		p := Cons(VarBind("x"), VarBind("xs"))
		got, err := Arity(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2 {
			t.Errorf("Arity(Cons($x,$xs)) = %d, want 2", got)
		}
	})
}

func asArityMismatch(err error, out **ArityMismatchError) bool {
	if e, ok := err.(*ArityMismatchError); ok {
		*out = e
		return true
	}
	return false
}
