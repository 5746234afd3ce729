package match

// Bindings is an ordered, append-only sequence of bound values. Position
// corresponds to the left-to-right order in which variable binders are
// encountered while walking the pattern tree. Bindings are treated as
// immutable snapshots: Append never mutates the receiver, so a single
// Bindings value can be safely shared as the common prefix of many search
// branches.
type Bindings struct {
	values []Value
}

// NewBindings returns the empty binding list.
func NewBindings() Bindings { return Bindings{} }

// Len reports how many values have been bound so far.
func (b Bindings) Len() int { return len(b.values) }

// At returns the value bound at position i. It panics on an out-of-range
// index, since the pattern algebra's static arities guarantee callers
// never construct an out-of-range access.
func (b Bindings) At(i int) Value { return b.values[i] }

// Append returns a new Bindings with v appended. The receiver's backing
// storage is never reused for the result, so two branches extending the
// same parent Bindings differently can never corrupt one another.
func (b Bindings) Append(v Value) Bindings {
	out := make([]Value, len(b.values)+1)
	copy(out, b.values)
	out[len(b.values)] = v
	return Bindings{values: out}
}

// AppendAll returns a new Bindings with vs appended in order.
func (b Bindings) AppendAll(vs []Value) Bindings {
	if len(vs) == 0 {
		return b
	}
	out := make([]Value, len(b.values)+len(vs))
	copy(out, b.values)
	copy(out[len(b.values):], vs)
	return Bindings{values: out}
}

// Slice returns the bound values in binding order. The returned slice is
// a defensive copy.
func (b Bindings) Slice() []Value {
	out := make([]Value, len(b.values))
	copy(out, b.values)
	return out
}
