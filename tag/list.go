package tag

import "fmt"

// List is a homogeneous, order-preserving sequence of tags, all sharing
// the Elem tag id (spec §3 invariant 1). An empty list carries Elem ==
// End until a value of a concrete type is appended.
type List struct {
	Elem   ID
	values []any
}

// NewList creates an empty list with no declared element type. The
// element type is pinned by the first Append call, or left at End if the
// list stays empty.
func NewList() *List {
	return &List{Elem: End}
}

// NewListOf creates an empty list pinned to elem, even if it never
// receives a value. This is useful when round-tripping an empty typed
// list read from the wire.
func NewListOf(elem ID) *List {
	return &List{Elem: elem}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.values)
}

// At returns the element at index i. It panics if i is out of range.
func (l *List) At(i int) any {
	return l.values[i]
}

// Values returns the list's elements in order. The returned slice shares
// storage with the list; callers must not mutate it.
func (l *List) Values() []any {
	return l.values
}

// Append adds v to the end of the list.
//
// The first Append on an empty, untyped list pins Elem to v's tag id. A
// later Append whose type disagrees with Elem returns an error rather
// than silently truncating or coercing the value, per spec §3 invariant
// 1 and §7 HeterogeneousList.
func (l *List) Append(v any) error {
	id, ok := TypeOf(v)
	if !ok {
		return fmt.Errorf("tag: value of type %T is not a representable tag", v)
	}

	if len(l.values) == 0 && l.Elem == End {
		l.Elem = id
	} else if id != l.Elem {
		return fmt.Errorf("tag: list element type %s does not match declared type %s", id, l.Elem)
	}

	l.values = append(l.values, v)

	return nil
}

// MustAppend is like Append but panics on error. It is convenient for
// building literal trees in tests and examples where the element types
// are known to be consistent.
func (l *List) MustAppend(v any) *List {
	if err := l.Append(v); err != nil {
		panic(err)
	}

	return l
}

// Clone returns a deep copy of the list. Nested compounds and lists are
// cloned recursively; scalar and array elements are copied by value.
func (l *List) Clone() *List {
	out := &List{Elem: l.Elem, values: make([]any, len(l.values))}
	for i, v := range l.values {
		out.values[i] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []int8:
		return append([]int8(nil), t...)
	case []int32:
		return append([]int32(nil), t...)
	case []int64:
		return append([]int64(nil), t...)
	case *List:
		return t.Clone()
	case *Compound:
		return t.Clone()
	default:
		return v
	}
}
