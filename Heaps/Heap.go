package Heaps

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

// Order selects which end of a total order sits on top of a Heap.
type Order uint8

const (
	// Min puts the smallest value on top.
	Min Order = iota
	// Max puts the largest value on top.
	Max
)

func (o Order) String() string {
	switch o {
	case Min:
		return "Min"
	case Max:
		return "Max"
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ordering returns the comparator that realizes o for T.
func ordering[T constraints.Ordered](o Order) func(a, b T) bool {
	switch o {
	case Min:
		return func(a, b T) bool { return a < b }
	case Max:
		return func(a, b T) bool { return a > b }
	}
	panic(fmt.Sprintf("Heaps: unknown order %d", uint8(o)))
}

// Heap is a binary heap stored in a packed slice: the children of vs[i] are
// vs[2i+1] and vs[2i+2]. above(a, b) reports whether a belongs above b; it must
// be a strict order (irreflexive and transitive), otherwise the order in which
// values leave the heap is undefined.
// Equal values are all kept. A Heap isn't safe for concurrent use.
type Heap[T any] struct {
	vs    []T
	above func(a, b T) bool
}

// New returns an empty heap of ordered values.
func New[T constraints.Ordered](o Order) *Heap[T] {
	return &Heap[T]{above: ordering[T](o)}
}

// NewFunc returns an empty heap ordered by above.
func NewFunc[T any](above func(a, b T) bool) *Heap[T] {
	return &Heap[T]{above: above}
}

// From builds a heap in place from sli. The heap takes ownership of sli, which
// must not be used by the caller afterward.
// Time: O(n)
func From[T constraints.Ordered](sli []T, o Order) *Heap[T] {
	return FromFunc(sli, ordering[T](o))
}

// FromFunc is From with a custom comparator.
// Time: O(n)
func FromFunc[T any](sli []T, above func(a, b T) bool) *Heap[T] {
	u := &Heap[T]{above: above}
	u.heapify(sli)
	return u
}

// heapify sets the content to vs and sifts down every internal node, from the
// last one to the root. Leaves are already heaps of size 1.
func (u *Heap[T]) heapify(vs []T) {
	u.vs = vs
	for i := len(u.vs)/2 - 1; i >= 0; i-- {
		u.siftDown(i)
	}
	tracer().Debugf("heapified %d values", len(u.vs))
}

func parent(i int) int {
	return (i - 1) >> 1
}

// siftUp moves vs[i] toward the root while it belongs above its parent.
func (u *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !u.above(u.vs[i], u.vs[p]) {
			return
		}
		u.vs[i], u.vs[p] = u.vs[p], u.vs[i]
		i = p
	}
}

// childToSwap returns the child of i that should take its place, or -1 when
// neither child belongs above vs[i]. A child is chosen only when its sibling
// doesn't belong above it, so ties between the children stop the sift.
func (u *Heap[T]) childToSwap(i int) int {
	l, r := 2*i+1, 2*i+2
	if l >= len(u.vs) {
		return -1
	}
	if r >= len(u.vs) {
		if u.above(u.vs[l], u.vs[i]) {
			return l
		}
		return -1
	}
	if u.above(u.vs[l], u.vs[i]) && !u.above(u.vs[r], u.vs[l]) {
		return l
	}
	if u.above(u.vs[r], u.vs[i]) && !u.above(u.vs[l], u.vs[r]) {
		return r
	}
	return -1
}

// siftDown moves vs[i] away from the root while a child belongs above it.
func (u *Heap[T]) siftDown(i int) {
	for c := u.childToSwap(i); c >= 0; c = u.childToSwap(i) {
		u.vs[i], u.vs[c] = u.vs[c], u.vs[i]
		i = c
	}
}

// Size of the heap.
func (u *Heap[T]) Size() int {
	return len(u.vs)
}

// Empty reports whether the heap holds no value.
func (u *Heap[T]) Empty() bool {
	return len(u.vs) == 0
}

// Clear drops every value, keeping the allocated storage.
func (u *Heap[T]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
}

// Insert v.
// Time: O(log n)
func (u *Heap[T]) Insert(v T) {
	u.vs = append(u.vs, v)
	u.siftUp(len(u.vs) - 1)
}

// Peek returns the top value without removing it. Returns (zero, false) if the
// heap is empty.
// Time: O(1)
func (u *Heap[T]) Peek() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	return u.vs[0], true
}

// ExtractTop removes and returns the top value. Returns (zero, false) if the heap
// is empty.
// Time: O(log n)
func (u *Heap[T]) ExtractTop() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	top, last := u.vs[0], len(u.vs)-1
	u.vs[0] = u.vs[last]
	u.vs[last] = *new(T)
	u.vs = u.vs[:last]
	u.siftDown(0)
	return top, true
}

// ReplaceTop puts v in place of the top value and returns the value it replaced.
// This is one sift instead of the two that ExtractTop followed by Insert take.
// On an empty heap v is inserted and (zero, false) is returned.
// Time: O(log n)
func (u *Heap[T]) ReplaceTop(v T) (T, bool) {
	if len(u.vs) == 0 {
		u.vs = append(u.vs, v)
		return *new(T), false
	}
	top := u.vs[0]
	u.vs[0] = v
	u.siftDown(0)
	return top, true
}

// Sorted returns every value in the order they would be extracted. The heap
// itself is left unchanged.
// Time: O(n log n)
func (u *Heap[T]) Sorted() []T {
	tmp := Heap[T]{make([]T, len(u.vs)), u.above}
	copy(tmp.vs, u.vs)
	s := make([]T, 0, len(u.vs))
	for v, ok := tmp.ExtractTop(); ok; v, ok = tmp.ExtractTop() {
		s = append(s, v)
	}
	return s
}

// Valid reports whether no child belongs above its parent.
// Time: O(n)
func (u *Heap[T]) Valid() bool {
	for i := 1; i < len(u.vs); i++ {
		if u.above(u.vs[i], u.vs[parent(i)]) {
			tracer().Errorf("heap: value at %d belongs above its parent", i)
			return false
		}
	}
	return true
}

// String formats the backing slice, e.g. [1 5 3].
func (u *Heap[T]) String() string {
	return fmt.Sprint(u.vs)
}
