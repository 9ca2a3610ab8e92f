package Queues

import (
	"github.com/g-m-twostay/go-containers/Heaps"
	"golang.org/x/exp/constraints"
)

// PriorityQueue is a Queue that pops values in the order of a Heaps.Heap instead
// of insertion order.
type PriorityQueue[T any] struct {
	h *Heaps.Heap[T]
}

// MakePriorityQueue returns an empty queue popping the smallest (Heaps.Min) or
// largest (Heaps.Max) value first.
func MakePriorityQueue[T constraints.Ordered](o Heaps.Order) *PriorityQueue[T] {
	return &PriorityQueue[T]{Heaps.New[T](o)}
}

// MakePriorityQueueFunc returns an empty queue popping first the value that
// above puts above every other.
func MakePriorityQueueFunc[T any](above func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{Heaps.NewFunc(above)}
}

// PriorityQueueOf returns a queue holding vs. vs is copied.
func PriorityQueueOf[T constraints.Ordered](o Heaps.Order, vs ...T) *PriorityQueue[T] {
	return &PriorityQueue[T]{Heaps.From(append([]T(nil), vs...), o)}
}

// Push enqueues item.
func (q *PriorityQueue[T]) Push(item T) {
	q.h.Insert(item)
}

// Pop dequeues the top value, or returns *EmptyQueueError if there is none.
func (q *PriorityQueue[T]) Pop() (T, error) {
	if v, ok := q.h.ExtractTop(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

// Peek returns the top value, or the zero value if the queue is empty.
func (q *PriorityQueue[T]) Peek() T {
	v, _ := q.h.Peek()
	return v
}

// Top is Peek telling apart an empty queue.
func (q *PriorityQueue[T]) Top() (T, bool) {
	return q.h.Peek()
}

func (q *PriorityQueue[T]) Empty() bool {
	return q.h.Empty()
}

func (q *PriorityQueue[T]) Size() uint {
	return uint(q.h.Size())
}

// Sorted returns every queued value in pop order without dequeuing them.
func (q *PriorityQueue[T]) Sorted() []T {
	return q.h.Sorted()
}

func (q *PriorityQueue[T]) String() string {
	return q.h.String()
}
