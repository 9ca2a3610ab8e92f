package Trees

import "math/bits"

// Cursor walks a SearchTree in ascending order. It keeps the left spine of the
// part of the tree that is still to be visited on an explicit stack, so it never
// writes to the tree. The zero value is an exhausted cursor.
type Cursor[T any] struct {
	st []*node[T]
}

// newCursor positioned at the smallest value of the subtree rooting at root.
// sz is a size hint used to preallocate the stack.
func newCursor[T any](root *node[T], sz int) *Cursor[T] {
	c := &Cursor[T]{st: make([]*node[T], 0, bits.Len(uint(sz))+1)}
	c.pushLeft(root)
	return c
}

func (c *Cursor[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.l {
		c.st = append(c.st, n)
	}
}

// HasNext reports whether Next will yield another value.
func (c *Cursor[T]) HasNext() bool {
	return len(c.st) > 0
}

// Next returns the next value in ascending order. The second return value is
// false once the cursor is exhausted, and stays false after that.
// Time: amortized O(1)
func (c *Cursor[T]) Next() (T, bool) {
	if len(c.st) == 0 {
		return *new(T), false
	}
	n := c.st[len(c.st)-1]
	c.st = c.st[:len(c.st)-1]
	c.pushLeft(n.r)
	return n.v, true
}
