package Trees

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// SearchTree is a binary search tree with no repeated values. The shape is
// maintained by the Balance chosen at construction, which can't change for the
// lifetime of the tree.
// Inserting a value equal to one already in the tree leaves the tree unchanged,
// so the tree behaves as a set.
// T must be totally ordered by < and ==. Floating point NaN, or any other value
// that breaks this, leaves the tree in an undefined (but memory safe) shape.
// A SearchTree isn't safe for concurrent use; callers must synchronize.
type SearchTree[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
	bal  Balance
	rg   *rand.Rand // priority source, only used by Treap.
}

type config struct {
	rg *rand.Rand
}

// Option configures a SearchTree at construction.
type Option func(*config)

// WithRand sets the source of Treap priorities. Using a seeded source makes the
// shape of a Treap reproducible.
func WithRand(rg *rand.Rand) Option {
	return func(c *config) {
		c.rg = rg
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New returns an empty SearchTree balanced by b. It panics if b isn't one of the
// declared strategies.
func New[T constraints.Ordered](b Balance, opts ...Option) *SearchTree[T] {
	if !b.valid() {
		panic(fmt.Sprintf("Trees: unknown balance strategy %d", uint8(b)))
	}
	c := config{}
	for _, o := range opts {
		o(&c)
	}
	if c.rg == nil && b == Treap {
		c.rg = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tracer().Debugf("new %s search tree", b)
	return &SearchTree[T]{bal: b, rg: c.rg}
}

// From returns a SearchTree balanced by b containing the values of sli, inserted
// one by one in order. Repeated values collapse into one.
// Time: O(n*D)
func From[T constraints.Ordered](b Balance, sli []T, opts ...Option) *SearchTree[T] {
	u := New[T](b, opts...)
	for _, v := range sli {
		u.Insert(v)
	}
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *SearchTree[T]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no value.
func (u *SearchTree[T]) Empty() bool {
	return u.sz == 0
}

// Strategy returns the Balance the tree was built with.
func (u *SearchTree[T]) Strategy() Balance {
	return u.bal
}

// Clear drops every node. The strategy and priority source are kept.
func (u *SearchTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// insert v into the subtree owned by curPtr recursively. Returns false when v is
// already there, in which case nothing below curPtr was touched.
func (u *SearchTree[T]) insert(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = u.newNode(v)
		u.sz++
		return true
	}
	inserted := false
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v == cur.v {
		return false
	} else {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		u.rebalance(curPtr)
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive.
// Returns false, leaving the tree untouched, if v is already in the tree.
// Time: O(D)
func (u *SearchTree[T]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// remove v from the subtree owned by curPtr recursively. Returns whether a node
// was unlinked.
func (u *SearchTree[T]) remove(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if v < cur.v {
		deleted = u.remove(&cur.l, v)
	} else if v > cur.v {
		deleted = u.remove(&cur.r, v)
	} else if cur.l != nil && cur.r != nil {
		// take over the successor's value, then remove the successor from the
		// right subtree so that every node on its path gets rebalanced.
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.v = s.v
		deleted = u.remove(&cur.r, s.v)
	} else {
		if cur.l != nil {
			*curPtr = cur.l
		} else {
			*curPtr = cur.r
		}
		u.sz--
		return true
	}
	if deleted {
		u.rebalance(curPtr)
	}
	return deleted
}

// Remove [Tree.Remove]. Recursive.
// Removing a value that isn't in the tree is a no-op returning false.
// Time: O(D)
func (u *SearchTree[T]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *SearchTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *SearchTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *SearchTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *SearchTree[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *SearchTree[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Height of the tree, the number of edges on the longest path from the root to a
// leaf. An empty tree has height -1.
// Time: O(n)
func (u *SearchTree[T]) Height() int {
	var h func(*node[T]) int
	h = func(n *node[T]) int {
		if n == nil {
			return -1
		}
		return max(h(n.l), h(n.r)) + 1
	}
	return h(u.root)
}

// Iterate returns a new Cursor at the smallest value of the tree. Every call
// starts a fresh pass.
// The tree must not be modified while the cursor is in use.
func (u *SearchTree[T]) Iterate() *Cursor[T] {
	return newCursor(u.root, int(u.sz))
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *SearchTree[T]) InOrder() func() (T, bool) {
	return u.Iterate().Next
}

// Slice returns all values in ascending order.
// Time: O(n)
func (u *SearchTree[T]) Slice() []T {
	s := make([]T, 0, u.sz)
	for c := u.Iterate(); c.HasNext(); {
		v, _ := c.Next()
		s = append(s, v)
	}
	return s
}

// String formats the values in ascending order, e.g. [1 3 4 5 8].
func (u *SearchTree[T]) String() string {
	return fmt.Sprint(u.Slice())
}
