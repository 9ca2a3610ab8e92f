package Sets

import (
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// OrderedSet is a Set kept in ascending order by a Trees.SearchTree. Range and
// Iterate visit the elements from smallest to largest, and Take removes the
// smallest.
// An OrderedSet must not be modified while it is being ranged over or iterated.
type OrderedSet[E constraints.Ordered] struct {
	t *Trees.SearchTree[E]
}

// MakeOrderedSet returns an empty set balanced by b.
func MakeOrderedSet[E constraints.Ordered](b Trees.Balance, opts ...Trees.Option) *OrderedSet[E] {
	return &OrderedSet[E]{Trees.New[E](b, opts...)}
}

// OrderedSetOf returns an AVL balanced set holding vs.
func OrderedSetOf[E constraints.Ordered](vs ...E) *OrderedSet[E] {
	return &OrderedSet[E]{Trees.From(Trees.AVL, vs)}
}

// Put e, returning false if it was already there.
func (u *OrderedSet[E]) Put(e E) bool {
	return u.t.Insert(e)
}

func (u *OrderedSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *OrderedSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *OrderedSet[E]) Size() uint {
	return u.t.Size()
}

func (u *OrderedSet[E]) Empty() bool {
	return u.t.Empty()
}

// Take removes and returns the smallest element. Returns the zero value if the
// set is empty.
func (u *OrderedSet[E]) Take() E {
	e, ok := u.t.Minimum()
	if ok {
		u.t.Remove(e)
	}
	return e
}

// Range calls f on every element in ascending order until f returns false.
func (u *OrderedSet[E]) Range(f func(E) bool) {
	for c := u.t.Iterate(); c.HasNext(); {
		if e, _ := c.Next(); !f(e) {
			return
		}
	}
}

// Iterate returns a cursor over the elements in ascending order.
func (u *OrderedSet[E]) Iterate() *Trees.Cursor[E] {
	return u.t.Iterate()
}

// PutAll puts every element of s and returns how many were new.
func (u *OrderedSet[E]) PutAll(s Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.t.Insert(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll removes every element of s and returns how many were there.
func (u *OrderedSet[E]) RemoveAll(s Set[E]) (n uint) {
	if s == Set[E](u) {
		n = u.t.Size()
		u.t.Clear()
		return
	}
	s.Range(func(e E) bool {
		if u.t.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether u and s hold the same elements.
func (u *OrderedSet[E]) Eq(s Set[E]) bool {
	if u.t.Size() != s.Size() {
		return false
	}
	eq := true
	u.Range(func(e E) bool {
		eq = s.Has(e)
		return eq
	})
	return eq
}

// Union puts every element of s into u.
func (u *OrderedSet[E]) Union(s Set[E]) {
	u.PutAll(s)
}

// Intersect removes from u every element that isn't in s.
func (u *OrderedSet[E]) Intersect(s Set[E]) {
	var drop []E
	u.Range(func(e E) bool {
		if !s.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.t.Remove(e)
	}
}

// Filter returns a new set, balanced like u, of the elements f keeps.
func (u *OrderedSet[E]) Filter(f func(E) bool) ExtendedSet[E] {
	r := MakeOrderedSet[E](u.t.Strategy())
	u.Range(func(e E) bool {
		if f(e) {
			r.t.Insert(e)
		}
		return true
	})
	return r
}

func (u *OrderedSet[E]) String() string {
	return u.t.String()
}

var _ ExtendedSet[int] = (*OrderedSet[int])(nil)
