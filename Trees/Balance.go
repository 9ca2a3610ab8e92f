package Trees

import (
	"fmt"
	"math"
)

// Balance selects the rule a SearchTree uses to restore its shape after a
// structural change. The set of strategies is closed.
type Balance uint8

const (
	// Unbalanced never rotates. Height is O(n) in the worst case, for example when
	// elements arrive in sorted order.
	Unbalanced Balance = iota
	// AVL keeps the heights of the two subtrees of every node within 1 of each other.
	AVL
	// Treap assigns every node a random priority at creation and keeps the
	// priorities in max-heap order, giving expected O(log n) height regardless of
	// insertion order.
	Treap
)

func (b Balance) String() string {
	switch b {
	case Unbalanced:
		return "Unbalanced"
	case AVL:
		return "AVL"
	case Treap:
		return "Treap"
	}
	return fmt.Sprintf("Balance(%d)", uint8(b))
}

func (b Balance) valid() bool {
	return b <= Treap
}

// rebalance the subtree owned by p, whose children are already balanced.
func (u *SearchTree[T]) rebalance(p **node[T]) {
	switch u.bal {
	case AVL:
		balanceAVL(p)
	case Treap:
		balanceTreap(p)
	}
}

// newNode creates a leaf holding v with the payload the tree's strategy expects.
func (u *SearchTree[T]) newNode(v T) *node[T] {
	n := &node[T]{v: v}
	if u.bal == Treap {
		// [1, MaxInt32], never 0 which is reserved for absent children.
		n.aux = u.rg.Intn(math.MaxInt32) + 1
	}
	return n
}

func fixHeight[T any](n *node[T]) {
	n.aux = max(height(n.l), height(n.r)) + 1
}

// factor is height(right) - height(left). Only meaningful when the heights of
// both children are up to date.
func factor[T any](n *node[T]) int {
	return height(n.r) - height(n.l)
}

// balanceAVL recomputes the height of *p and performs the single or double
// rotation needed to bring its balance factor back into [-1, 1].
func balanceAVL[T any](p **node[T]) {
	n := *p
	fixHeight(n)
	if f := factor(n); f < -1 {
		if factor(n.l) > 0 {
			rotateLeft(&n.l)
			fixHeight(n.l.l)
			fixHeight(n.l)
		}
		rotateRight(p)
	} else if f > 1 {
		if factor(n.r) < 0 {
			rotateRight(&n.r)
			fixHeight(n.r.r)
			fixHeight(n.r)
		}
		rotateLeft(p)
	} else {
		return
	}
	// n has been demoted below the new root.
	fixHeight(n)
	fixHeight(*p)
}

// balanceTreap rotates the higher priority child of *p up for as long as it
// outranks the node, following the demoted node down.
func balanceTreap[T any](p **node[T]) {
	for n := *p; n != nil; n = *p {
		if lp, rp := priority(n.l), priority(n.r); lp > n.aux && lp >= rp {
			rotateRight(p)
			p = &(*p).r
		} else if rp > n.aux {
			rotateLeft(p)
			p = &(*p).l
		} else {
			return
		}
	}
}
