package Trees

// A node in the SearchTree.
// l and r are owned exclusively by this node; nil means the child is absent.
// aux is keyed by the Balance of the owning tree and is only read through
// height (AVL) or priority (Treap). Unbalanced trees leave it at 0.
type node[T any] struct {
	v    T
	l, r *node[T]
	aux  int
}

// height of the subtree rooting at n as stored by the AVL strategy. An absent
// subtree has height -1.
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.aux
}

// priority of n as assigned by the Treap strategy. An absent node has the
// lowest possible priority so that it never gets rotated up.
func priority[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.aux
}

// rotateLeft performs a left rotation on the subtree owned by the slot p. The right
// child of *p becomes the new subtree root and is written back into p, so the
// caller's link (or the tree root) is updated in place. Returns the new subtree root.
// Time: O(1); Space: O(1)
func rotateLeft[T any](p **node[T]) *node[T] {
	n := *p
	rc := n.r
	n.r = rc.l
	rc.l = n
	*p = rc
	return rc
}

// rotateRight is the mirror of rotateLeft: the left child of *p becomes the new
// subtree root.
// Time: O(1); Space: O(1)
func rotateRight[T any](p **node[T]) *node[T] {
	n := *p
	lc := n.l
	n.l = lc.r
	lc.r = n
	*p = lc
	return lc
}
