package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-containers/Queues"
)

// Corrupt [Tree.Corrupt]
// Checks the BST order of every node, the node count, and the invariant of the
// tree's strategy: stored heights and balance factors in [-1, 1] for AVL,
// parent priority >= child priority for Treap. Every violation found is traced.
// Recursive.
// Time: O(n)
func (u *SearchTree[T]) Corrupt() bool {
	var n uint
	bad := false
	var check func(c *node[T], lo, hi *T)
	check = func(c *node[T], lo, hi *T) {
		if c == nil {
			return
		}
		n++
		if (lo != nil && !(*lo < c.v)) || (hi != nil && !(c.v < *hi)) {
			tracer().Errorf("%s tree: %v is out of order", u.bal, c.v)
			bad = true
		}
		check(c.l, lo, &c.v)
		check(c.r, &c.v, hi)
		switch u.bal {
		case AVL:
			if h := max(height(c.l), height(c.r)) + 1; c.aux != h {
				tracer().Errorf("AVL tree: %v has height %d, want %d", c.v, c.aux, h)
				bad = true
			}
			if f := factor(c); f < -1 || f > 1 {
				tracer().Errorf("AVL tree: %v has balance factor %d", c.v, f)
				bad = true
			}
		case Treap:
			if c.aux < priority(c.l) || c.aux < priority(c.r) {
				tracer().Errorf("Treap: %v has priority %d below a child", c.v, c.aux)
				bad = true
			}
		}
	}
	check(u.root, nil, nil)
	if n != u.sz {
		tracer().Errorf("%s tree: counted %d nodes, size is %d", u.bal, n, u.sz)
		bad = true
	}
	return bad
}

type level[T any] struct {
	n *node[T]
	d int
}

// Dump writes the tree breadth first, one line per depth. Each node is written as
// value(aux), where aux is the height for AVL, the priority for Treap and 0 for
// Unbalanced.
// Time: O(n)
func (u *SearchTree[T]) Dump(w io.Writer) error {
	if u.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	q := Queues.MakeArrayQueue[level[T]](16)
	q.Push(level[T]{u.root, 0})
	for d := 0; !q.Empty(); {
		e, _ := q.Pop()
		sep := " "
		if e.d != d {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			d = e.d
		}
		if q.Empty() || q.Peek().d != d {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%v(%d)%s", e.n.v, e.n.aux, sep); err != nil {
			return err
		}
		if e.n.l != nil {
			q.Push(level[T]{e.n.l, d + 1})
		}
		if e.n.r != nil {
			q.Push(level[T]{e.n.r, d + 1})
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
