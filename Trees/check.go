package Trees

// verify the subtree rooting at n. Values must lie strictly between lo and hi
// when they aren't nil, and every cached height must match. Returns the number
// of nodes and whether the subtree is sound. Recursive.
func (u *BST[T]) verify(n *node[T], lo, hi *T) (int, bool) {
	if n == nil {
		return 0, true
	}
	if (lo != nil && u.cmp(*lo, n.v) >= 0) || (hi != nil && u.cmp(n.v, *hi) >= 0) {
		return 0, false
	}
	lc, ok := u.verify(n.l, lo, &n.v)
	if !ok {
		return 0, false
	}
	rc, ok := u.verify(n.r, &n.v, hi)
	if !ok {
		return 0, false
	}
	if n.h != max(height(n.l), height(n.r))+1 {
		return 0, false
	}
	return lc + rc + 1, true
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	c, ok := u.verify(u.root, nil, nil)
	return !ok || c != u.sz
}
