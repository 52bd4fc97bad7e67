package Trees

// A node in the BST
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int //1 for a leaf.
}

// height of n, 0 if n is nil.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

// fixHeight recomputes the height of n from its children.
// Time: O(1); Space: O(1)
func fixHeight[T any](n *node[T]) {
	n.h = max(height(n.l), height(n.r)) + 1
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}
