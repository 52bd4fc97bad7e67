package Trees

import (
	"iter"

	"github.com/pkg/errors"
)

// Iterator over a snapshot of a traversal, taken when the iterator was created.
// Modifying the tree afterward doesn't change what the iterator gives.
// To traverse again, create a new one.
type Iterator[T any] struct {
	vs []T
	i  int
}

// HasNext returns whether Next will give another element.
func (it *Iterator[T]) HasNext() bool {
	return it.i < len(it.vs)
}

// Next element of the traversal. Returns ErrEndOfSequence once exhausted.
func (it *Iterator[T]) Next() (T, error) {
	if it.i >= len(it.vs) {
		return *new(T), errors.WithStack(ErrEndOfSequence)
	}
	v := it.vs[it.i]
	it.i++
	return v, nil
}

// All [Tree.All]
// Lazy in-order traversal using an explicit stack; stopping early is cheap.
// Time: amortized O(1) per element. Space: O(D)
func (u *BST[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []*node[T]
		for cur := u.root; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
		}
	}
}

// Slice of all elements in ascending order. len is Size().
func (u *BST[T]) Slice() []T {
	vs := make([]T, 0, u.sz)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func preOrder[T any](n *node[T], vs []T) []T {
	if n == nil {
		return vs
	}
	vs = append(vs, n.v)
	vs = preOrder(n.l, vs)
	return preOrder(n.r, vs)
}

func postOrder[T any](n *node[T], vs []T) []T {
	if n == nil {
		return vs
	}
	vs = postOrder(n.l, vs)
	vs = postOrder(n.r, vs)
	return append(vs, n.v)
}

// InOrder iterator: left, self, right. Elements come in ascending order.
// Time: O(n) to create.
func (u *BST[T]) InOrder() *Iterator[T] {
	return &Iterator[T]{vs: u.Slice()}
}

// PreOrder iterator: self, left, right. The root comes first. Recursive.
// Time: O(n) to create.
func (u *BST[T]) PreOrder() *Iterator[T] {
	return &Iterator[T]{vs: preOrder(u.root, make([]T, 0, u.sz))}
}

// PostOrder iterator: left, right, self. The root comes last. Recursive.
// Time: O(n) to create.
func (u *BST[T]) PostOrder() *Iterator[T] {
	return &Iterator[T]{vs: postOrder(u.root, make([]T, 0, u.sz))}
}
