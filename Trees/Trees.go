/*
Package Trees implements an ordered set on top of an unbalanced binary search tree.

# Shape
No rotations are ever performed, so the height of the tree depends entirely on
the insertion order: D=O(log n) for random input and D=n for sorted input.
Every node still caches its height, which is kept exact after each mutation and
can be read with BST.Height, but it never triggers rebalancing.

# Errors
All receivers report problems through the sentinel errors in this package,
wrapped with the call's context. Use errors.Is to check them.

# Concurrency
Nothing here is synchronized. Guard a BST with an external lock if it's shared.
*/
package Trees

import "iter"

// Tree is an ordered set of distinct elements.
// Receivers returning a *T use nil to indicate that no such element exists.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v wasn't present before.
	Insert(v T) (bool, error)
	//Remove v from the Tree. Returning true if v was present.
	Remove(v T) (bool, error)
	//Has element v.
	Has(v T) (bool, error)
	//First is the smallest element.
	First() (T, error)
	//Last is the largest element.
	Last() (T, error)
	//Get the element at index i of the in-order traversal.
	//0<=i<Size()
	Get(i int) (T, error)
	//Range returns all elements e with from<=e<=to, ascending.
	Range(from, to T) ([]T, error)
	//Floor is the greatest element less than or equal to v.
	Floor(v T) (*T, error)
	//Ceiling is the smallest element greater than or equal to v.
	Ceiling(v T) (*T, error)
	//Lower is the greatest element strictly less than v.
	Lower(v T) (*T, error)
	//Higher is the smallest element strictly greater than v.
	Higher(v T) (*T, error)
	//Size of the tree.
	Size() int
	//All elements in ascending order. The tree must not be modified while ranging.
	All() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or when the cached heights or size
	//disagree with the actual structure.
	Corrupt() bool
}
