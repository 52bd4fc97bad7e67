package Trees

import (
	"cmp"
	"reflect"

	"github.com/pkg/errors"
)

// BST is a binary search tree with no repeated values. It doesn't balance
// itself; each node only keeps track of its height, which is exact after
// every call but isn't used for anything else.
// T is the type of values it will hold. Values are ordered by the comparison
// function given at construction, which must be a total order: negative when
// a<b, zero when a==b, positive when a>b.
// When T is an interface type, the tree remembers the dynamic type of the first
// element inserted, and values of any other dynamic type are rejected with
// ErrTypeMismatch, so the comparison function only ever sees one dynamic type.
// The zero value isn't usable; create it with New or NewFunc.
type BST[T any] struct {
	root    *node[T]
	sz      int
	cmp     func(T, T) int
	nilable bool         //T can hold nil, so values need the nil check.
	dyn     bool         //T is an interface type.
	typ     reflect.Type //dynamic type of the elements when dyn. nil until the first insertion.
}

var _ Tree[int] = (*BST[int])(nil)

// New returns an empty BST ordered by cmp.Compare.
func New[T cmp.Ordered]() *BST[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty BST ordered by compare. compare mustn't be nil.
func NewFunc[T any](compare func(a, b T) int) *BST[T] {
	u := &BST[T]{cmp: compare}
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Interface:
		u.nilable, u.dyn = true, true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		u.nilable = true
	}
	return u
}

// From builds a BST ordered by cmp.Compare by inserting vs one by one.
// This is looser than InsertAll: invalid elements are skipped instead of
// failing the construction.
func From[T cmp.Ordered](vs ...T) *BST[T] {
	return FromFunc(cmp.Compare[T], vs...)
}

// FromFunc is the NewFunc equivalence of From. Invalid elements, such as nil,
// or values of a different dynamic type than the first valid one, are skipped.
func FromFunc[T any](compare func(a, b T) int, vs ...T) *BST[T] {
	u := NewFunc(compare)
	for _, v := range vs {
		_, _ = u.Insert(v)
	}
	return u
}

func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// check whether v can be compared against the elements of u.
func (u *BST[T]) check(v T) error {
	if u.nilable && isNil(v) {
		return ErrInvalidArgument
	}
	if u.typ != nil && reflect.TypeOf(v) != u.typ {
		return ErrTypeMismatch
	}
	return nil
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// Empty returns whether the tree has no elements.
func (u *BST[T]) Empty() bool {
	return u.root == nil
}

// Height of the tree, which is the height of the root. 0 for an empty tree.
func (u *BST[T]) Height() int {
	return height(u.root)
}

// Clear the tree.
// Time: O(1)
func (u *BST[T]) Clear() {
	u.root, u.sz, u.typ = nil, 0, nil
}

// insert the value v to the subtree rooting at *curPtr recursively. A
// successful insertion returns true. A failed insertion happens when the
// value is already in u, in which case it returns false and nothing changes.
func (u *BST[T]) insert(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v, h: 1}
		return true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		inserted = u.insert(&cur.l, v)
	} else if c == 0 {
		return false
	} else {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		fixHeight(cur)
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BST[T]) Insert(v T) (bool, error) {
	if err := u.check(v); err != nil {
		return false, errors.Wrapf(err, "insert %v", v)
	}
	if !u.insert(&u.root, v) {
		return false, nil
	}
	u.sz++
	if u.dyn && u.typ == nil {
		u.typ = reflect.TypeOf(v)
	}
	return true, nil
}

// InsertAll elements of vs in order. Returns true if the size of the tree
// increased. vs mustn't be nil and mustn't contain invalid elements; on the
// first invalid element the error is returned and the elements before it
// stay inserted. Use From or FromFunc to skip invalid elements instead.
func (u *BST[T]) InsertAll(vs []T) (bool, error) {
	if vs == nil {
		return false, errors.Wrap(ErrInvalidArgument, "insert all: nil slice")
	}
	sz := u.sz
	for i, v := range vs {
		if _, err := u.Insert(v); err != nil {
			return u.sz > sz, errors.Wrapf(err, "insert all: element %d", i)
		}
	}
	return u.sz > sz, nil
}

// remove the value v from the subtree rooting at *curPtr recursively. Returns
// false if v isn't in the subtree. A node with two children takes over the
// value of its in-order predecessor, which is then removed from the left subtree.
// Exactly one node is unlinked per successful call.
// Time: O(D)
func (u *BST[T]) remove(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if c := u.cmp(v, cur.v); c < 0 {
		deleted = u.remove(&cur.l, v)
	} else if c > 0 {
		deleted = u.remove(&cur.r, v)
	} else if cur.l == nil {
		*curPtr = cur.r
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		return true
	} else {
		cur.v = rightmost(cur.l).v
		deleted = u.remove(&cur.l, cur.v)
	}
	if deleted {
		fixHeight(cur)
	}
	return deleted
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BST[T]) Remove(v T) (bool, error) {
	if err := u.check(v); err != nil {
		return false, errors.Wrapf(err, "remove %v", v)
	}
	if !u.remove(&u.root, v) {
		return false, nil
	}
	u.sz--
	return true, nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) (bool, error) {
	if err := u.check(v); err != nil {
		return false, errors.Wrapf(err, "has %v", v)
	}
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true, nil
		} else {
			cur = cur.r
		}
	}
	return false, nil
}

// HasAll returns whether every element of vs is in the tree. vs mustn't be nil.
func (u *BST[T]) HasAll(vs []T) (bool, error) {
	if vs == nil {
		return false, errors.Wrap(ErrInvalidArgument, "has all: nil slice")
	}
	for _, v := range vs {
		if has, err := u.Has(v); err != nil || !has {
			return false, err
		}
	}
	return true, nil
}

// First [Tree.First]
// Time: O(D); Space: O(1)
func (u *BST[T]) First() (T, error) {
	if u.root == nil {
		return *new(T), errors.Wrap(ErrEmptyCollection, "first")
	}
	return leftmost(u.root).v, nil
}

// Last [Tree.Last]
// Time: O(D); Space: O(1)
func (u *BST[T]) Last() (T, error) {
	if u.root == nil {
		return *new(T), errors.Wrap(ErrEmptyCollection, "last")
	}
	return rightmost(u.root).v, nil
}

// Equal returns whether o holds the same elements as u, regardless of the
// shapes of the two trees.
// Time: O(n*D)
func (u *BST[T]) Equal(o *BST[T]) bool {
	if o == nil || u.sz != o.sz {
		return false
	}
	if u == o {
		return true
	}
	for v := range u.All() {
		if has, err := o.Has(v); err != nil || !has {
			return false
		}
	}
	return true
}

// Clone returns an independent tree with the same elements and comparison
// function, rebuilt by inserting the pre-order traversal of u. Since the
// pre-order is replayed, the clone also has the same shape.
// Time: O(n*D)
func (u *BST[T]) Clone() *BST[T] {
	c := &BST[T]{cmp: u.cmp, nilable: u.nilable, dyn: u.dyn}
	for it := u.PreOrder(); it.HasNext(); {
		v, _ := it.Next()
		_, _ = c.Insert(v)
	}
	return c
}
