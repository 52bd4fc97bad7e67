package Trees

import "github.com/pkg/errors"

// Get [Tree.Get]
// Walks the in-order traversal and stops at index i.
// Time: O(i+D); Space: O(D)
func (u *BST[T]) Get(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), errors.Wrapf(ErrIndexOutOfRange, "get %d, size %d", i, u.sz)
	}
	k := 0
	for v := range u.All() {
		if k == i {
			return v, nil
		}
		k++
	}
	//unreachable as long as the tree isn't corrupt.
	return *new(T), errors.Wrapf(ErrIndexOutOfRange, "get %d, size %d", i, u.sz)
}

// collect appends all values in [from, to] of the subtree rooting at n to out
// in ascending order. Subtrees entirely outside the bounds are skipped. Recursive.
func (u *BST[T]) collect(n *node[T], from, to T, out []T) []T {
	if n == nil {
		return out
	}
	lo, hi := u.cmp(from, n.v), u.cmp(n.v, to)
	if lo < 0 {
		out = u.collect(n.l, from, to, out)
	}
	if lo <= 0 && hi <= 0 {
		out = append(out, n.v)
	}
	if hi < 0 {
		out = u.collect(n.r, from, to, out)
	}
	return out
}

// Range [Tree.Range]. Recursive.
// Both bounds are inclusive. from must not be greater than to.
// Time: O(D+k) where k is the length of the result.
func (u *BST[T]) Range(from, to T) ([]T, error) {
	if err := u.check(from); err != nil {
		return nil, errors.Wrapf(err, "range from %v", from)
	}
	if err := u.check(to); err != nil {
		return nil, errors.Wrapf(err, "range to %v", to)
	}
	if u.cmp(from, to) > 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "range: from %v > to %v", from, to)
	}
	return u.collect(u.root, from, to, make([]T, 0)), nil
}

func valueOf[T any](n *node[T]) *T {
	if n == nil {
		return nil
	}
	v := n.v
	return &v
}

// predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
// Every node the descent moves right from is greater than all the candidates
// seen before it, so the last one is the closest.
func (u *BST[T]) predecessor(v T, strict bool) (p *node[T]) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 || (strict && c == 0) {
			cur = cur.l
		} else if c == 0 {
			return cur
		} else {
			p = cur
			cur = cur.r
		}
	}
	return
}

// successor of v. If strict is true, result>v if found; otherwise, result>=v.
func (u *BST[T]) successor(v T, strict bool) (p *node[T]) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c > 0 || (strict && c == 0) {
			cur = cur.r
		} else if c == 0 {
			return cur
		} else {
			p = cur
			cur = cur.l
		}
	}
	return
}

// Floor [Tree.Floor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Floor(v T) (*T, error) {
	if err := u.check(v); err != nil {
		return nil, errors.Wrapf(err, "floor %v", v)
	}
	return valueOf(u.predecessor(v, false)), nil
}

// Lower [Tree.Lower]
// Time: O(D); Space: O(1)
func (u *BST[T]) Lower(v T) (*T, error) {
	if err := u.check(v); err != nil {
		return nil, errors.Wrapf(err, "lower %v", v)
	}
	return valueOf(u.predecessor(v, true)), nil
}

// Ceiling [Tree.Ceiling]
// Time: O(D); Space: O(1)
func (u *BST[T]) Ceiling(v T) (*T, error) {
	if err := u.check(v); err != nil {
		return nil, errors.Wrapf(err, "ceiling %v", v)
	}
	return valueOf(u.successor(v, false)), nil
}

// Higher [Tree.Higher]
// Time: O(D); Space: O(1)
func (u *BST[T]) Higher(v T) (*T, error) {
	if err := u.check(v); err != nil {
		return nil, errors.Wrapf(err, "higher %v", v)
	}
	return valueOf(u.successor(v, true)), nil
}
