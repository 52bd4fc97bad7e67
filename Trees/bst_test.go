package Trees

import (
	"cmp"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *BST[int] {
	t.Helper()
	tree := New[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		ok, err := tree.Insert(v)
		require.NoError(t, err)
		require.True(t, ok)
	}
	return tree
}

func drain[T any](t *testing.T, it *Iterator[T]) []T {
	t.Helper()
	var vs []T
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		vs = append(vs, v)
	}
	_, err := it.Next()
	require.ErrorIs(t, err, ErrEndOfSequence)
	return vs
}

func TestBST_Sample(t *testing.T) {
	tree := sample(t)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Slice())
	assert.Equal(t, 7, tree.Size())
	assert.Equal(t, 3, tree.Height())

	f, err := tree.Floor(6)
	require.NoError(t, err)
	assert.Equal(t, 5, *f)
	c, err := tree.Ceiling(6)
	require.NoError(t, err)
	assert.Equal(t, 7, *c)

	v, err := tree.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = tree.Get(6)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	r, err := tree.Range(3, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 7, 8}, r)

	first, err := tree.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	last, err := tree.Last()
	require.NoError(t, err)
	assert.Equal(t, 9, last)
	assert.Equal(t, "[1, 3, 4, 5, 7, 8, 9]", tree.String())
}

func TestBST_RemoveTwoChildren(t *testing.T) {
	tree := sample(t)
	ok, err := tree.Remove(5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.Slice())
	assert.Equal(t, 6, tree.Size())
	has, err := tree.Has(5)
	require.NoError(t, err)
	assert.False(t, has)
	//the predecessor 4 took the place of the root.
	assert.Equal(t, []int{4, 3, 1, 8, 7, 9}, drain(t, tree.PreOrder()))
	assert.Equal(t, 3, tree.Height())
	assert.False(t, tree.Corrupt())

	ok, err = tree.Remove(5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 6, tree.Size())
}

func TestBST_RemoveOneChild(t *testing.T) {
	tree := From(5, 3, 1)
	ok, _ := tree.Remove(3)
	assert.True(t, ok)
	assert.Equal(t, []int{5, 1}, drain(t, tree.PreOrder()))
	assert.Equal(t, 2, tree.Height())
	ok, _ = tree.Remove(5)
	assert.True(t, ok)
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, "[1]", tree.String())
}

func TestBST_Empty(t *testing.T) {
	tree := New[int]()
	_, err := tree.First()
	assert.ErrorIs(t, err, ErrEmptyCollection)
	_, err = tree.Last()
	assert.ErrorIs(t, err, ErrEmptyCollection)
	assert.Equal(t, "[]", tree.String())
	assert.Equal(t, "null", tree.TreeString())
	assert.Equal(t, 0, tree.Size())
	assert.True(t, tree.Empty())
	assert.Empty(t, tree.Slice())
	assert.False(t, tree.InOrder().HasNext())
	_, err = tree.PostOrder().Next()
	assert.ErrorIs(t, err, ErrEndOfSequence)
	f, err := tree.Floor(1)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestBST_Clear(t *testing.T) {
	tree := sample(t)
	tree.Clear()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, "[]", tree.String())
	ok, err := tree.Insert(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, tree.Size())
}

func TestBST_Get(t *testing.T) {
	tree := sample(t)
	for _, i := range []int{-1, 7, 100} {
		_, err := tree.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}
	_, err := New[string]().Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBST_Range(t *testing.T) {
	tree := sample(t)
	_, err := tree.Range(8, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	r, err := tree.Range(5, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, r)
	r, err = tree.Range(10, 20)
	require.NoError(t, err)
	assert.Empty(t, r)
	r, err = tree.Range(-10, 20)
	require.NoError(t, err)
	assert.Equal(t, tree.Slice(), r)
	r, err = tree.Range(2, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, r)
}

func TestBST_Neighbors(t *testing.T) {
	tree := sample(t)
	cases := []struct {
		probe                         int
		floor, ceiling, lower, higher *int
	}{
		{0, nil, ptr(1), nil, ptr(1)},
		{1, ptr(1), ptr(1), nil, ptr(3)},
		{2, ptr(1), ptr(3), ptr(1), ptr(3)},
		{5, ptr(5), ptr(5), ptr(4), ptr(7)},
		{6, ptr(5), ptr(7), ptr(5), ptr(7)},
		{9, ptr(9), ptr(9), ptr(8), nil},
		{10, ptr(9), nil, ptr(9), nil},
	}
	for _, c := range cases {
		f, _ := tree.Floor(c.probe)
		assert.Equal(t, c.floor, f, "floor %d", c.probe)
		ce, _ := tree.Ceiling(c.probe)
		assert.Equal(t, c.ceiling, ce, "ceiling %d", c.probe)
		l, _ := tree.Lower(c.probe)
		assert.Equal(t, c.lower, l, "lower %d", c.probe)
		h, _ := tree.Higher(c.probe)
		assert.Equal(t, c.higher, h, "higher %d", c.probe)
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestBST_InsertAll(t *testing.T) {
	tree := New[int]()
	_, err := tree.InsertAll(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	ok, err := tree.InsertAll([]int{3, 1, 2})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = tree.InsertAll([]int{1, 2})
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = tree.InsertAll([]int{})
	require.NoError(t, err)
	assert.False(t, ok)

	has, err := tree.HasAll([]int{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, has)
	has, err = tree.HasAll([]int{1, 4})
	require.NoError(t, err)
	assert.False(t, has)
	_, err = tree.HasAll(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func comparePtr(a, b *int) int {
	return cmp.Compare(*a, *b)
}

func TestBST_NilValues(t *testing.T) {
	tree := NewFunc(comparePtr)
	_, err := tree.Insert(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tree.Remove(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tree.Has(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	for _, q := range []func(*int) (**int, error){tree.Floor, tree.Ceiling, tree.Lower, tree.Higher} {
		_, err = q(nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	_, err = tree.Range(nil, ptr(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tree.Range(ptr(1), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	//InsertAll stops at the nil element, the ones before it stay.
	ok, err := tree.InsertAll([]*int{ptr(1), nil, ptr(3)})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.True(t, ok)
	assert.Equal(t, 1, tree.Size())

	//FromFunc skips it.
	loose := FromFunc(comparePtr, ptr(1), nil, ptr(3))
	assert.Equal(t, 2, loose.Size())
	has, err := loose.HasAll([]*int{ptr(1), ptr(3)})
	require.NoError(t, err)
	assert.True(t, has)
	_, err = tree.HasAll([]*int{ptr(1), nil})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBST_TypeMismatch(t *testing.T) {
	tree := NewFunc(func(a, b any) int {
		return cmp.Compare(a.(int), b.(int))
	})
	_, err := tree.Insert(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tree.Insert((*int)(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	ok, err := tree.Insert(2)
	require.NoError(t, err)
	assert.True(t, ok)
	tree.Insert(1)

	_, err = tree.Insert("x")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = tree.Remove("x")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = tree.Has(2.0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = tree.Ceiling("x")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = tree.Range(1, "x")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 2, tree.Size())

	has, err := tree.Has(1)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, "[1, 2]", tree.String())

	tree.Clear()
	ok, err = tree.Insert("x")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBST_Traversals(t *testing.T) {
	tree := sample(t)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, drain(t, tree.InOrder()))
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, drain(t, tree.PreOrder()))
	assert.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, drain(t, tree.PostOrder()))

	var firstThree []int
	for v := range tree.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, v)
	}
	assert.Equal(t, []int{1, 3, 4}, firstThree)
}

func TestBST_IteratorSnapshot(t *testing.T) {
	tree := sample(t)
	it := tree.InOrder()
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	tree.Remove(3)
	tree.Insert(6)
	assert.Equal(t, []int{3, 4, 5, 7, 8, 9}, drain(t, it))
}

func TestBST_Strings(t *testing.T) {
	tree := New[string]()
	tree.InsertAll([]string{"m", "c", "x", ""})
	assert.Equal(t, "[, c, m, x]", tree.String())
}

func TestBST_TreeString(t *testing.T) {
	tree := From(2, 1)
	assert.Equal(t, "\n2\n|--1\n   |--null\n   |--null\n|--null", tree.TreeString())

	want := strings.Join([]string{
		"",
		"5",
		"|--3",
		"   |--1",
		"      |--null",
		"      |--null",
		"   |--4",
		"      |--null",
		"      |--null",
		"|--8",
		"   |--7",
		"      |--null",
		"      |--null",
		"   |--9",
		"      |--null",
		"      |--null",
	}, "\n")
	assert.Equal(t, want, sample(t).TreeString())
	assert.Equal(t, "\n7", From(7).TreeString()[:2])
}

func TestBST_Pretty(t *testing.T) {
	p := From(2, 1, 3).Pretty()
	assert.True(t, strings.HasPrefix(p, "2\n"))
	assert.Contains(t, p, "── 1")
	assert.Contains(t, p, "── 3")
	assert.Less(t, strings.Index(p, "── 1"), strings.Index(p, "── 3"))

	p = From(2, 3).Pretty()
	assert.Contains(t, p, "── nil")
	assert.Contains(t, New[int]().Pretty(), "nil")
}
