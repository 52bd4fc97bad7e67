package Trees

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String gives the elements in ascending order as "[e1, e2, ..., en]", or "[]" when empty.
func (u *BST[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sep := false
	for v := range u.All() {
		if sep {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
		sep = true
	}
	sb.WriteByte(']')
	return sb.String()
}

func preOrderPrint[T any](sb *strings.Builder, n *node[T], d int) {
	sb.WriteByte('\n')
	if d > 0 {
		sb.WriteString(strings.Repeat("   ", d-1))
		sb.WriteString("|--")
	}
	if n == nil {
		sb.WriteString("null")
		return
	}
	fmt.Fprint(sb, n.v)
	preOrderPrint(sb, n.l, d+1)
	preOrderPrint(sb, n.r, d+1)
}

// TreeString renders the tree in pre-order, one node per line, for debugging.
// Each line, the root's included, starts with "\n". A node at depth d>0 is
// prefixed by d-1 "   " and then "|--". Missing children are printed as
// "null". An empty tree is just "null". Recursive.
func (u *BST[T]) TreeString() string {
	if u.root == nil {
		return "null"
	}
	var sb strings.Builder
	preOrderPrint(&sb, u.root, 0)
	return sb.String()
}

func addBranches[T any](t treeprint.Tree, n *node[T]) {
	for _, c := range [2]*node[T]{n.l, n.r} {
		if c == nil {
			t.AddNode("nil")
		} else if c.l == nil && c.r == nil {
			t.AddNode(fmt.Sprint(c.v))
		} else {
			addBranches(t.AddBranch(fmt.Sprint(c.v)), c)
		}
	}
}

// Pretty renders the tree with box drawing characters, the left child above
// the right one. Leaves have no children lines; a node with only one child
// shows the other as "nil". Recursive.
func (u *BST[T]) Pretty() string {
	if u.root == nil {
		return treeprint.NewWithRoot("nil").String()
	}
	t := treeprint.NewWithRoot(fmt.Sprint(u.root.v))
	if u.root.l != nil || u.root.r != nil {
		addBranches(t, u.root)
	}
	return t.String()
}
