package main

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "build a tree and print it",
	ArgsUsage: `[elements...]`,
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print the indented pre-order rendering",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "print the box drawing rendering",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "also print a traversal: in, pre, or post",
		},
	}, inputFlags...),
	Action: runShow,
}

func runShow(cctx *cli.Context) error {
	toks, err := readTokens(cctx)
	if err != nil {
		return err
	}
	if cctx.Bool("strings") {
		return show(cctx, toks, parseString)
	}
	return show(cctx, toks, parseInt)
}

func traversal[T any](tree *Trees.BST[T], order string) (*Trees.Iterator[T], error) {
	switch order {
	case "in":
		return tree.InOrder(), nil
	case "pre":
		return tree.PreOrder(), nil
	case "post":
		return tree.PostOrder(), nil
	}
	return nil, errors.Errorf("unknown traversal order %q", order)
}

func show[T cmp.Ordered](cctx *cli.Context, toks []string, parse parser[T]) error {
	tree, err := build(toks, parse)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	fmt.Fprintln(w, tree)
	fmt.Fprintf(w, "size: %d, height: %d\n", tree.Size(), tree.Height())
	if cctx.IsSet("order") {
		it, err := traversal(tree, cctx.String("order"))
		if err != nil {
			return err
		}
		var s []string
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return err
			}
			s = append(s, fmt.Sprint(v))
		}
		fmt.Fprintf(w, "%s-order: %s\n", cctx.String("order"), strings.Join(s, " "))
	}
	if cctx.Bool("tree") {
		fmt.Fprintln(w, tree.TreeString())
	}
	if cctx.Bool("pretty") {
		fmt.Fprint(w, tree.Pretty())
	}
	return nil
}
