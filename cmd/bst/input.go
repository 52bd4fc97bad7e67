package main

import (
	"bufio"
	"cmp"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "file to read elements from, separated by whitespace or commas; \"-\" for stdin",
		EnvVars: []string{"BST_INPUT"},
	},
	&cli.BoolFlag{
		Name:    "strings",
		Usage:   "store elements as strings instead of integers",
		EnvVars: []string{"BST_STRINGS"},
	},
}

type parser[T any] func(string) (T, error)

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// splitTokens reads all whitespace or comma separated tokens from r.
func splitTokens(r io.Reader) ([]string, error) {
	var toks []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		for _, tok := range strings.Split(sc.Text(), ",") {
			if tok != "" {
				toks = append(toks, tok)
			}
		}
	}
	return toks, sc.Err()
}

// readTokens from the positional arguments followed by the contents of --input.
func readTokens(cctx *cli.Context) ([]string, error) {
	toks, err := splitTokens(strings.NewReader(strings.Join(cctx.Args().Slice(), " ")))
	if err != nil {
		return nil, err
	}
	path := cctx.String("input")
	if path == "" {
		return toks, nil
	}
	var r io.Reader
	if path == "-" {
		r = cctx.App.Reader
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	more, err := splitTokens(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return append(toks, more...), nil
}

// build a tree from toks, inserted in order.
func build[T cmp.Ordered](toks []string, parse parser[T]) (*Trees.BST[T], error) {
	vs := make([]T, 0, len(toks))
	for _, tok := range toks {
		v, err := parse(tok)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	tree := Trees.New[T]()
	if _, err := tree.InsertAll(vs); err != nil {
		return nil, err
	}
	slog.Debug("built tree", "elements", len(vs), "size", tree.Size(), "height", tree.Height())
	return tree, nil
}
