package main

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var cmdQuery = &cli.Command{
	Name:      "query",
	Usage:     "build a tree and run queries against it",
	ArgsUsage: `[elements...]`,
	Flags: append([]cli.Flag{
		&cli.StringSliceFlag{
			Name:  "remove",
			Usage: "elements to remove before querying",
		},
		&cli.StringFlag{
			Name:  "has",
			Usage: "check whether an element is present",
		},
		&cli.StringFlag{
			Name:  "floor",
			Usage: "greatest element less than or equal to the value",
		},
		&cli.StringFlag{
			Name:  "ceiling",
			Usage: "smallest element greater than or equal to the value",
		},
		&cli.StringFlag{
			Name:  "lower",
			Usage: "greatest element strictly less than the value",
		},
		&cli.StringFlag{
			Name:  "higher",
			Usage: "smallest element strictly greater than the value",
		},
		&cli.IntFlag{
			Name:  "get",
			Usage: "element at this index in ascending order",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "inclusive lower bound of a range query, requires --to",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "inclusive upper bound of a range query, requires --from",
		},
	}, inputFlags...),
	Action: runQuery,
}

func runQuery(cctx *cli.Context) error {
	toks, err := readTokens(cctx)
	if err != nil {
		return err
	}
	if cctx.Bool("strings") {
		return query(cctx, toks, parseString)
	}
	return query(cctx, toks, parseInt)
}

func display[T any](v *T) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprint(*v)
}

func query[T cmp.Ordered](cctx *cli.Context, toks []string, parse parser[T]) error {
	tree, err := build(toks, parse)
	if err != nil {
		return err
	}
	for _, s := range cctx.StringSlice("remove") {
		v, err := parse(s)
		if err != nil {
			return err
		}
		ok, err := tree.Remove(v)
		if err != nil {
			return err
		}
		slog.Info("remove", "value", v, "removed", ok)
	}

	w := cctx.App.Writer
	if cctx.IsSet("has") {
		v, err := parse(cctx.String("has"))
		if err != nil {
			return err
		}
		has, err := tree.Has(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "has(%v) = %v\n", v, has)
	}
	for _, q := range []struct {
		name string
		f    func(T) (*T, error)
	}{
		{"floor", tree.Floor},
		{"ceiling", tree.Ceiling},
		{"lower", tree.Lower},
		{"higher", tree.Higher},
	} {
		if !cctx.IsSet(q.name) {
			continue
		}
		v, err := parse(cctx.String(q.name))
		if err != nil {
			return err
		}
		r, err := q.f(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s(%v) = %s\n", q.name, v, display(r))
	}
	if cctx.IsSet("get") {
		v, err := tree.Get(cctx.Int("get"))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "get(%d) = %v\n", cctx.Int("get"), v)
	}
	if cctx.IsSet("from") != cctx.IsSet("to") {
		return errors.New("range query needs both --from and --to")
	}
	if cctx.IsSet("from") {
		from, err := parse(cctx.String("from"))
		if err != nil {
			return err
		}
		to, err := parse(cctx.String("to"))
		if err != nil {
			return err
		}
		vs, err := tree.Range(from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "range(%v, %v) = %v\n", from, to, vs)
	}
	fmt.Fprintln(w, tree)
	return nil
}
