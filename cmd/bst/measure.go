package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"
)

var cmdMeasure = &cli.Command{
	Name:  "measure",
	Usage: "insert random values and report how tall the tree gets",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "n",
			Usage:   "number of distinct values to insert per round",
			Value:   100000,
			EnvVars: []string{"BST_MEASURE_N"},
		},
		&cli.IntFlag{
			Name:  "rounds",
			Usage: "number of rounds",
			Value: 10,
		},
		&cli.Float64Flag{
			Name:  "remove",
			Usage: "fraction of the values removed again after inserting",
			Value: 0.5,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed",
			EnvVars: []string{"BST_SEED"},
		},
	},
	Action: runMeasure,
}

type sample struct {
	size, height   int
	insert, remove time.Duration
}

// measure one round: insert a random permutation of [0, n), then remove the
// first frac of it again.
func measure[T constraints.Integer](r *rand.Rand, n int, frac float64) (sample, error) {
	tree := Trees.New[T]()
	vs := make([]T, n)
	for i, p := range r.Perm(n) {
		vs[i] = T(p)
	}
	start := time.Now()
	for _, v := range vs {
		tree.Insert(v)
	}
	s := sample{insert: time.Since(start)}
	start = time.Now()
	for _, v := range vs[:int(frac*float64(n))] {
		tree.Remove(v)
	}
	s.remove = time.Since(start)
	if tree.Corrupt() {
		return s, errors.New("tree is corrupt")
	}
	s.size, s.height = tree.Size(), tree.Height()
	return s, nil
}

func runMeasure(cctx *cli.Context) error {
	n, rounds, frac := cctx.Int("n"), cctx.Int("rounds"), cctx.Float64("remove")
	if n <= 0 || rounds <= 0 {
		return errors.New("--n and --rounds must be positive")
	}
	if frac < 0 || frac > 1 {
		return errors.Errorf("--remove must be in [0, 1], got %v", frac)
	}
	r := rand.New(rand.NewSource(cctx.Int64("seed")))
	hs := make([]float64, 0, rounds)
	for i := range rounds {
		s, err := measure[int64](r, n, frac)
		if err != nil {
			return err
		}
		slog.Info("round", "round", i, "size", s.size, "height", s.height, "insert", s.insert, "remove", s.remove)
		hs = append(hs, float64(s.height))
	}
	var sum float64
	for _, h := range hs {
		sum += h
	}
	avg := sum / float64(len(hs))
	sum = 0
	for _, h := range hs {
		a := h - avg
		sum += a * a
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "average height: %f, log2(n): %f\n", avg, math.Log2(float64(n)))
	fmt.Fprintf(w, "stddev: %f\n", math.Sqrt(sum/float64(len(hs))))
	return nil
}
