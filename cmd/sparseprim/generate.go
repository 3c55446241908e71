package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparseprim/builder"
	"github.com/katalvlaran/sparseprim/loader"
)

// Graph kinds accepted by --kind.
const (
	kindPath     = "path"
	kindCycle    = "cycle"
	kindStar     = "star"
	kindComplete = "complete"
	kindGrid     = "grid"
	kindRandom   = "random"
)

type generateFlags struct {
	kind      string
	n         int
	cols      int
	p         float64
	seed      int64
	minWeight float64
	maxWeight float64
	integer   bool
	output    string
}

func newGenerateCmd(c *cli) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic weighted graph in DIMACS format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, c.log, f)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.kind, "kind", kindRandom, "topology: path, cycle, star, complete, grid, random")
	fs.IntVarP(&f.n, "vertices", "n", 100, "vertex count (rows for grid)")
	fs.IntVar(&f.cols, "cols", 0, "grid columns (0 = same as -n)")
	fs.Float64VarP(&f.p, "probability", "p", 0.05, "edge probability for random graphs")
	fs.Int64Var(&f.seed, "seed", 1, "RNG seed")
	fs.Float64Var(&f.minWeight, "min-weight", 1, "smallest edge weight")
	fs.Float64Var(&f.maxWeight, "max-weight", 100, "largest edge weight")
	fs.BoolVar(&f.integer, "integer", false, "draw integral weights (forces ties)")
	fs.StringVarP(&f.output, "output", "o", "-", "output file (- for stdout)")

	return cmd
}

// constructor maps --kind onto a builder constructor.
func (f *generateFlags) constructor() (builder.Constructor, error) {
	switch f.kind {
	case kindPath:
		return builder.Path(f.n), nil
	case kindCycle:
		return builder.Cycle(f.n), nil
	case kindStar:
		return builder.Star(f.n), nil
	case kindComplete:
		return builder.Complete(f.n), nil
	case kindGrid:
		cols := f.cols
		if cols == 0 {
			cols = f.n
		}
		return builder.Grid(f.n, cols), nil
	case kindRandom:
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("--kind: unknown graph kind %q", f.kind)
	}
}

// builderOptions validates the weight range before the option constructors
// get a chance to panic on it.
func (f *generateFlags) builderOptions() ([]builder.BuilderOption, error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return nil, fmt.Errorf("--min-weight/--max-weight: need 0 <= min <= max, got %g..%g", f.minWeight, f.maxWeight)
	}
	opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	switch {
	case f.minWeight == f.maxWeight:
		opts = append(opts, builder.WithConstantWeight(f.minWeight))
	case f.integer:
		opts = append(opts, builder.WithIntegerWeight(int(f.minWeight), int(f.maxWeight)))
	default:
		opts = append(opts, builder.WithUniformWeight(f.minWeight, f.maxWeight))
	}

	return opts, nil
}

func runGenerate(cmd *cobra.Command, logger *log.Logger, f *generateFlags) error {
	ctor, err := f.constructor()
	if err != nil {
		return err
	}
	bopts, err := f.builderOptions()
	if err != nil {
		return err
	}
	set, err := builder.BuildEdges(bopts, ctor)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if f.output != "-" {
		file, err := os.Create(f.output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	if err := loader.WriteDIMACS(w, set.N, set.Edges); err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"kind":     f.kind,
		"vertices": set.N,
		"edges":    len(set.Edges),
		"output":   f.output,
	}).Info("graph generated")

	return nil
}
