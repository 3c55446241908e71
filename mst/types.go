// Package mst defines configuration options and sentinel errors for forest computation.
// It supports selecting between the algebraic Prim engine and Kruskal via Options.
package mst

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/sirupsen/logrus"
)

// ErrInvalidGraph indicates the input is not a usable adjacency matrix.
// Returned when the matrix is nil, non-square, has no vertices, or stores a NaN/±Inf weight.
var ErrInvalidGraph = errors.New("mst: graph must be a non-empty square matrix with finite weights")

// ErrPreconditionViolation signals an internal invariant breach: the minimum
// selector was asked for the arg-min of an empty vector.
var ErrPreconditionViolation = errors.New("mst: arg-min of an empty vector")

// ErrNumericOverflow indicates the total weight left the finite float64 range.
var ErrNumericOverflow = errors.New("mst: total weight overflow")

// ErrUnknownMethod indicates Options.Method names no known algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects the algebraic Prim engine (frontier relaxation over sparse rows).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures which algorithm Compute runs and where it logs.
// Use DefaultOptions() to get a default setup (Prim, silent).
//
// Fields:
//
//	Method string             - one of MethodPrim or MethodKruskal.
//	Logger logrus.FieldLogger - receives Debug-level progress per component.
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Logger receives per-component progress at Debug level.
	Logger logrus.FieldLogger
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Unknown names are reported by Compute as ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithLogger returns an Option that routes progress logging to l.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("mst: WithLogger(nil)")
	}
	return func(opts *Options) {
		opts.Logger = l
	}
}

// DefaultOptions returns Options initialized for Prim with a logger that
// discards everything.
func DefaultOptions() Options {
	return Options{
		Method: MethodPrim,
		Logger: discardLogger(),
	}
}

// discardLogger builds a logrus logger writing to io.Discard.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// resolve applies opts on top of DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the forest algorithm based on Options.Method.
//
//   - MethodPrim:    PrimContext(ctx, g, opts...).
//   - MethodKruskal: KruskalContext(ctx, g, opts...).
//   - otherwise:     ErrUnknownMethod.
//
// Returns the parent vector, the total weight and an error; parents is nil on error.
func Compute(ctx context.Context, g *sparse.Matrix[float64], opts ...Option) (*sparse.Vector[int], float64, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodPrim:
		return PrimContext(ctx, g, opts...)
	case MethodKruskal:
		return KruskalContext(ctx, g, opts...)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}
