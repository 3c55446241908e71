// SPDX-License-Identifier: MIT
// Package: loader
//
// options.go - functional options shared by BuildGraph and the file readers.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Loading itself never panics; it returns sentinel errors.
//   • Zero values mean "not set": sizes come from the data.

package loader

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Option customizes loading by mutating a loaderConfig before any input is read.
type Option func(*loaderConfig)

// loaderConfig aggregates all loading knobs. Passed by value after resolution.
type loaderConfig struct {
	vertexCount int // fixed matrix size; 0 = derive from data
	vertexLimit int // drop edges touching ids >= limit; 0 = no limit
	edgeLimit   int // stop reading after this many edge lines; 0 = no limit
	directed    bool
	logger      logrus.FieldLogger
}

// newLoaderConfig applies opts in order over deterministic defaults.
func newLoaderConfig(opts ...Option) loaderConfig {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	cfg := loaderConfig{logger: discard}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithVertexCount fixes the matrix size to n×n. Edges referring to ids >= n
// are rejected with ErrInvalidVertex. Panics if n <= 0.
func WithVertexCount(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("loader: WithVertexCount(%d)", n))
	}
	return func(c *loaderConfig) {
		c.vertexCount = n
	}
}

// WithVertexLimit keeps only the first n vertices: edges touching an id >= n
// are dropped silently and the matrix is at most n×n. Panics if n <= 0.
func WithVertexLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("loader: WithVertexLimit(%d)", n))
	}
	return func(c *loaderConfig) {
		c.vertexLimit = n
	}
}

// WithEdgeLimit makes the file readers stop after m edge lines. Panics if m <= 0.
func WithEdgeLimit(m int) Option {
	if m <= 0 {
		panic(fmt.Sprintf("loader: WithEdgeLimit(%d)", m))
	}
	return func(c *loaderConfig) {
		c.edgeLimit = m
	}
}

// WithDirected stores each edge only as (u,v). By default (v,u) is stored too.
// MatrixMarket files declared symmetric are always mirrored.
func WithDirected() Option {
	return func(c *loaderConfig) {
		c.directed = true
	}
}

// WithLogger routes Debug-level loading statistics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}
	return func(c *loaderConfig) {
		c.logger = l
	}
}
