// SPDX-License-Identifier: MIT
// Package: loader
//
// errors.go - sentinel errors for graph loading.
//
// Policy:
//   • Sentinels only; callers match with errors.Is.
//   • Context (file line, offending id) is added via fmt.Errorf("...: %w", Err).

package loader

import "errors"

var (
	// ErrEmptyGraph indicates no vertex survived loading.
	ErrEmptyGraph = errors.New("loader: graph has no vertices")

	// ErrInvalidVertex indicates a negative id, a zero id in a 1-based
	// format, or an id outside the declared vertex count.
	ErrInvalidVertex = errors.New("loader: invalid vertex id")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("loader: invalid edge weight")

	// ErrSyntax indicates a malformed line or header in an input file.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrUnknownFormat indicates a format name or file extension no reader handles.
	ErrUnknownFormat = errors.New("loader: unknown format")
)
