// SPDX-License-Identifier: MIT
// Package: loader
//
// matrixmarket.go - MatrixMarket coordinate format (.mtx) reader.
//
// Supported header:
//   %%MatrixMarket matrix coordinate <real|integer|pattern> <general|symmetric>
//
// Entries are 1-based "i j [value]"; pattern entries get weight 1. Entries
// with a zero index are skipped.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparseprim/sparse"
	"github.com/sirupsen/logrus"
)

const mmBanner = "%%MatrixMarket"

// mmHeader holds the parsed banner and size line.
type mmHeader struct {
	field      string // real | integer | pattern
	symmetric  bool
	rows, cols int
	entries    int
}

// ReadMatrixMarket parses a MatrixMarket coordinate stream and builds its
// adjacency matrix of size max(rows, cols) unless WithVertexCount overrides
// it. Symmetric files are always mirrored; general files are mirrored unless
// WithDirected is given. WithEdgeLimit stops after that many entries.
func ReadMatrixMarket(r io.Reader, opts ...Option) (*sparse.Matrix[float64], error) {
	cfg := newLoaderConfig(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	hdr, lineNo, err := readMMHeader(sc)
	if err != nil {
		return nil, err
	}
	cfg.logger.WithFields(logrus.Fields{
		"field":     hdr.field,
		"symmetric": hdr.symmetric,
		"rows":      hdr.rows,
		"cols":      hdr.cols,
		"entries":   hdr.entries,
	}).Debug("loader: matrix market header")

	wantFields := 3
	if hdr.field == "pattern" {
		wantFields = 2
	}

	edges := make([]Edge, 0, hdr.entries)
	skipped := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != wantFields {
			return nil, fmt.Errorf("ReadMatrixMarket: line %d: %q: %w", lineNo, line, ErrSyntax)
		}
		i, err1 := strconv.Atoi(fields[0])
		j, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || i < 0 || j < 0 {
			return nil, fmt.Errorf("ReadMatrixMarket: line %d: %q: %w", lineNo, line, ErrSyntax)
		}
		w := 1.0
		if wantFields == 3 {
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("ReadMatrixMarket: line %d: weight %q: %w", lineNo, fields[2], ErrSyntax)
			}
		}
		if i == 0 || j == 0 {
			skipped++
			continue
		}
		edges = append(edges, Edge{U: i - 1, V: j - 1, W: w})
		if cfg.edgeLimit > 0 && len(edges) >= cfg.edgeLimit {
			break
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadMatrixMarket: %w", err)
	}
	if skipped > 0 {
		cfg.logger.WithField("skipped", skipped).Debug("loader: zero-index entries skipped")
	}

	if cfg.vertexCount == 0 {
		cfg.vertexCount = max(hdr.rows, hdr.cols)
	}

	return buildGraph(edges, cfg, hdr.symmetric)
}

// readMMHeader consumes the banner, comments and the size line.
// It returns the header and the number of lines consumed.
func readMMHeader(sc *bufio.Scanner) (mmHeader, int, error) {
	var (
		hdr    mmHeader
		lineNo int
		banner bool
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, mmBanner) {
			if err := parseMMBanner(line, &hdr); err != nil {
				return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: line %d: %w", lineNo, err)
			}
			banner = true
			continue
		}
		if line == "" || line[0] == '%' {
			continue
		}
		if !banner {
			return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: missing %s banner: %w", mmBanner, ErrSyntax)
		}

		// Size line: rows cols entries.
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: line %d: size %q: %w", lineNo, line, ErrSyntax)
		}
		var errs [3]error
		hdr.rows, errs[0] = strconv.Atoi(fields[0])
		hdr.cols, errs[1] = strconv.Atoi(fields[1])
		hdr.entries, errs[2] = strconv.Atoi(fields[2])
		for _, err := range errs {
			if err != nil {
				return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: line %d: size %q: %w", lineNo, line, ErrSyntax)
			}
		}
		if hdr.rows < 0 || hdr.cols < 0 || hdr.entries < 0 {
			return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: line %d: size %q: %w", lineNo, line, ErrSyntax)
		}

		return hdr, lineNo, nil
	}
	if err := sc.Err(); err != nil {
		return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: %w", err)
	}
	if !banner {
		return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: missing %s banner: %w", mmBanner, ErrSyntax)
	}

	return hdr, lineNo, fmt.Errorf("ReadMatrixMarket: missing size line: %w", ErrSyntax)
}

// parseMMBanner validates "%%MatrixMarket matrix coordinate <field> <symmetry>".
func parseMMBanner(line string, hdr *mmHeader) error {
	f := strings.Fields(strings.ToLower(line))
	if len(f) != 5 || f[1] != "matrix" || f[2] != "coordinate" {
		return fmt.Errorf("unsupported banner %q: %w", line, ErrSyntax)
	}
	switch f[3] {
	case "real", "integer", "pattern":
		hdr.field = f[3]
	default:
		return fmt.Errorf("unsupported field %q: %w", f[3], ErrSyntax)
	}
	switch f[4] {
	case "general":
		hdr.symmetric = false
	case "symmetric":
		hdr.symmetric = true
	default:
		return fmt.Errorf("unsupported symmetry %q: %w", f[4], ErrSyntax)
	}

	return nil
}
