// SPDX-License-Identifier: MIT
// Package: loader
//
// dimacs.go - DIMACS shortest-path format (.gr) reader and writer.
//
// Format:
//   c <comment>
//   p sp <nodes> <arcs>
//   a <u> <v> <w>        (1-based ids)

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

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadDIMACS parses a DIMACS .gr stream and builds its adjacency matrix.
// The declared node count of the "p" line sizes the matrix unless
// WithVertexCount overrides it. WithEdgeLimit stops after that many arcs.
// Errors: ErrSyntax (with line number), ErrInvalidVertex, ErrInvalidWeight,
// ErrEmptyGraph.
func ReadDIMACS(r io.Reader, opts ...Option) (*sparse.Matrix[float64], error) {
	cfg := newLoaderConfig(opts...)

	edges, declared, err := parseDIMACS(r, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.vertexCount == 0 && declared > 0 {
		cfg.vertexCount = declared
	}

	return buildGraph(edges, cfg, false)
}

// parseDIMACS returns the arcs as 0-based edges and the declared node count
// (0 when the file has no "p" line).
func parseDIMACS(r io.Reader, cfg loaderConfig) ([]Edge, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		edges    []Edge
		declared int
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			// p <problem> <nodes> <arcs>
			if len(fields) != 4 {
				return nil, 0, fmt.Errorf("ReadDIMACS: line %d: %q: %w", lineNo, line, ErrSyntax)
			}
			nodes, err1 := strconv.Atoi(fields[2])
			arcs, err2 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || nodes < 0 || arcs < 0 {
				return nil, 0, fmt.Errorf("ReadDIMACS: line %d: %q: %w", lineNo, line, ErrSyntax)
			}
			declared = nodes
			cfg.logger.WithFields(logrus.Fields{
				"problem": fields[1],
				"nodes":   nodes,
				"arcs":    arcs,
			}).Debug("loader: dimacs header")
		case "a":
			if len(fields) != 4 {
				return nil, 0, fmt.Errorf("ReadDIMACS: line %d: %q: %w", lineNo, line, ErrSyntax)
			}
			e, err := parseOneBasedEdge(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, 0, fmt.Errorf("ReadDIMACS: line %d: %w", lineNo, err)
			}
			edges = append(edges, e)
			if cfg.edgeLimit > 0 && len(edges) >= cfg.edgeLimit {
				return edges, declared, nil
			}
		default:
			return nil, 0, fmt.Errorf("ReadDIMACS: line %d: unknown record %q: %w", lineNo, fields[0], ErrSyntax)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("ReadDIMACS: %w", err)
	}

	return edges, declared, nil
}

// parseOneBasedEdge converts 1-based textual ids and a weight into an Edge.
func parseOneBasedEdge(us, vs, ws string) (Edge, error) {
	u, err := strconv.Atoi(us)
	if err != nil {
		return Edge{}, fmt.Errorf("vertex %q: %w", us, ErrSyntax)
	}
	v, err := strconv.Atoi(vs)
	if err != nil {
		return Edge{}, fmt.Errorf("vertex %q: %w", vs, ErrSyntax)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("weight %q: %w", ws, ErrSyntax)
	}
	if u <= 0 || v <= 0 {
		return Edge{}, fmt.Errorf("ids %d,%d are 1-based: %w", u, v, ErrInvalidVertex)
	}

	return Edge{U: u - 1, V: v - 1, W: w}, nil
}

// WriteDIMACS writes n and edges (0-based) as a DIMACS .gr stream.
// Each edge is written once; ReadDIMACS mirrors it back on load.
func WriteDIMACS(w io.Writer, n int, edges []Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "c generated by sparseprim\np sp %d %d\n", n, len(edges)); err != nil {
		return fmt.Errorf("WriteDIMACS: %w", err)
	}
	for k, e := range edges {
		if e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
			return fmt.Errorf("WriteDIMACS: edge %d (%d,%d) outside %d vertices: %w", k, e.U, e.V, n, ErrInvalidVertex)
		}
		if _, err := fmt.Fprintf(bw, "a %d %d %s\n", e.U+1, e.V+1, strconv.FormatFloat(e.W, 'g', -1, 64)); err != nil {
			return fmt.Errorf("WriteDIMACS: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDIMACS: %w", err)
	}

	return nil
}
