// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparseprim/sparse"
)

// Format names an input file format.
type Format string

const (
	// FormatAuto picks the reader from the file extension.
	FormatAuto Format = "auto"
	// FormatDIMACS is the DIMACS shortest-path format (.gr, .dimacs).
	FormatDIMACS Format = "dimacs"
	// FormatMatrixMarket is the MatrixMarket coordinate format (.mtx, .mm).
	FormatMatrixMarket Format = "mtx"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatDIMACS, FormatMatrixMarket:
		return f, nil
	case "", "detect":
		return FormatAuto, nil
	case "gr":
		return FormatDIMACS, nil
	case "mm", "matrixmarket":
		return FormatMatrixMarket, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// DetectFormat infers the format from the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gr", ".dimacs":
		return FormatDIMACS, nil
	case ".mtx", ".mm":
		return FormatMatrixMarket, nil
	default:
		return "", fmt.Errorf("DetectFormat(%q): %w", path, ErrUnknownFormat)
	}
}

// LoadFile opens path and reads it with the reader for format.
// FormatAuto resolves the reader through DetectFormat.
func LoadFile(path string, format Format, opts ...Option) (*sparse.Matrix[float64], error) {
	if format == FormatAuto {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, fmt.Errorf("LoadFile: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	var g *sparse.Matrix[float64]
	switch format {
	case FormatDIMACS:
		g, err = ReadDIMACS(f, opts...)
	case FormatMatrixMarket:
		g, err = ReadMatrixMarket(f, opts...)
	default:
		return nil, fmt.Errorf("LoadFile(%q): format %q: %w", path, format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q): %w", path, err)
	}

	return g, nil
}
