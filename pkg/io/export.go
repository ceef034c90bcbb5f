package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/grid"
	"github.com/matzehuels/crossnames/pkg/layout"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// textBlank stands in for blank cells in text output.
const textBlank = '.'

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return cerrors.New(cerrors.ErrCodeInvalidFormat,
		"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
}

// FormatFromPath picks a format from a file extension, defaulting to text.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatText
}

// Write encodes layouts to w in the given format.
func Write(w io.Writer, layouts []layout.Layout, format string) error {
	switch format {
	case FormatText:
		return WriteText(w, layouts, TextOptions{Header: true})
	case FormatJSON:
		return WriteJSON(w, layouts)
	case FormatYAML:
		return WriteYAML(w, layouts)
	}
	return ValidateFormat(format)
}

// Export writes layouts to a file at path, choosing the format from the
// extension.
func Export(layouts []layout.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, layouts, FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// =============================================================================
// Text
// =============================================================================

// TextOptions controls [WriteText].
type TextOptions struct {
	// Header prints "#n ORDERING" above each grid.
	Header bool
	// Crop trims blank rows and columns around the words.
	Crop bool
}

// WriteText writes each layout as rows of characters.
func WriteText(w io.Writer, layouts []layout.Layout, opts TextOptions) error {
	for i, l := range layouts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if opts.Header {
			if _, err := fmt.Fprintf(w, "#%d %s\n", i+1, strings.Join(l.Ordering, " ")); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, Text(l.Grid, opts.Crop)); err != nil {
			return err
		}
	}
	return nil
}

// Text renders a grid as newline-terminated rows with blanks drawn as '.'.
func Text(g *grid.Grid, crop bool) string {
	minX, minY, maxX, maxY := 0, 0, g.Size()-1, g.Size()-1
	if crop {
		var ok bool
		if minX, minY, maxX, maxY, ok = g.Bounds(); !ok {
			return ""
		}
	}

	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := g.At(x, y)
			if c == grid.Blank {
				c = textBlank
			}
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// =============================================================================
// JSON
// =============================================================================

// WriteJSON encodes layouts as an array of cell matrices.
func WriteJSON(w io.Writer, layouts []layout.Layout) error {
	if layouts == nil {
		layouts = []layout.Layout{}
	}
	if err := json.NewEncoder(w).Encode(layouts); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes an array of cell matrices.
func ReadJSON(r io.Reader) ([]layout.Layout, error) {
	var layouts []layout.Layout
	if err := json.NewDecoder(r).Decode(&layouts); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return layouts, nil
}

// =============================================================================
// YAML
// =============================================================================

type yamlLayout struct {
	Ordering   []string         `yaml:"ordering"`
	Placements []grid.Placement `yaml:"placements"`
	Rows       []string         `yaml:"rows"`
}

// WriteYAML encodes layouts as a YAML list.
func WriteYAML(w io.Writer, layouts []layout.Layout) error {
	out := make([]yamlLayout, len(layouts))
	for i, l := range layouts {
		rows := make([]string, l.Grid.Size())
		for y := range rows {
			rows[y] = l.Grid.Read(0, y, l.Grid.Size(), grid.Horizontal)
		}
		out[i] = yamlLayout{
			Ordering:   l.Ordering,
			Placements: l.Placements,
			Rows:       rows,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes layouts written by [WriteYAML].
func ReadYAML(r io.Reader) ([]layout.Layout, error) {
	var in []yamlLayout
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	layouts := make([]layout.Layout, len(in))
	for i, yl := range in {
		cells := make([][]string, len(yl.Rows))
		for y, row := range yl.Rows {
			for _, c := range row {
				cells[y] = append(cells[y], string(c))
			}
		}
		g, err := grid.FromRows(cells)
		if err != nil {
			return nil, fmt.Errorf("layout %d: %w", i+1, err)
		}
		layouts[i] = layout.Layout{
			Ordering:   yl.Ordering,
			Placements: yl.Placements,
			Grid:       g,
		}
	}
	return layouts, nil
}
