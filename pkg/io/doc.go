// Package io reads and writes layout sets.
//
// # Formats
//
//   - text: each grid as plain rows, blanks drawn as '.', separated by a
//     blank line; an optional header names the ordering
//   - json: an array of cell matrices, byte-compatible with the HTTP
//     response of POST /generate
//   - yaml: a list of layouts with ordering, placements and rows, where each
//     row is one string with blanks as spaces
//
// Use [Write] to encode to any io.Writer, or [Export] to write a file whose
// format is chosen from its extension:
//
//	if err := io.Export(result.Layouts, "layouts.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
// [ReadJSON] and [ReadYAML] decode the json and yaml formats. The JSON wire
// form carries no ordering or placements, so layouts read from it hold only
// their grid.
package io
