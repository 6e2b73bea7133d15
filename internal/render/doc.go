// SPDX-License-Identifier: MIT

// Package render draws frames for a human: Terminal paints the grid with
// tcell and waits for Enter before the search starts, Text prints ASCII
// pictures to any io.Writer.
//
// Colours follow the classic grassfire demo: white empty cells, black
// obstacles, green start, red goal, yellow labeled cells and blue path.
package render
