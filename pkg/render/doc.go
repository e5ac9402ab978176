// Package render draws a planned grid onto a gonum/plot vg canvas.
//
// All output formats share one primitive emission path: cell fills first,
// then minor grid lines, major grid lines, and finally the cell labels.
// Format-specific canvas construction and encoding live in the sink
// subpackage; because every backend consumes the same draw calls in the
// same coordinate space, PNG, SVG, and PDF outputs align 1:1.
package render
