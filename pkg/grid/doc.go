// Package grid computes the geometry and labelling of a square ruler/UV
// test grid: major squares, minor subdivisions, snapped pixel sizes, and
// spreadsheet-style cell labels with their anchor positions.
//
// Everything in this package is a pure function of the configuration.
// Rendering is handled separately by pkg/render.
package grid
