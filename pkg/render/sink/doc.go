// Package sink renders a planned grid to the supported output formats.
//
// Each format has its own file (png.go, svg.go, pdf.go) constructing the
// matching vg backend canvas and encoding its bytes; the drawing itself
// is shared via pkg/render so all formats stay visually identical.
package sink
