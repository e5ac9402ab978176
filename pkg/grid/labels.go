package grid

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lynnewu/BlenderAids/pkg/errors"
)

// Alignment is a label anchor position within a major square.
type Alignment int

// The nine anchor positions, row by row from the top of the cell.
const (
	UpperLeft Alignment = iota
	UpperCenter
	UpperRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	LowerLeft
	LowerCenter
	LowerRight
)

var alignmentNames = map[Alignment]string{
	UpperLeft:    "UpperLeft",
	UpperCenter:  "UpperCenter",
	UpperRight:   "UpperRight",
	MiddleLeft:   "MiddleLeft",
	MiddleCenter: "MiddleCenter",
	MiddleRight:  "MiddleRight",
	LowerLeft:    "LowerLeft",
	LowerCenter:  "LowerCenter",
	LowerRight:   "LowerRight",
}

// String returns the canonical name, e.g. "UpperLeft".
func (a Alignment) String() string { return alignmentNames[a] }

func (a Alignment) valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// ParseAlignment converts a user-supplied alignment token to an Alignment.
// Matching is case-insensitive.
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidAlignment, "unknown label alignment %q", s)
}

// AlignmentNames returns the canonical names of all anchors in layout
// order, for flag help and validation messages.
func AlignmentNames() []string {
	out := make([]string, 0, len(alignmentNames))
	for a := UpperLeft; a <= LowerRight; a++ {
		out = append(out, alignmentNames[a])
	}
	return out
}

// horizontal returns the x fraction of the cell side for the anchor point
// (0 left edge, 0.5 center, 1 right edge) and the sign of the inset that
// moves the label toward the cell interior.
func (a Alignment) horizontal() (frac, inset float64) {
	switch a {
	case UpperLeft, MiddleLeft, LowerLeft:
		return 0, 1
	case UpperRight, MiddleRight, LowerRight:
		return 1, -1
	default:
		return 0.5, 0
	}
}

// vertical is the y counterpart of horizontal, with y increasing upward:
// Upper anchors sit at the top edge and inset downward.
func (a Alignment) vertical() (frac, inset float64) {
	switch a {
	case UpperLeft, UpperCenter, UpperRight:
		return 1, -1
	case LowerLeft, LowerCenter, LowerRight:
		return 0, 1
	default:
		return 0.5, 0
	}
}

// ColumnLabel converts a zero-based column index to spreadsheet letters
// using bijective base-26: 0→A, 25→Z, 26→AA, 27→AB.
func ColumnLabel(col int) string {
	n := col + 1
	var b [16]byte // 14 letters cover the largest int column index
	i := len(b)
	for n > 0 {
		n--
		i--
		b[i] = byte('A' + n%26)
		n /= 26
	}
	return string(b[i:])
}

// ParseCellRef decodes a spreadsheet-style reference like "AA1" into
// zero-based row and column indices. The inverse of the labelling scheme:
// ParseCellRef("A1") = (0, 0), ParseCellRef("AA1") = (0, 26).
func ParseCellRef(ref string) (row, col int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, errors.New(errors.ErrCodeInvalidConfig, "malformed cell reference %q", ref)
	}
	n, convErr := strconv.Atoi(ref[i:])
	if convErr != nil || n < 1 {
		return 0, 0, errors.New(errors.ErrCodeInvalidConfig, "malformed cell reference %q", ref)
	}
	return n - 1, col - 1, nil
}

// CellLabel is one label placed inside a major square. Coordinates are in
// the shared pixel/point space with the origin at the lower left.
type CellLabel struct {
	Row, Col int
	Text     string      // e.g. "A1", "Z1", "AA1"
	X, Y     float64     // anchor point
	Color    color.Color // contrast color against the cell fill
}

// labelInsetFactor scales LabelScale into the margin that keeps labels
// off the border lines. At the default scale of 0.20 this yields the
// usual 4% of the cell side.
const labelInsetFactor = 0.2

// Labels computes one label per major square in row-major order (row 0
// first, columns left to right). Anchor points honor cfg.LabelAlignment,
// inset toward the cell interior by labelInsetFactor*LabelScale of the
// cell side. Label color follows the contrast rule against the cell fill.
func Labels(g EffectiveGrid, cfg Config) []CellLabel {
	step := g.MajorStep()
	margin := labelInsetFactor * cfg.LabelScale * step
	xFrac, xInset := cfg.LabelAlignment.horizontal()
	yFrac, yInset := cfg.LabelAlignment.vertical()

	out := make([]CellLabel, 0, g.MajorCount*g.MajorCount)
	for row := 0; row < g.MajorCount; row++ {
		for col := 0; col < g.MajorCount; col++ {
			out = append(out, CellLabel{
				Row:   row,
				Col:   col,
				Text:  ColumnLabel(col) + strconv.Itoa(row+1),
				X:     float64(col)*step + xFrac*step + xInset*margin,
				Y:     float64(row)*step + yFrac*step + yInset*margin,
				Color: LabelColor(cfg, row, col),
			})
		}
	}
	return out
}
