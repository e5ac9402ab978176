package grid

import (
	"strconv"
	"testing"
)

func TestColumnLabel(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		if got := ColumnLabel(tt.col); got != tt.want {
			t.Errorf("ColumnLabel(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestColumnLabelSequence(t *testing.T) {
	// Indices 0..701 must be exactly A..Z, AA..AZ, ..., ZZ: unique, with
	// no character outside A-Z.
	seen := make(map[string]bool, 702)
	for i := 0; i <= 701; i++ {
		l := ColumnLabel(i)
		if seen[l] {
			t.Fatalf("ColumnLabel(%d) = %q duplicates an earlier label", i, l)
		}
		seen[l] = true
		for _, r := range l {
			if r < 'A' || r > 'Z' {
				t.Fatalf("ColumnLabel(%d) = %q contains %q", i, l, r)
			}
		}
		wantLen := 1
		if i >= 26 {
			wantLen = 2
		}
		if len(l) != wantLen {
			t.Errorf("ColumnLabel(%d) = %q, want length %d", i, l, wantLen)
		}
	}
	if ColumnLabel(0) != "A" || ColumnLabel(26) != "AA" || ColumnLabel(701) != "ZZ" {
		t.Error("sequence endpoints do not match A / AA / ZZ")
	}
}

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref     string
		wantRow int
		wantCol int
	}{
		{"A1", 0, 0},
		{"Z1", 0, 25},
		{"AA1", 0, 26},
		{"B10", 9, 1},
		{"ZZ99", 98, 701},
	}

	for _, tt := range tests {
		row, col, err := ParseCellRef(tt.ref)
		if err != nil {
			t.Errorf("ParseCellRef(%q) error: %v", tt.ref, err)
			continue
		}
		if row != tt.wantRow || col != tt.wantCol {
			t.Errorf("ParseCellRef(%q) = (%d, %d), want (%d, %d)", tt.ref, row, col, tt.wantRow, tt.wantCol)
		}
	}
}

func TestParseCellRefRoundTrip(t *testing.T) {
	for col := 0; col < 800; col += 13 {
		for row := 0; row < 50; row += 7 {
			ref := ColumnLabel(col) + strconv.Itoa(row+1)
			gotRow, gotCol, err := ParseCellRef(ref)
			if err != nil {
				t.Fatalf("ParseCellRef(%q) error: %v", ref, err)
			}
			if gotRow != row || gotCol != col {
				t.Fatalf("ParseCellRef(%q) = (%d, %d), want (%d, %d)", ref, gotRow, gotCol, row, col)
			}
		}
	}
}

func TestParseCellRefMalformed(t *testing.T) {
	for _, ref := range []string{"", "A", "1", "A0", "Aa1", "A-1", "1A"} {
		if _, _, err := ParseCellRef(ref); err == nil {
			t.Errorf("ParseCellRef(%q) error = nil, want error", ref)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
	}{
		{"UpperLeft", UpperLeft},
		{"upperleft", UpperLeft},
		{"MIDDLECENTER", MiddleCenter},
		{"LowerRight", LowerRight},
	}

	for _, tt := range tests {
		got, err := ParseAlignment(tt.in)
		if err != nil {
			t.Errorf("ParseAlignment(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseAlignment("TopLeft"); err == nil {
		t.Error("ParseAlignment(TopLeft) error = nil, want error")
	}
}

func TestAlignmentNames(t *testing.T) {
	names := AlignmentNames()
	if len(names) != 9 {
		t.Fatalf("AlignmentNames() len = %d, want 9", len(names))
	}
	if names[0] != "UpperLeft" || names[4] != "MiddleCenter" || names[8] != "LowerRight" {
		t.Errorf("AlignmentNames() = %v, wrong order", names)
	}
}

func TestLabelsOrderAndText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MajorCount = 3
	cfg.MinorCount = 2
	cfg.TargetSize = 300

	g, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	labels := Labels(g, cfg)
	if len(labels) != 9 {
		t.Fatalf("Labels() len = %d, want 9", len(labels))
	}

	// Row-major: row 0 all columns first.
	wantText := []string{"A1", "B1", "C1", "A2", "B2", "C2", "A3", "B3", "C3"}
	for i, l := range labels {
		if l.Text != wantText[i] {
			t.Errorf("Labels()[%d].Text = %q, want %q", i, l.Text, wantText[i])
		}
	}
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestLabelAnchors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MajorCount = 2
	cfg.MinorCount = 2
	cfg.TargetSize = 200 // 100px major squares

	g, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	// margin = 0.2 * labelScale * step = 0.2 * 0.2 * 100 = 4px
	const margin = 4.0

	tests := []struct {
		align Alignment
		// anchor of cell (row 0, col 0), which spans 0..100 in both axes
		wantX, wantY float64
	}{
		{UpperLeft, margin, 100 - margin},
		{UpperCenter, 50, 100 - margin},
		{UpperRight, 100 - margin, 100 - margin},
		{MiddleLeft, margin, 50},
		{MiddleCenter, 50, 50},
		{MiddleRight, 100 - margin, 50},
		{LowerLeft, margin, margin},
		{LowerCenter, 50, margin},
		{LowerRight, 100 - margin, margin},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			cfg.LabelAlignment = tt.align
			labels := Labels(g, cfg)
			first := labels[0]
			if first.Row != 0 || first.Col != 0 {
				t.Fatalf("first label is (%d,%d), want (0,0)", first.Row, first.Col)
			}
			if !approxEqual(first.X, tt.wantX) || !approxEqual(first.Y, tt.wantY) {
				t.Errorf("anchor = (%v, %v), want (%v, %v)", first.X, first.Y, tt.wantX, tt.wantY)
			}
		})
	}
}
