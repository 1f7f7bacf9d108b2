package attrs

import "testing"

func sample() Table {
	return New(
		[]string{"CamaPID", "NumStory", "bldg_cat"},
		[][]string{
			{"3402-501-0011", "2", "Residential"},
			{"3402-501-0012", "1"},
			{"3402-501-0013", "3", "Commercial", "extra"},
		},
	)
}

func TestNew_NormalizesRows(t *testing.T) {
	tbl := sample()
	for i, r := range tbl.Rows {
		if len(r) != 3 {
			t.Errorf("row %d has %d cells", i, len(r))
		}
	}
	if tbl.Rows[1][2] != "" {
		t.Errorf("short row not padded: %v", tbl.Rows[1])
	}
}

func TestWithIndex(t *testing.T) {
	tbl := sample().WithIndex()
	if tbl.Columns[0] != "#" || tbl.Rows[2][0] != "3" || tbl.Rows[2][1] != "3402-501-0013" {
		t.Errorf("got %v %v", tbl.Columns, tbl.Rows[2])
	}
}

func TestHighlights(t *testing.T) {
	if got := Highlights(nil); len(got) != 0 {
		t.Errorf("no selection should give no rules, got %v", got)
	}
	got := Highlights([]string{"NumStory", "CamaPID"})
	want := []Rule{{"NumStory", HighlightColor}, {"CamaPID", HighlightColor}}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToggleColumn(t *testing.T) {
	var s Selection
	s = s.ToggleColumn("NumStory").ToggleColumn("bldg_cat")
	if !s.HasColumn("NumStory") || !s.HasColumn("bldg_cat") {
		t.Fatalf("got %v", s.Columns)
	}
	before := s
	s = s.ToggleColumn("NumStory")
	if s.HasColumn("NumStory") || len(s.Columns) != 1 {
		t.Errorf("got %v", s.Columns)
	}
	if len(before.Columns) != 2 {
		t.Errorf("toggle mutated the previous selection: %v", before.Columns)
	}
}

func TestToggleRow(t *testing.T) {
	s := Selection{}.ToggleRow(1).ToggleRow(2).ToggleRow(1)
	if s.HasRow(1) || !s.HasRow(2) {
		t.Errorf("got %v", s.Rows)
	}
}

func TestCell(t *testing.T) {
	tbl := sample()
	sel := Selection{Columns: []string{"NumStory"}, Rows: []int{0}}
	rules := Highlights(sel.Columns)

	tests := []struct {
		row, col int
		want     CellKind
	}{
		{-1, 1, Header},
		{2, 1, SelectedColumn},
		{0, 1, SelectedColumn},
		{0, 0, SelectedRow},
		{2, 0, Plain},
		{2, 9, Plain},
	}
	for _, tt := range tests {
		if got := tbl.Cell(tt.row, tt.col, rules, sel); got != tt.want {
			t.Errorf("Cell(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestPrune(t *testing.T) {
	sel := Selection{Columns: []string{"gone", "NumStory"}, Rows: []int{0, 7}}
	got := sel.Prune(sample())
	if len(got.Columns) != 1 || got.Columns[0] != "NumStory" {
		t.Errorf("columns = %v", got.Columns)
	}
	if len(got.Rows) != 1 || got.Rows[0] != 0 {
		t.Errorf("rows = %v", got.Rows)
	}
}
