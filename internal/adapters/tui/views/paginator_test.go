package views

import "testing"

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	for range 4 {
		p.CursorDown()
	}
	if p.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("range = [%d,%d), want [3,6)", start, end)
	}
	if p.CurrentPage() != 2 || p.TotalPages() != 3 {
		t.Errorf("page %d/%d, want 2/3", p.CurrentPage(), p.TotalPages())
	}

	if !p.NextPage() {
		t.Fatal("expected next page")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("range = [%d,%d), want [6,7)", start, end)
	}
	if p.NextPage() {
		t.Error("expected no page after the last")
	}
	if !p.PrevPage() || p.Cursor() != 3 {
		t.Errorf("cursor after prev page = %d, want 3", p.Cursor())
	}
}

func TestPaginator_SetTotalClampsCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		total  int
		want   int
	}{
		{name: "shrinks below cursor", cursor: 5, total: 3, want: 2},
		{name: "empty list", cursor: 2, total: 0, want: 0},
		{name: "cursor still valid", cursor: 1, total: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(10)
			p.SetTotal(10)
			p.SetCursor(tt.cursor)
			p.SetTotal(tt.total)
			if p.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", p.Cursor(), tt.want)
			}
		})
	}
}

func TestPaginator_SetPageSizeKeepsCursorVisible(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(20)
	p.SetCursor(8)

	p.SetPageSize(4)
	start, end := p.VisibleRange()
	if p.Cursor() < start || p.Cursor() >= end {
		t.Errorf("cursor %d outside [%d,%d)", p.Cursor(), start, end)
	}
}
