package calendar

import "testing"

func TestPaginate_Basic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 2, 2)
	if len(page.Items) != 2 || page.Items[0] != 3 {
		t.Fatalf("page items = %v, want [3 4]", page.Items)
	}
	if !page.HasPrev || !page.HasNext {
		t.Fatalf("HasPrev=%v HasNext=%v, want true/true", page.HasPrev, page.HasNext)
	}
	if page.Total != 5 {
		t.Fatalf("total = %d, want 5", page.Total)
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 10, 2)
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %v", page.Items)
	}
	if page.HasNext {
		t.Fatalf("HasNext must be false past the end")
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 25)

	page := Paginate(items, 0, 0)
	if page.Page != 1 || page.PageSize != 10 {
		t.Fatalf("defaults: page=%d size=%d, want 1/10", page.Page, page.PageSize)
	}
	if len(page.Items) != 10 {
		t.Fatalf("items = %d, want 10", len(page.Items))
	}
}

func TestLimitOffset(t *testing.T) {
	limit, offset := LimitOffset(3, 20, 10)
	if limit != 20 || offset != 40 {
		t.Fatalf("limit=%d offset=%d, want 20/40", limit, offset)
	}

	limit, offset = LimitOffset(0, 0, 10)
	if limit != 10 || offset != 0 {
		t.Fatalf("defaults: limit=%d offset=%d, want 10/0", limit, offset)
	}
}
