package flipbook_test

import (
	"fmt"
	"testing"

	"feldiserhof/internal/domain/flipbook"
	"feldiserhof/internal/domain/menu"
)

func makeCategories(catCount, itemsPerCat int) []menu.Category {
	cats := make([]menu.Category, catCount)
	for c := range cats {
		cats[c].Name = fmt.Sprintf("Kategorie %d", c+1)
		for i := 0; i < itemsPerCat; i++ {
			cats[c].Items = append(cats[c].Items, menu.Item{
				ID:   fmt.Sprintf("c%d-i%d", c, i),
				Name: fmt.Sprintf("Gericht %d.%d", c+1, i+1),
			})
		}
	}
	return cats
}

// flattenSheets collects all placed item IDs in book order.
func flattenSheets(sheets []flipbook.Sheet) []string {
	var ids []string
	for _, s := range sheets {
		for _, it := range s.Front.Items {
			ids = append(ids, it.ID)
		}
		if s.Back != nil {
			for _, it := range s.Back.Items {
				ids = append(ids, it.ID)
			}
		}
	}
	return ids
}

// TestPaginate_CompletenessAndOrder verifies the round-trip property: every
// input item appears exactly once, in the original (category, item) order.
func TestPaginate_CompletenessAndOrder(t *testing.T) {
	cats := makeCategories(5, 7)
	var want []string
	for _, c := range cats {
		for _, it := range c.Items {
			want = append(want, it.ID)
		}
	}

	for _, perSide := range []int{1, 2, 3, 4} {
		for _, allowBack := range []bool{true, false} {
			name := fmt.Sprintf("perSide=%d back=%v", perSide, allowBack)
			t.Run(name, func(t *testing.T) {
				sheets := flipbook.Paginate(cats, flipbook.FixedCapacity(perSide), allowBack)
				got := flattenSheets(sheets)
				if len(got) != len(want) {
					t.Fatalf("placed %d items, want %d", len(got), len(want))
				}
				for i := range got {
					if got[i] != want[i] {
						t.Fatalf("item %d = %s, want %s", i, got[i], want[i])
					}
				}
			})
		}
	}
}

// TestPaginate_CapacityRespected verifies no side exceeds the fixed limit.
func TestPaginate_CapacityRespected(t *testing.T) {
	sheets := flipbook.Paginate(makeCategories(4, 10), flipbook.FixedCapacity(3), true)
	for _, s := range sheets {
		if len(s.Front.Items) > 3 {
			t.Errorf("sheet %d front holds %d items, limit 3", s.Index, len(s.Front.Items))
		}
		if s.Back != nil && len(s.Back.Items) > 3 {
			t.Errorf("sheet %d back holds %d items, limit 3", s.Index, len(s.Back.Items))
		}
	}
}

// TestPaginate_SevenCategoriesOfFive pins the sheet arithmetic for the
// 7×5-item menu on the desktop breakpoint.
func TestPaginate_SevenCategoriesOfFive(t *testing.T) {
	cats := makeCategories(7, 5)
	sheets := flipbook.Paginate(cats, flipbook.FixedCapacity(4), true)

	// Each category fills one sheet: 4 items front, 1 item back.
	if len(sheets) != 7 {
		t.Fatalf("sheet count = %d, want 7", len(sheets))
	}
	for i, s := range sheets {
		catName := cats[i].Name
		if s.Front.Title != catName {
			t.Errorf("sheet %d front title = %q, want %q", i, s.Front.Title, catName)
		}
		if len(s.Front.Items) != 4 {
			t.Errorf("sheet %d front holds %d items, want 4", i, len(s.Front.Items))
		}
		if s.Back == nil {
			t.Fatalf("sheet %d back missing", i)
		}
		if want := fmt.Sprintf("%s (2)", catName); s.Back.Title != want {
			t.Errorf("sheet %d back title = %q, want %q", i, s.Back.Title, want)
		}
		if len(s.Back.Items) != 1 {
			t.Errorf("sheet %d back holds %d items, want 1", i, len(s.Back.Items))
		}
		if s.Front.PageNumber != 2*i+1 || s.Back.PageNumber != 2*i+2 {
			t.Errorf("sheet %d page numbers = %d/%d, want %d/%d",
				i, s.Front.PageNumber, s.Back.PageNumber, 2*i+1, 2*i+2)
		}
		if s.Index != i+1 {
			t.Errorf("sheet index = %d, want %d", s.Index, i+1)
		}
	}
}

// TestPaginate_NoCrossCategoryMerging verifies a new category always starts
// a fresh sheet even when the previous side had room left.
func TestPaginate_NoCrossCategoryMerging(t *testing.T) {
	cats := []menu.Category{
		{Name: "Suppen", Items: []menu.Item{{ID: "a", Name: "Suppe"}}},
		{Name: "Desserts", Items: []menu.Item{{ID: "b", Name: "Glace"}}},
	}
	sheets := flipbook.Paginate(cats, flipbook.FixedCapacity(4), true)
	if len(sheets) != 2 {
		t.Fatalf("sheet count = %d, want 2", len(sheets))
	}
	if sheets[0].Back != nil {
		t.Error("first category's sheet should not carry a back side into the next category")
	}
	if sheets[1].Front.Title != "Desserts" {
		t.Errorf("second sheet title = %q, want %q", sheets[1].Front.Title, "Desserts")
	}
}

// TestPaginate_EmptyInputs verifies empty categories and empty menus
// produce no sheets.
func TestPaginate_EmptyInputs(t *testing.T) {
	if sheets := flipbook.Paginate(nil, flipbook.FixedCapacity(4), true); len(sheets) != 0 {
		t.Errorf("nil categories produced %d sheets", len(sheets))
	}

	cats := []menu.Category{
		{Name: "Leer"},
		{Name: "Voll", Items: []menu.Item{{ID: "a", Name: "Capuns"}}},
	}
	sheets := flipbook.Paginate(cats, flipbook.FixedCapacity(4), true)
	if len(sheets) != 1 {
		t.Fatalf("sheet count = %d, want 1 (empty category skipped)", len(sheets))
	}
	if sheets[0].Front.Title != "Voll" {
		t.Errorf("sheet title = %q, want %q", sheets[0].Front.Title, "Voll")
	}
}

// TestPaginate_RejectingCapacityStillTerminates verifies the guaranteed
// first item per side: a predicate that refuses everything cannot wedge the
// layout into an infinite loop or drop items.
func TestPaginate_RejectingCapacityStillTerminates(t *testing.T) {
	rejectAll := func(placed []menu.Item, candidate menu.Item) bool { return false }
	cats := makeCategories(2, 3)
	sheets := flipbook.Paginate(cats, rejectAll, true)

	got := flattenSheets(sheets)
	if len(got) != 6 {
		t.Fatalf("placed %d items, want all 6", len(got))
	}
	for _, s := range sheets {
		if len(s.Front.Items) != 1 {
			t.Errorf("sheet %d front holds %d items, want exactly 1", s.Index, len(s.Front.Items))
		}
	}
}

// TestPaginate_NoBackSide verifies the single-sided (mobile) layout leaves
// every back side empty.
func TestPaginate_NoBackSide(t *testing.T) {
	sheets := flipbook.Paginate(makeCategories(1, 5), flipbook.FixedCapacity(2), false)
	if len(sheets) != 3 {
		t.Fatalf("sheet count = %d, want 3", len(sheets))
	}
	for _, s := range sheets {
		if s.Back != nil {
			t.Errorf("sheet %d has a back side in single-sided mode", s.Index)
		}
	}
	// In-category numbering advances by one per sheet without back sides.
	if sheets[1].Front.Title != "Kategorie 1 (2)" || sheets[2].Front.Title != "Kategorie 1 (3)" {
		t.Errorf("single-sided titles = %q, %q", sheets[1].Front.Title, sheets[2].Front.Title)
	}
}

// TestItemsPerSideForWidth tests the breakpoint mapping.
func TestItemsPerSideForWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{1920, 4},
		{1200, 4},
		{1199, 3},
		{768, 3},
		{767, 2},
		{360, 2},
	}
	for _, tt := range tests {
		if got := flipbook.ItemsPerSideForWidth(tt.width); got != tt.want {
			t.Errorf("ItemsPerSideForWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
