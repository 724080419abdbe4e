// Package flipbook lays the menu out as a two-sided page book and tracks
// the page-turn state. The layout is host-agnostic: page capacity comes in
// as a predicate so both the fixed per-breakpoint limit and a real
// measurement surface can drive it.
package flipbook

import (
	"fmt"

	"feldiserhof/internal/domain/menu"
)

// Breakpoint capacities: items per page side by viewport width.
const (
	DesktopMinWidth = 1200
	TabletMinWidth  = 768

	DesktopItemsPerSide = 4
	TabletItemsPerSide  = 3
	MobileItemsPerSide  = 2
)

// CapacityFunc decides whether candidate still fits on a side that already
// holds placed. The first item of a side is always placed unconditionally;
// the predicate is consulted from the second item onward, so a single
// oversized item can never wedge the layout.
type CapacityFunc func(placed []menu.Item, candidate menu.Item) bool

// FixedCapacity returns a CapacityFunc admitting at most n items per side.
// PRE: n >= 1
func FixedCapacity(n int) CapacityFunc {
	return func(placed []menu.Item, _ menu.Item) bool {
		return len(placed) < n
	}
}

// ItemsPerSideForWidth maps a viewport width in pixels to the fixed item
// limit used on that breakpoint.
func ItemsPerSideForWidth(width int) int {
	switch {
	case width >= DesktopMinWidth:
		return DesktopItemsPerSide
	case width >= TabletMinWidth:
		return TabletItemsPerSide
	default:
		return MobileItemsPerSide
	}
}

// Side is one face of a sheet.
type Side struct {
	Title      string
	Items      []menu.Item
	PageNumber int // global page number across the whole book
}

// Sheet is a two-sided page unit. Back is nil when the layout does not use
// back sides (narrow viewports) or the category ended on the front.
type Sheet struct {
	Index int // 1-based position in the book
	Front Side
	Back  *Side
}

// Paginate partitions the categories' items into sheets. Items stay in
// (category, item) order; a category never shares a side with another
// category, and empty categories produce no sheets. Side titles repeat the
// category name with the in-category page number from the second page on.
// POST: every input item appears on exactly one side
func Paginate(categories []menu.Category, capacity CapacityFunc, allowBackSide bool) []Sheet {
	var sheets []Sheet
	globalPageNo := 1

	for _, cat := range categories {
		items := cat.Items
		if len(items) == 0 {
			continue
		}

		pageNoInCat := 1
		idx := 0
		for idx < len(items) {
			var sheet Sheet

			var frontItems []menu.Item
			frontItems, idx = fillSide(items, idx, capacity)
			sheet.Front = Side{
				Title:      sideTitle(cat.Name, pageNoInCat),
				Items:      frontItems,
				PageNumber: globalPageNo,
			}

			if allowBackSide && idx < len(items) {
				var backItems []menu.Item
				backItems, idx = fillSide(items, idx, capacity)
				sheet.Back = &Side{
					Title:      sideTitle(cat.Name, pageNoInCat+1),
					Items:      backItems,
					PageNumber: globalPageNo + 1,
				}
				pageNoInCat += 2
				globalPageNo += 2
			} else {
				pageNoInCat++
				globalPageNo++
			}

			sheets = append(sheets, sheet)
		}
	}

	for i := range sheets {
		sheets[i].Index = i + 1
	}
	return sheets
}

// fillSide consumes items starting at start until the capacity predicate
// refuses the next one. At least one item is always taken.
func fillSide(items []menu.Item, start int, capacity CapacityFunc) ([]menu.Item, int) {
	var placed []menu.Item
	i := start
	for i < len(items) {
		if len(placed) > 0 && !capacity(placed, items[i]) {
			break
		}
		placed = append(placed, items[i])
		i++
	}
	return placed, i
}

func sideTitle(name string, pageNoInCat int) string {
	if pageNoInCat == 1 {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, pageNoInCat)
}
