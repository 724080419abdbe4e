package flipbook

import "time"

// DefaultAnimationDuration is how long the host should keep a page turn
// animating before calling FinishTurn.
const DefaultAnimationDuration = 600 * time.Millisecond

// FlipController tracks which sheets of a book are turned and serializes
// page-turn animations. Page index i means the first i sheets are turned, so
// it ranges over [0, sheetCount]. The animation lock is a debounce against
// overlapping visual transitions, not a concurrency primitive: the
// controller is single-goroutine like the rest of the view state.
//
// The host drives timing: after a transition starts it waits the animation
// duration and calls FinishTurn, which releases the lock and continues any
// in-flight GoTo walk one step at a time.
type FlipController struct {
	sheetCount int
	pageIndex  int
	animating  bool
	locked     bool

	// target of a multi-step GoTo walk; equal to pageIndex when idle.
	target int

	// sheet whose z-order is boosted during the current turn.
	animatingSheet int
}

// NewFlipController creates a controller for a book of sheetCount sheets,
// starting with no sheets turned.
// PRE: sheetCount >= 0
func NewFlipController(sheetCount int) *FlipController {
	return &FlipController{sheetCount: sheetCount}
}

// PageIndex returns the number of turned sheets.
func (f *FlipController) PageIndex() int { return f.pageIndex }

// SheetCount returns the size of the book.
func (f *FlipController) SheetCount() int { return f.sheetCount }

// IsAnimating reports whether a page turn is in flight.
func (f *FlipController) IsAnimating() bool { return f.animating }

// SetLocked enables or disables the book. While locked every transition is
// ignored, mirroring the feature-flag guard on the public site.
func (f *FlipController) SetLocked(locked bool) { f.locked = locked }

// Locked reports whether the book is locked.
func (f *FlipController) Locked() bool { return f.locked }

// Turned reports whether the sheet at index i (0-based) is showing its back.
// INVARIANT: pure function of the current page index
func (f *FlipController) Turned(i int) bool { return i < f.pageIndex }

// AnimatingSheet returns the sheet index being turned and whether a turn is
// in flight. The host boosts this sheet's z-order for the duration.
func (f *FlipController) AnimatingSheet() (int, bool) {
	return f.animatingSheet, f.animating
}

// Next turns one more sheet. No-op while animating, locked, or already at
// the back cover. Returns true if a turn started.
func (f *FlipController) Next() bool {
	if f.animating || f.locked || f.pageIndex >= f.sheetCount {
		return false
	}
	f.startTurn(f.pageIndex + 1)
	f.target = f.pageIndex
	return true
}

// Prev un-turns the last turned sheet. No-op while animating, locked, or at
// the front cover. Returns true if a turn started.
func (f *FlipController) Prev() bool {
	if f.animating || f.locked || f.pageIndex <= 0 {
		return false
	}
	f.startTurn(f.pageIndex - 1)
	f.target = f.pageIndex
	return true
}

// GoTo walks toward target one sheet at a time, each step gated by the
// animation lock; FinishTurn advances the walk. Out-of-range targets are
// clamped, never rejected. Returns true if a walk started.
func (f *FlipController) GoTo(target int) bool {
	if f.animating || f.locked {
		return false
	}
	target = f.clamp(target)
	if target == f.pageIndex {
		return false
	}
	f.target = target
	f.step()
	return true
}

// FinishTurn releases the animation lock. The host calls this once the
// animation duration has elapsed. If a GoTo walk has further to go, the next
// step starts immediately and the lock is re-taken.
// POST: either idle, or animating the next step of an unfinished walk
func (f *FlipController) FinishTurn() {
	if !f.animating {
		return
	}
	f.animating = false
	if f.pageIndex != f.target {
		f.step()
	}
}

func (f *FlipController) step() {
	if f.pageIndex < f.target {
		f.startTurn(f.pageIndex + 1)
	} else if f.pageIndex > f.target {
		f.startTurn(f.pageIndex - 1)
	}
}

// startTurn moves to newIndex and takes the animation lock. The boosted
// sheet is the lower of the two indices: turning forward animates the old
// current sheet, turning back animates the sheet being restored.
func (f *FlipController) startTurn(newIndex int) {
	old := f.pageIndex
	f.pageIndex = newIndex
	f.animating = true
	if newIndex > old {
		f.animatingSheet = old
	} else {
		f.animatingSheet = newIndex
	}
}

func (f *FlipController) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > f.sheetCount {
		return f.sheetCount
	}
	return i
}
