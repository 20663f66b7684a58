package timeline

import (
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
)

// MinPhaseWidth keeps very short phases clickable and visible.
const MinPhaseWidth = 4.0

// PhaseBox is one phase placed in pixel space.
type PhaseBox struct {
	Phase domain.Phase `json:"phase"`
	X     float64      `json:"x"`
	Width float64      `json:"width"`
	Row   int          `json:"row"`
}

// Viewport describes the visible window: a horizontal pixel offset, a
// vertical row offset, the window size, and the density the layout was
// computed at.
type Viewport struct {
	OffsetX      float64 `json:"offsetX"`
	OffsetY      int     `json:"offsetY"`
	Width        float64 `json:"width"`
	Rows         int     `json:"rows"`
	PixelsPerDay float64 `json:"pixelsPerDay"`
}

// LayoutPhases places every phase horizontally by its date window and
// vertically by category lane. Lanes follow the canonical category order,
// one lane per category present in the data, so row indices never depend on
// phase counts or insertion order. Phases tagged with a family member are
// split into a derived sub-lane directly after the family lane's position.
func LayoutPhases(phases []domain.Phase, origin time.Time, ppd float64) []PhaseBox {
	ppd = ClampPixelsPerDay(ppd)

	categoryPresent := map[domain.PhaseCategory]bool{}
	familySubLane := false
	for _, p := range phases {
		if p.FamilyMember != "" {
			familySubLane = true
			continue
		}
		categoryPresent[p.Category] = true
	}

	// Canonical order decides the rows once; the sub-lane slots in right
	// after the family lane's canonical position.
	categoryRow := map[domain.PhaseCategory]int{}
	familyRow := -1
	row := 0
	for _, cat := range domain.PhaseCategories {
		if categoryPresent[cat] {
			categoryRow[cat] = row
			row++
		}
		if cat == domain.CategoryFamily && familySubLane {
			familyRow = row
			row++
		}
	}

	boxes := make([]PhaseBox, 0, len(phases))
	for _, p := range phases {
		x := DateToPixel(p.StartDate, origin, ppd)
		width := DateToPixel(p.EndDate, origin, ppd) - x
		if width < MinPhaseWidth {
			width = MinPhaseWidth
		}

		r := categoryRow[p.Category]
		if p.FamilyMember != "" {
			r = familyRow
		}

		boxes = append(boxes, PhaseBox{Phase: p, X: x, Width: width, Row: r})
	}
	return boxes
}

// RowCount returns the number of lanes a layout occupies.
func RowCount(boxes []PhaseBox) int {
	max := -1
	for _, b := range boxes {
		if b.Row > max {
			max = b.Row
		}
	}
	return max + 1
}

// CullPhases filters boxes to those whose pixel span intersects the
// viewport's visible window.
func CullPhases(boxes []PhaseBox, vp Viewport) []PhaseBox {
	visible := make([]PhaseBox, 0, len(boxes))
	for _, b := range boxes {
		if b.X+b.Width < vp.OffsetX || b.X > vp.OffsetX+vp.Width {
			continue
		}
		if vp.Rows > 0 && (b.Row < vp.OffsetY || b.Row >= vp.OffsetY+vp.Rows) {
			continue
		}
		visible = append(visible, b)
	}
	return visible
}
