package domain

import "github.com/tanamapapp/tanamap-server/internal/grid"

// SlotType distinguishes assignable shelving from decorative fixtures.
type SlotType string

const (
	// SlotTypeSlot is a shelf location that can carry a category assignment.
	SlotTypeSlot SlotType = "slot"
	// SlotTypeFixture is a structural element (pillar, register counter)
	// drawn on the map but never assigned a category.
	SlotTypeFixture SlotType = "fixture"
)

// Size is a slot's footprint on the floor map, in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Slot is a named, positioned display location on the floor map.
// Position is mutated only by grid-snapped moves, Size only by explicit
// resizes; the two never affect each other. A slot's lifecycle is
// Created -> (Moved|Resized)* -> Deleted, with deletion terminal.
type Slot struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position grid.Point `json:"position"`
	Size     Size       `json:"size"`
	FloorID  string     `json:"floor_id,omitempty"` // Empty in single-floor stores
	Type     SlotType   `json:"type,omitempty"`     // Defaults to SlotTypeSlot
}

// IsFixture returns true if this slot is a decorative fixture that
// cannot carry a category assignment.
func (s *Slot) IsFixture() bool {
	return s.Type == SlotTypeFixture
}

// OnFloor reports whether the slot belongs to the given floor. An empty
// floorID matches every slot, so single-floor stores never filter.
func (s *Slot) OnFloor(floorID string) bool {
	return floorID == "" || s.FloorID == floorID
}
