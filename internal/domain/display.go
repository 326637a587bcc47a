package domain

// DisplaySlot is the derived, read-only join of a slot with its resolved
// category and parent category. It is recomputed on every read and never
// persisted. Category is nil when the slot is unassigned or its
// assignment points at a deleted category; ParentCategory is nil unless
// Category resolves and has a live parent.
type DisplaySlot struct {
	Slot
	Category       *Category `json:"category,omitempty"`
	ParentCategory *Category `json:"parent_category,omitempty"`
}

// Assigned returns true if the slot resolved to a live category.
func (d *DisplaySlot) Assigned() bool {
	return d.Category != nil
}
