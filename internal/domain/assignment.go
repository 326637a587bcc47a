package domain

// Assignment binds exactly one category to one slot. The document id in
// the store equals SlotID, which forces at-most-one category per slot
// and makes repeated writes for the same slot a replace, not a second
// record. CategoryID is not validated at write time; a dangling
// reference degrades to "unassigned" at read time.
type Assignment struct {
	SlotID     string `json:"slot_id"`
	CategoryID string `json:"category_id"`
}
