package domain

// Floor groups slots for multi-floor stores. Floors are read-only from
// the editor's perspective; Order drives tab display.
type Floor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}
