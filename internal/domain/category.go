package domain

// Category represents a merchandising classification for display slots.
// Categories form a two-level hierarchy: a parent (department) such as
// 文庫 and its children (genres) such as 純文学. A category with an empty
// ParentID is a department; one with a ParentID is a genre.
type Category struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`                    // Display color, assigned at creation, immutable after
	ParentID       string `json:"parent_id,omitempty"`      // Empty for departments
	DepartmentCode string `json:"department_code,omitempty"` // Only meaningful on departments
	GenreCode      string `json:"genre_code,omitempty"`      // Only meaningful on genres
}

// IsParent returns true if this category is a department (no parent).
func (c *Category) IsParent() bool {
	return c.ParentID == ""
}

// Code returns whichever classification code applies to this category's
// level: the genre code for children, the department code for parents.
func (c *Category) Code() string {
	if c.IsParent() {
		return c.DepartmentCode
	}
	return c.GenreCode
}
