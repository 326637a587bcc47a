// Package view builds the denormalized display-slot sequence the editor
// UI renders. Composition is a pure function over the three collections
// (slots, assignments, categories) and is recomputed on every read; the
// join is never cached, so it can't go stale against the mirror.
package view

import (
	"strings"

	"github.com/tanamapapp/tanamap-server/internal/domain"
)

// Compose joins slots with their assignments and resolved categories,
// preserving slot order. Resolution degrades gracefully: an assignment
// pointing at a deleted category yields an unassigned display slot, and
// a category whose parent was deleted resolves with no parent. Neither
// case is an error.
func Compose(slots []domain.Slot, assignments []domain.Assignment, categories []domain.Category) []domain.DisplaySlot {
	byCategory := make(map[string]*domain.Category, len(categories))
	for i := range categories {
		byCategory[categories[i].ID] = &categories[i]
	}
	bySlot := make(map[string]string, len(assignments))
	for _, a := range assignments {
		bySlot[a.SlotID] = a.CategoryID
	}

	out := make([]domain.DisplaySlot, 0, len(slots))
	for _, slot := range slots {
		d := domain.DisplaySlot{Slot: slot}

		if catID, ok := bySlot[slot.ID]; ok {
			if cat := byCategory[catID]; cat != nil {
				d.Category = cat
				if cat.ParentID != "" {
					d.ParentCategory = byCategory[cat.ParentID]
				}
			}
		}

		out = append(out, d)
	}
	return out
}

// Filter returns the display slots matching a search term. Matching is a
// case-insensitive substring test against the slot name, the resolved
// category and parent category names, and their department/genre codes.
// An empty term matches everything. Filtering is presentation-only and
// never mutates the input.
func Filter(slots []domain.DisplaySlot, term string) []domain.DisplaySlot {
	if term == "" {
		return slots
	}
	needle := strings.ToLower(term)

	out := make([]domain.DisplaySlot, 0, len(slots))
	for _, d := range slots {
		if matches(&d, needle) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d *domain.DisplaySlot, needle string) bool {
	if strings.Contains(strings.ToLower(d.Name), needle) {
		return true
	}
	for _, cat := range []*domain.Category{d.Category, d.ParentCategory} {
		if cat == nil {
			continue
		}
		if strings.Contains(strings.ToLower(cat.Name), needle) {
			return true
		}
		if code := cat.Code(); code != "" && strings.Contains(strings.ToLower(code), needle) {
			return true
		}
	}
	return false
}
