// Package session holds the in-memory mirror of the persisted
// collections that the editor renders from. Every mutation writes the
// authoritative store first and only touches this mirror after the
// write succeeds, so a failed write can never show up as success state.
package session

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// State is the in-memory mirror of the four document collections.
// Slots keep their load/insertion order; categories stay sorted by name
// so parent listings match the store UI's collated ordering; floors stay
// sorted by display order.
type State struct {
	mu          sync.RWMutex
	slots       []domain.Slot
	categories  []domain.Category
	assignments map[string]string // slot id -> category id
	floors      []domain.Floor
	collator    *collate.Collator
}

// New creates an empty session state.
func New() *State {
	return &State{
		assignments: make(map[string]string),
		// Names in this domain are Japanese; collate accordingly so
		// ordering matches what the storefront staff expect.
		collator: collate.New(language.Japanese),
	}
}

// Hydrate loads all four collections from the store concurrently and
// replaces the mirror with the result. The reads are independent, but
// the view must never render from a partial load: if any one fails the
// whole hydration fails and the previous state is kept.
func (st *State) Hydrate(ctx context.Context, s *store.Store) error {
	var (
		slots       []domain.Slot
		categories  []domain.Category
		assignments []domain.Assignment
		floors      []domain.Floor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		slots, err = s.Slots.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.Categories.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = s.Assignments.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		floors, err = s.Floors.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	bySlot := make(map[string]string, len(assignments))
	for _, a := range assignments {
		bySlot[a.SlotID] = a.CategoryID
	}
	sort.SliceStable(floors, func(i, j int) bool {
		return floors[i].Order < floors[j].Order
	})

	st.mu.Lock()
	defer st.mu.Unlock()
	st.slots = slots
	st.categories = categories
	st.assignments = bySlot
	st.floors = floors
	st.sortCategoriesLocked()
	return nil
}

// sortCategoriesLocked keeps categories name-ordered under the Japanese
// collator. Callers must hold the write lock.
func (st *State) sortCategoriesLocked() {
	sort.SliceStable(st.categories, func(i, j int) bool {
		return st.collator.CompareString(st.categories[i].Name, st.categories[j].Name) < 0
	})
}

// Slots returns a copy of the slot list in layout order.
func (st *State) Slots() []domain.Slot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]domain.Slot, len(st.slots))
	copy(out, st.slots)
	return out
}

// Slot returns the slot with the given id, or nil.
func (st *State) Slot(id string) *domain.Slot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for i := range st.slots {
		if st.slots[i].ID == id {
			s := st.slots[i]
			return &s
		}
	}
	return nil
}

// Categories returns a copy of the category list, name-ordered.
func (st *State) Categories() []domain.Category {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]domain.Category, len(st.categories))
	copy(out, st.categories)
	return out
}

// Category returns the category with the given id, or nil.
func (st *State) Category(id string) *domain.Category {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for i := range st.categories {
		if st.categories[i].ID == id {
			c := st.categories[i]
			return &c
		}
	}
	return nil
}

// Assignments returns the assignment records as a slice.
func (st *State) Assignments() []domain.Assignment {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]domain.Assignment, 0, len(st.assignments))
	for slotID, catID := range st.assignments {
		out = append(out, domain.Assignment{SlotID: slotID, CategoryID: catID})
	}
	return out
}

// AssignmentFor returns the category id assigned to a slot, or "" when
// the slot is unassigned.
func (st *State) AssignmentFor(slotID string) string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.assignments[slotID]
}

// Floors returns a copy of the floor list in display order.
func (st *State) Floors() []domain.Floor {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]domain.Floor, len(st.floors))
	copy(out, st.floors)
	return out
}

// UpsertSlot adds a slot to the mirror, or replaces it in place when the
// id already exists so layout order is preserved across moves/resizes.
func (st *State) UpsertSlot(slot domain.Slot) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.slots {
		if st.slots[i].ID == slot.ID {
			st.slots[i] = slot
			return
		}
	}
	st.slots = append(st.slots, slot)
}

// RemoveSlot removes a slot and its assignment from the mirror.
func (st *State) RemoveSlot(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.slots {
		if st.slots[i].ID == id {
			st.slots = append(st.slots[:i], st.slots[i+1:]...)
			break
		}
	}
	delete(st.assignments, id)
}

// UpsertCategory adds or replaces a category, keeping name order.
func (st *State) UpsertCategory(cat domain.Category) {
	st.mu.Lock()
	defer st.mu.Unlock()
	replaced := false
	for i := range st.categories {
		if st.categories[i].ID == cat.ID {
			st.categories[i] = cat
			replaced = true
			break
		}
	}
	if !replaced {
		st.categories = append(st.categories, cat)
	}
	st.sortCategoriesLocked()
}

// RemoveCategory removes a category from the mirror. Children and
// assignments referencing it are left alone; they degrade to absent at
// composition time.
func (st *State) RemoveCategory(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.categories {
		if st.categories[i].ID == id {
			st.categories = append(st.categories[:i], st.categories[i+1:]...)
			return
		}
	}
}

// SetAssignment records a slot's category in the mirror.
func (st *State) SetAssignment(slotID, categoryID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.assignments[slotID] = categoryID
}

// ClearAssignment removes a slot's assignment from the mirror.
func (st *State) ClearAssignment(slotID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.assignments, slotID)
}
