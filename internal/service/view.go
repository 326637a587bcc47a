package service

import (
	"context"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/view"
)

// ViewService is the single read path the UI consumes: it composes the
// denormalized display slots from the session mirror on every call and
// applies the presentation search filter. Search term and floor come in
// as arguments; the service holds no view state of its own.
type ViewService struct {
	state *session.State
}

// NewViewService creates a new view service.
func NewViewService(state *session.State) *ViewService {
	return &ViewService{state: state}
}

// DisplaySlots returns the composed display slots for a floor, filtered
// by the search term. Empty floorID means all floors; empty term matches
// everything.
func (s *ViewService) DisplaySlots(_ context.Context, floorID, term string) []domain.DisplaySlot {
	slots := s.state.Slots()
	if floorID != "" {
		filtered := slots[:0]
		for _, slot := range slots {
			if slot.OnFloor(floorID) {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	composed := view.Compose(slots, s.state.Assignments(), s.state.Categories())
	return view.Filter(composed, term)
}
