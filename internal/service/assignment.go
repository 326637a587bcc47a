package service

import (
	"context"
	"log/slog"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	domainerrors "github.com/tanamapapp/tanamap-server/internal/errors"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// AssignmentService binds categories to slots. The assignment document
// id equals the slot id, so at most one category exists per slot and
// setting the same assignment twice is a replace, never a duplicate.
type AssignmentService struct {
	store  *store.Store
	state  *session.State
	logger *slog.Logger
}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService(store *store.Store, state *session.State, logger *slog.Logger) *AssignmentService {
	return &AssignmentService{
		store:  store,
		state:  state,
		logger: logger,
	}
}

// Get returns the category id assigned to a slot, or "" when the slot
// is unassigned.
func (s *AssignmentService) Get(_ context.Context, slotID string) string {
	return s.state.AssignmentFor(slotID)
}

// Set assigns a category to a slot, or clears the assignment when
// categoryID is empty. The category id is not checked against the live
// hierarchy; a reference that later dangles degrades to "unassigned" at
// composition time.
func (s *AssignmentService) Set(ctx context.Context, slotID, categoryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slot := s.state.Slot(slotID)
	if slot == nil {
		return domainerrors.NotFoundf("slot %s not found", slotID)
	}
	if slot.IsFixture() {
		return domainerrors.Validation("fixtures cannot carry a category assignment")
	}

	if categoryID == "" {
		if err := s.store.Assignments.Delete(ctx, slotID); err != nil {
			return domainerrors.Wrap(err, domainerrors.CodeStorage, "clear assignment")
		}
		s.state.ClearAssignment(slotID)

		s.logger.Info("assignment cleared", "slot_id", slotID)
		return nil
	}

	assignment := &domain.Assignment{SlotID: slotID, CategoryID: categoryID}
	if err := s.store.Assignments.Put(ctx, slotID, assignment); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeStorage, "set assignment")
	}
	s.state.SetAssignment(slotID, categoryID)

	s.logger.Info("assignment set", "slot_id", slotID, "category_id", categoryID)
	return nil
}

// RemoveForSlot clears whatever assignment a slot has. Used by the slot
// delete saga; clearing an already-cleared assignment is a no-op.
func (s *AssignmentService) RemoveForSlot(ctx context.Context, slotID string) error {
	return s.Set(ctx, slotID, "")
}
