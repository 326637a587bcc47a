package service

import (
	"context"
	"log/slog"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	domainerrors "github.com/tanamapapp/tanamap-server/internal/errors"
	"github.com/tanamapapp/tanamap-server/internal/grid"
	"github.com/tanamapapp/tanamap-server/internal/id"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
	"github.com/tanamapapp/tanamap-server/internal/validation"
)

// LayoutService owns the slot collection: creation, grid-snapped moves,
// resizes, and the delete saga that also clears the slot's assignment.
type LayoutService struct {
	store      *store.Store
	state      *session.State
	logger     *slog.Logger
	validator  *validation.Validator
	gridSize   float64
	defaultPos grid.Point
}

// NewLayoutService creates a new layout service. gridSize is the snap
// pitch; defaultPos is where new slots land before the first drag.
func NewLayoutService(store *store.Store, state *session.State, logger *slog.Logger, gridSize float64, defaultPos grid.Point) *LayoutService {
	if gridSize <= 0 {
		gridSize = grid.DefaultSize
	}
	return &LayoutService{
		store:      store,
		state:      state,
		logger:     logger,
		validator:  validation.New(),
		gridSize:   gridSize,
		defaultPos: defaultPos,
	}
}

// CreateSlotRequest contains fields for creating a slot. Size must be
// positive on both axes; templates that lock one dimension are resolved
// by the caller before this request is built.
type CreateSlotRequest struct {
	Name    string      `json:"name" validate:"required,min=1,max=100"`
	Size    domain.Size `json:"size"`
	FloorID string      `json:"floor_id"`
	Type    domain.SlotType `json:"type" validate:"omitempty,oneof=slot fixture"`
}

// CreateSlot creates a slot at the default position.
func (s *LayoutService) CreateSlot(ctx context.Context, req CreateSlotRequest) (*domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if !req.Size.Valid() {
		return nil, domainerrors.Validation("slot size must be positive on both axes")
	}

	slotType := req.Type
	if slotType == "" {
		slotType = domain.SlotTypeSlot
	}

	slotID, err := id.Generate("slot")
	if err != nil {
		return nil, err
	}

	slot := &domain.Slot{
		ID:       slotID,
		Name:     req.Name,
		Position: s.defaultPos,
		Size:     req.Size,
		FloorID:  req.FloorID,
		Type:     slotType,
	}

	if err := s.store.Slots.Create(ctx, slotID, slot); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeStorage, "create slot")
	}
	s.state.UpsertSlot(*slot)

	s.logger.Info("slot created",
		"slot_id", slotID,
		"name", req.Name,
		"floor_id", req.FloorID,
		"type", slotType,
	)

	return slot, nil
}

// MoveSlot applies a drag delta to a slot and snaps the result to the
// grid. The drag is a single discrete event: start position plus final
// delta, nothing in between is persisted.
func (s *LayoutService) MoveSlot(ctx context.Context, slotID string, delta grid.Point) (*domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slot := s.state.Slot(slotID)
	if slot == nil {
		return nil, domainerrors.NotFoundf("slot %s not found", slotID)
	}

	updated := *slot
	updated.Position = grid.SnapPosition(slot.Position, delta, s.gridSize)

	if err := s.store.Slots.Update(ctx, slotID, &updated); err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFoundf("slot %s not found", slotID)
		}
		return nil, domainerrors.Wrap(err, domainerrors.CodeStorage, "move slot")
	}
	s.state.UpsertSlot(updated)

	s.logger.Info("slot moved",
		"slot_id", slotID,
		"x", updated.Position.X,
		"y", updated.Position.Y,
	)

	return &updated, nil
}

// ResizeSlot replaces a slot's size. Position is untouched: a resize
// never moves the slot.
func (s *LayoutService) ResizeSlot(ctx context.Context, slotID string, size domain.Size) (*domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !size.Valid() {
		return nil, domainerrors.Validation("slot size must be positive on both axes")
	}

	slot := s.state.Slot(slotID)
	if slot == nil {
		return nil, domainerrors.NotFoundf("slot %s not found", slotID)
	}

	updated := *slot
	updated.Size = size

	if err := s.store.Slots.Update(ctx, slotID, &updated); err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFoundf("slot %s not found", slotID)
		}
		return nil, domainerrors.Wrap(err, domainerrors.CodeStorage, "resize slot")
	}
	s.state.UpsertSlot(updated)

	s.logger.Info("slot resized",
		"slot_id", slotID,
		"width", size.Width,
		"height", size.Height,
	)

	return &updated, nil
}

// DeleteSlot removes a slot and its assignment as one logical operation.
// Both store steps are idempotent, so a retry after a partial failure is
// safe: clearing an already-cleared assignment and deleting an
// already-deleted slot are both no-ops. The mirror is only updated after
// both steps succeed; on partial failure the deletion is reported as
// incomplete rather than pretended complete.
func (s *LayoutService) DeleteSlot(ctx context.Context, slotID string, confirmed bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !confirmed {
		return domainerrors.Validation("slot deletion requires confirmation")
	}

	if s.state.Slot(slotID) == nil {
		return domainerrors.NotFoundf("slot %s not found", slotID)
	}

	if err := s.store.Assignments.Delete(ctx, slotID); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeStorage, "clear slot assignment")
	}
	if err := s.store.Slots.Delete(ctx, slotID); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeStorage, "delete slot")
	}
	s.state.RemoveSlot(slotID)

	s.logger.Info("slot deleted", "slot_id", slotID)
	return nil
}

// ListSlots returns the slots on a floor, in layout order. An empty
// floorID returns every slot, which is the single-floor behavior.
func (s *LayoutService) ListSlots(_ context.Context, floorID string) []domain.Slot {
	var out []domain.Slot
	for _, slot := range s.state.Slots() {
		if slot.OnFloor(floorID) {
			out = append(out, slot)
		}
	}
	return out
}

// ListFloors returns the floors in tab display order.
func (s *LayoutService) ListFloors(_ context.Context) []domain.Floor {
	return s.state.Floors()
}
