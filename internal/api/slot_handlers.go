package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/errors"
	"github.com/tanamapapp/tanamap-server/internal/grid"
	"github.com/tanamapapp/tanamap-server/internal/service"
)

// Slot templates preset the shape of new slots. Vertical and horizontal
// shelves lock one dimension to the standard shelf depth.
const (
	templateCustom     = "custom"
	templateVertical   = "vertical"
	templateHorizontal = "horizontal"

	shelfDepth    = 40.0
	shelfRunWidth = 160.0
)

func (s *Server) registerSlotRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSlots",
		Method:      http.MethodGet,
		Path:        "/api/v1/slots",
		Summary:     "List slots",
		Description: "Returns slots in layout order, optionally filtered by floor",
		Tags:        []string{"Slots"},
	}, s.handleListSlots)

	huma.Register(s.api, huma.Operation{
		OperationID: "createSlot",
		Method:      http.MethodPost,
		Path:        "/api/v1/slots",
		Summary:     "Create slot",
		Description: "Creates a slot at the default position",
		Tags:        []string{"Slots"},
	}, s.handleCreateSlot)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteSlot",
		Method:      http.MethodDelete,
		Path:        "/api/v1/slots/{id}",
		Summary:     "Delete slot",
		Description: "Deletes a slot and its assignment; requires confirm=true",
		Tags:        []string{"Slots"},
	}, s.handleDeleteSlot)

	huma.Register(s.api, huma.Operation{
		OperationID: "moveSlot",
		Method:      http.MethodPost,
		Path:        "/api/v1/slots/{id}/move",
		Summary:     "Move slot",
		Description: "Moves a slot by a delta; the result snaps to the grid",
		Tags:        []string{"Slots"},
	}, s.handleMoveSlot)

	huma.Register(s.api, huma.Operation{
		OperationID: "resizeSlot",
		Method:      http.MethodPost,
		Path:        "/api/v1/slots/{id}/resize",
		Summary:     "Resize slot",
		Description: "Changes a slot's dimensions without moving it",
		Tags:        []string{"Slots"},
	}, s.handleResizeSlot)

	huma.Register(s.api, huma.Operation{
		OperationID: "setAssignment",
		Method:      http.MethodPut,
		Path:        "/api/v1/slots/{id}/assignment",
		Summary:     "Set assignment",
		Description: "Assigns a category to a slot; an empty category clears it",
		Tags:        []string{"Slots"},
	}, s.handleSetAssignment)
}

// === DTOs ===

// SlotResponse contains slot data in API responses.
type SlotResponse struct {
	ID      string  `json:"id" doc:"Slot ID"`
	Name    string  `json:"name" doc:"Slot name"`
	X       float64 `json:"x" doc:"Horizontal position in canvas units"`
	Y       float64 `json:"y" doc:"Vertical position in canvas units"`
	Width   float64 `json:"width" doc:"Width in canvas units"`
	Height  float64 `json:"height" doc:"Height in canvas units"`
	FloorID string  `json:"floor_id,omitempty" doc:"Floor this slot belongs to"`
	Type    string  `json:"type" doc:"Slot type: slot or fixture"`
}

// ListSlotsInput contains parameters for listing slots.
type ListSlotsInput struct {
	FloorID string `query:"floor_id" doc:"Restrict to one floor; empty returns all"`
}

// ListSlotsResponse contains a list of slots.
type ListSlotsResponse struct {
	Slots []SlotResponse `json:"slots" doc:"Slots in layout order"`
}

// ListSlotsOutput wraps the list slots response for Huma.
type ListSlotsOutput struct {
	Body ListSlotsResponse
}

// CreateSlotRequest is the request body for creating a slot.
type CreateSlotRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100" doc:"Slot name"`
	Template string  `json:"template,omitempty" validate:"omitempty,oneof=custom vertical horizontal" doc:"Shape preset: custom, vertical, or horizontal"`
	Width    float64 `json:"width,omitempty" doc:"Width in canvas units; ignored for vertical shelves"`
	Height   float64 `json:"height,omitempty" doc:"Height in canvas units; ignored for horizontal shelves"`
	FloorID  string  `json:"floor_id,omitempty" doc:"Floor this slot belongs to"`
	Type     string  `json:"type,omitempty" validate:"omitempty,oneof=slot fixture" doc:"Slot type: slot or fixture"`
}

// CreateSlotInput wraps the create slot request for Huma.
type CreateSlotInput struct {
	Body CreateSlotRequest
}

// SlotOutput wraps the slot response for Huma.
type SlotOutput struct {
	Body SlotResponse
}

// DeleteSlotInput contains parameters for deleting a slot.
type DeleteSlotInput struct {
	ID      string `path:"id" doc:"Slot ID"`
	Confirm bool   `query:"confirm" doc:"Must be true to delete"`
}

// MoveSlotRequest is the request body for moving a slot.
type MoveSlotRequest struct {
	DX float64 `json:"dx" doc:"Horizontal delta in canvas units"`
	DY float64 `json:"dy" doc:"Vertical delta in canvas units"`
}

// MoveSlotInput wraps the move slot request for Huma.
type MoveSlotInput struct {
	ID   string `path:"id" doc:"Slot ID"`
	Body MoveSlotRequest
}

// ResizeSlotRequest is the request body for resizing a slot.
type ResizeSlotRequest struct {
	Width  float64 `json:"width" validate:"required,gt=0" doc:"New width in canvas units"`
	Height float64 `json:"height" validate:"required,gt=0" doc:"New height in canvas units"`
}

// ResizeSlotInput wraps the resize slot request for Huma.
type ResizeSlotInput struct {
	ID   string `path:"id" doc:"Slot ID"`
	Body ResizeSlotRequest
}

// SetAssignmentRequest is the request body for assigning a category.
type SetAssignmentRequest struct {
	CategoryID string `json:"category_id" doc:"Category to assign; empty clears the assignment"`
}

// SetAssignmentInput wraps the assignment request for Huma.
type SetAssignmentInput struct {
	ID   string `path:"id" doc:"Slot ID"`
	Body SetAssignmentRequest
}

// AssignmentResponse contains the resulting assignment state.
type AssignmentResponse struct {
	SlotID     string `json:"slot_id" doc:"Slot ID"`
	CategoryID string `json:"category_id,omitempty" doc:"Assigned category; empty means unassigned"`
}

// AssignmentOutput wraps the assignment response for Huma.
type AssignmentOutput struct {
	Body AssignmentResponse
}

// === Handlers ===

func (s *Server) handleListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	slots := s.services.Layout.ListSlots(ctx, input.FloorID)

	resp := make([]SlotResponse, len(slots))
	for i, sl := range slots {
		resp[i] = toSlotResponse(sl)
	}

	return &ListSlotsOutput{Body: ListSlotsResponse{Slots: resp}}, nil
}

func (s *Server) handleCreateSlot(ctx context.Context, input *CreateSlotInput) (*SlotOutput, error) {
	size, err := templateSize(input.Body)
	if err != nil {
		return nil, err
	}

	sl, err := s.services.Layout.CreateSlot(ctx, service.CreateSlotRequest{
		Name:    input.Body.Name,
		Size:    size,
		FloorID: input.Body.FloorID,
		Type:    domain.SlotType(input.Body.Type),
	})
	if err != nil {
		return nil, err
	}

	return &SlotOutput{Body: toSlotResponse(*sl)}, nil
}

func (s *Server) handleDeleteSlot(ctx context.Context, input *DeleteSlotInput) (*struct{}, error) {
	if err := s.services.Layout.DeleteSlot(ctx, input.ID, input.Confirm); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *Server) handleMoveSlot(ctx context.Context, input *MoveSlotInput) (*SlotOutput, error) {
	sl, err := s.services.Layout.MoveSlot(ctx, input.ID, grid.Point{X: input.Body.DX, Y: input.Body.DY})
	if err != nil {
		return nil, err
	}

	return &SlotOutput{Body: toSlotResponse(*sl)}, nil
}

func (s *Server) handleResizeSlot(ctx context.Context, input *ResizeSlotInput) (*SlotOutput, error) {
	sl, err := s.services.Layout.ResizeSlot(ctx, input.ID, domain.Size{
		Width:  input.Body.Width,
		Height: input.Body.Height,
	})
	if err != nil {
		return nil, err
	}

	return &SlotOutput{Body: toSlotResponse(*sl)}, nil
}

func (s *Server) handleSetAssignment(ctx context.Context, input *SetAssignmentInput) (*AssignmentOutput, error) {
	if err := s.services.Assignment.Set(ctx, input.ID, input.Body.CategoryID); err != nil {
		return nil, err
	}

	return &AssignmentOutput{
		Body: AssignmentResponse{
			SlotID:     input.ID,
			CategoryID: s.services.Assignment.Get(ctx, input.ID),
		},
	}, nil
}

// templateSize resolves the requested template to concrete dimensions.
func templateSize(req CreateSlotRequest) (domain.Size, error) {
	switch req.Template {
	case templateVertical:
		height := req.Height
		if height <= 0 {
			height = shelfRunWidth
		}
		return domain.Size{Width: shelfDepth, Height: height}, nil
	case templateHorizontal:
		width := req.Width
		if width <= 0 {
			width = shelfRunWidth
		}
		return domain.Size{Width: width, Height: shelfDepth}, nil
	case templateCustom, "":
		size := domain.Size{Width: req.Width, Height: req.Height}
		if !size.Valid() {
			return domain.Size{}, errors.Validation("width and height must be positive for custom slots")
		}
		return size, nil
	default:
		return domain.Size{}, errors.Validation("unknown slot template")
	}
}

func toSlotResponse(sl domain.Slot) SlotResponse {
	return SlotResponse{
		ID:      sl.ID,
		Name:    sl.Name,
		X:       sl.Position.X,
		Y:       sl.Position.Y,
		Width:   sl.Size.Width,
		Height:  sl.Size.Height,
		FloorID: sl.FloorID,
		Type:    string(sl.Type),
	}
}
