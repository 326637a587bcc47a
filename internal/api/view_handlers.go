package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tanamapapp/tanamap-server/internal/domain"
)

func (s *Server) registerViewRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getView",
		Method:      http.MethodGet,
		Path:        "/api/v1/view",
		Summary:     "Get composed view",
		Description: "Returns slots with their resolved categories, optionally filtered by floor and search term",
		Tags:        []string{"View"},
	}, s.handleGetView)
}

// GetViewInput contains parameters for the composed view.
type GetViewInput struct {
	FloorID string `query:"floor_id" doc:"Restrict to one floor; empty returns all"`
	Q       string `query:"q" doc:"Case-insensitive search over slot and category names and codes"`
}

// DisplaySlotResponse contains a slot with its resolved categories.
type DisplaySlotResponse struct {
	SlotResponse
	Category       *CategoryResponse `json:"category,omitempty" doc:"Assigned genre, when resolvable"`
	ParentCategory *CategoryResponse `json:"parent_category,omitempty" doc:"Department of the assigned genre, when resolvable"`
}

// GetViewResponse contains the composed display slots.
type GetViewResponse struct {
	Slots []DisplaySlotResponse `json:"slots" doc:"Display slots in layout order"`
}

// GetViewOutput wraps the view response for Huma.
type GetViewOutput struct {
	Body GetViewResponse
}

func (s *Server) handleGetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error) {
	display := s.services.View.DisplaySlots(ctx, input.FloorID, input.Q)

	resp := make([]DisplaySlotResponse, len(display))
	for i, d := range display {
		resp[i] = DisplaySlotResponse{
			SlotResponse:   toSlotResponse(d.Slot),
			Category:       toCategoryResponsePtr(d.Category),
			ParentCategory: toCategoryResponsePtr(d.ParentCategory),
		}
	}

	return &GetViewOutput{Body: GetViewResponse{Slots: resp}}, nil
}

func toCategoryResponsePtr(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	resp := toCategoryResponse(*c)
	return &resp
}
