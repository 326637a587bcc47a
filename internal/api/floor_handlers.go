package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerFloorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFloors",
		Method:      http.MethodGet,
		Path:        "/api/v1/floors",
		Summary:     "List floors",
		Description: "Returns floors in display order",
		Tags:        []string{"Floors"},
	}, s.handleListFloors)
}

// FloorResponse contains floor data in API responses.
type FloorResponse struct {
	ID    string `json:"id" doc:"Floor ID"`
	Name  string `json:"name" doc:"Floor name"`
	Order int    `json:"order" doc:"Display order, ascending"`
}

// ListFloorsResponse contains a list of floors.
type ListFloorsResponse struct {
	Floors []FloorResponse `json:"floors" doc:"Floors in display order"`
}

// ListFloorsOutput wraps the list floors response for Huma.
type ListFloorsOutput struct {
	Body ListFloorsResponse
}

func (s *Server) handleListFloors(ctx context.Context, _ *struct{}) (*ListFloorsOutput, error) {
	floors := s.services.Layout.ListFloors(ctx)

	resp := make([]FloorResponse, len(floors))
	for i, f := range floors {
		resp[i] = FloorResponse{
			ID:    f.ID,
			Name:  f.Name,
			Order: f.Order,
		}
	}

	return &ListFloorsOutput{Body: ListFloorsResponse{Floors: resp}}, nil
}
