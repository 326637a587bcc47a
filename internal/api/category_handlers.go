package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/service"
)

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns departments with their genres nested, in display order",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "createCategory",
		Method:      http.MethodPost,
		Path:        "/api/v1/categories",
		Summary:     "Create category",
		Description: "Creates a department or, when parent_id is set, a genre under it",
		Tags:        []string{"Categories"},
	}, s.handleCreateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCategory",
		Method:      http.MethodDelete,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category; requires confirm=true",
		Tags:        []string{"Categories"},
	}, s.handleDeleteCategory)
}

// === DTOs ===

// CategoryResponse contains category data in API responses.
type CategoryResponse struct {
	ID       string `json:"id" doc:"Category ID"`
	Name     string `json:"name" doc:"Category name"`
	Color    string `json:"color" doc:"Display color as #RRGGBB"`
	ParentID string `json:"parent_id,omitempty" doc:"Parent category ID for genres"`
	Code     string `json:"code,omitempty" doc:"Department or genre code"`
}

// CategoryGroupResponse contains one department with its genres.
type CategoryGroupResponse struct {
	Parent   CategoryResponse   `json:"parent" doc:"Department"`
	Children []CategoryResponse `json:"children" doc:"Genres under this department"`
}

// ListCategoriesResponse contains the grouped category listing.
type ListCategoriesResponse struct {
	Groups []CategoryGroupResponse `json:"groups" doc:"Departments with nested genres"`
}

// ListCategoriesOutput wraps the list categories response for Huma.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100" doc:"Category name"`
	ParentID string `json:"parent_id,omitempty" doc:"Parent category ID; empty creates a department"`
	Code     string `json:"code,omitempty" validate:"omitempty,max=20" doc:"Department or genre code"`
}

// CreateCategoryInput wraps the create category request for Huma.
type CreateCategoryInput struct {
	Body CreateCategoryRequest
}

// CategoryOutput wraps the category response for Huma.
type CategoryOutput struct {
	Body CategoryResponse
}

// DeleteCategoryInput contains parameters for deleting a category.
type DeleteCategoryInput struct {
	ID      string `path:"id" doc:"Category ID"`
	Confirm bool   `query:"confirm" doc:"Must be true to delete"`
}

// === Handlers ===

func (s *Server) handleListCategories(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	groups := s.services.Category.ListGrouped(ctx)

	resp := make([]CategoryGroupResponse, len(groups))
	for i, g := range groups {
		children := make([]CategoryResponse, len(g.Children))
		for j, c := range g.Children {
			children[j] = toCategoryResponse(c)
		}
		resp[i] = CategoryGroupResponse{
			Parent:   toCategoryResponse(g.Parent),
			Children: children,
		}
	}

	return &ListCategoriesOutput{Body: ListCategoriesResponse{Groups: resp}}, nil
}

func (s *Server) handleCreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	cat, err := s.services.Category.CreateCategory(ctx, service.CreateCategoryRequest{
		Name:     input.Body.Name,
		ParentID: input.Body.ParentID,
		Code:     input.Body.Code,
	})
	if err != nil {
		return nil, err
	}

	return &CategoryOutput{Body: toCategoryResponse(*cat)}, nil
}

func (s *Server) handleDeleteCategory(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	if err := s.services.Category.DeleteCategory(ctx, input.ID, input.Confirm); err != nil {
		return nil, err
	}
	return nil, nil
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Color:    c.Color,
		ParentID: c.ParentID,
		Code:     c.Code(),
	}
}
