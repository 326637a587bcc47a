package service

import (
	"context"
	"log/slog"

	"github.com/tanamapapp/tanamap-server/internal/color"
	"github.com/tanamapapp/tanamap-server/internal/domain"
	domainerrors "github.com/tanamapapp/tanamap-server/internal/errors"
	"github.com/tanamapapp/tanamap-server/internal/id"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
	"github.com/tanamapapp/tanamap-server/internal/validation"
)

// CategoryService orchestrates category hierarchy operations. Mutations
// write the document store first and mirror into session state only on
// success.
type CategoryService struct {
	store     *store.Store
	state     *session.State
	logger    *slog.Logger
	validator *validation.Validator
}

// NewCategoryService creates a new category service.
func NewCategoryService(store *store.Store, state *session.State, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:     store,
		state:     state,
		logger:    logger,
		validator: validation.New(),
	}
}

// ListParents returns the department-level categories, name-ordered.
func (s *CategoryService) ListParents(_ context.Context) []domain.Category {
	var out []domain.Category
	for _, c := range s.state.Categories() {
		if c.IsParent() {
			out = append(out, c)
		}
	}
	return out
}

// ListChildren returns the genre-level categories under a parent.
// listChildren never recurses; the hierarchy is flat with one optional
// parent reference.
func (s *CategoryService) ListChildren(_ context.Context, parentID string) []domain.Category {
	var out []domain.Category
	for _, c := range s.state.Categories() {
		if c.ParentID == parentID && c.ParentID != "" {
			out = append(out, c)
		}
	}
	return out
}

// CategoryGroup is one department with its genres, for grouped display.
type CategoryGroup struct {
	Parent   domain.Category   `json:"parent"`
	Children []domain.Category `json:"children"`
}

// ListGrouped returns departments with their genres nested, both levels
// name-ordered. Orphaned genres (parent deleted) are omitted here; they
// still resolve individually through assignments until reassigned.
func (s *CategoryService) ListGrouped(ctx context.Context) []CategoryGroup {
	parents := s.ListParents(ctx)
	groups := make([]CategoryGroup, 0, len(parents))
	for _, p := range parents {
		groups = append(groups, CategoryGroup{
			Parent:   p,
			Children: s.ListChildren(ctx, p.ID),
		})
	}
	return groups
}

// Resolve returns the category with the given id, or nil when it no
// longer exists. Callers composing the display view treat nil as
// "unassigned" rather than an error.
func (s *CategoryService) Resolve(_ context.Context, categoryID string) *domain.Category {
	return s.state.Category(categoryID)
}

// CreateCategoryRequest contains fields for creating a category.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID string `json:"parent_id"`
	Code     string `json:"code" validate:"max=20"`
}

// CreateCategory creates a new category. The display color is assigned
// here and never changes afterwards. Code lands in GenreCode when the
// category has a parent and DepartmentCode otherwise. Nesting deeper
// than parent/child is rejected.
func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if req.ParentID != "" {
		parent := s.state.Category(req.ParentID)
		if parent == nil {
			return nil, domainerrors.NotFoundf("parent category %s not found", req.ParentID)
		}
		if !parent.IsParent() {
			return nil, domainerrors.Validation("categories nest at most one level deep")
		}
	}

	categoryID, err := id.Generate("cat")
	if err != nil {
		return nil, err
	}

	cat := &domain.Category{
		ID:       categoryID,
		Name:     req.Name,
		Color:    color.ForCategory(req.Name),
		ParentID: req.ParentID,
	}
	if req.ParentID != "" {
		cat.GenreCode = req.Code
	} else {
		cat.DepartmentCode = req.Code
	}

	if err := s.store.Categories.Create(ctx, categoryID, cat); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeStorage, "create category")
	}
	s.state.UpsertCategory(*cat)

	s.logger.Info("category created",
		"category_id", categoryID,
		"name", req.Name,
		"parent_id", req.ParentID,
	)

	return cat, nil
}

// DeleteCategory deletes a category. The caller must pass confirmed=true;
// the deletion is refused otherwise so a destructive action can never
// happen without an explicit user request. Children and assignments
// referencing the category are left in place and degrade to absent when
// resolved.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string, confirmed bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !confirmed {
		return domainerrors.Validation("category deletion requires confirmation")
	}

	if s.state.Category(categoryID) == nil {
		return domainerrors.NotFoundf("category %s not found", categoryID)
	}

	if err := s.store.Categories.Delete(ctx, categoryID); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeStorage, "delete category")
	}
	s.state.RemoveCategory(categoryID)

	s.logger.Info("category deleted", "category_id", categoryID)
	return nil
}
