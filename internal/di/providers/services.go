package providers

import (
	"github.com/samber/do/v2"

	"github.com/tanamapapp/tanamap-server/internal/config"
	"github.com/tanamapapp/tanamap-server/internal/grid"
	"github.com/tanamapapp/tanamap-server/internal/logger"
	"github.com/tanamapapp/tanamap-server/internal/service"
)

// ProvideCategoryService provides the category hierarchy service.
func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	stateHandle := do.MustInvoke[*SessionStateHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCategoryService(storeHandle.Store, stateHandle.State, log.Logger), nil
}

// ProvideLayoutService provides the slot layout service.
func ProvideLayoutService(i do.Injector) (*service.LayoutService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	stateHandle := do.MustInvoke[*SessionStateHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	defaultPos := grid.Point{X: cfg.Layout.DefaultSlotX, Y: cfg.Layout.DefaultSlotY}

	return service.NewLayoutService(storeHandle.Store, stateHandle.State, log.Logger, cfg.Layout.GridSize, defaultPos), nil
}

// ProvideAssignmentService provides the slot assignment service.
func ProvideAssignmentService(i do.Injector) (*service.AssignmentService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	stateHandle := do.MustInvoke[*SessionStateHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAssignmentService(storeHandle.Store, stateHandle.State, log.Logger), nil
}

// ProvideViewService provides the composed display view service.
func ProvideViewService(i do.Injector) (*service.ViewService, error) {
	stateHandle := do.MustInvoke[*SessionStateHandle](i)

	return service.NewViewService(stateHandle.State), nil
}
