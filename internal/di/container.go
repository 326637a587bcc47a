// Package di provides dependency injection configuration for the TanaMap server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/tanamapapp/tanamap-server/internal/config"
	"github.com/tanamapapp/tanamap-server/internal/di/providers"
	"github.com/tanamapapp/tanamap-server/internal/logger"
	"github.com/tanamapapp/tanamap-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSessionState)

	// Business services
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideLayoutService)
	do.Provide(injector, providers.ProvideAssignmentService)
	do.Provide(injector, providers.ProvideViewService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is ready.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SessionStateHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.CategoryService](injector)
	_ = do.MustInvoke[*service.LayoutService](injector)
	_ = do.MustInvoke[*service.AssignmentService](injector)
	_ = do.MustInvoke[*service.ViewService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
