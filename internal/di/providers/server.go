package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/tanamapapp/tanamap-server/internal/api"
	"github.com/tanamapapp/tanamap-server/internal/config"
	"github.com/tanamapapp/tanamap-server/internal/logger"
	"github.com/tanamapapp/tanamap-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	apiServer *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.apiServer.Close()
	return err
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	stateHandle := do.MustInvoke[*SessionStateHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Category:   do.MustInvoke[*service.CategoryService](i),
		Layout:     do.MustInvoke[*service.LayoutService](i),
		Assignment: do.MustInvoke[*service.AssignmentService](i),
		View:       do.MustInvoke[*service.ViewService](i),
	}

	apiServer := api.NewServer(storeHandle.Store, stateHandle.State, services, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      apiServer,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr, "name", cfg.Server.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("HTTP server stopped unexpectedly")
		}
	}()

	return &HTTPServerHandle{Server: srv, apiServer: apiServer}, nil
}
