package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/tanamapapp/tanamap-server/internal/config"
	"github.com/tanamapapp/tanamap-server/internal/logger"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// SessionStateHandle wraps the in-memory working state.
// The state is only exposed after a successful hydration, so services never
// observe a partially loaded session.
type SessionStateHandle struct {
	*session.State
}

// ProvideSessionState provides the hydrated working state.
func ProvideSessionState(i do.Injector) (*SessionStateHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	ctx, cancel := context.WithTimeout(context.Background(), hydrateTimeout)
	defer cancel()

	state := session.New()
	if err := state.Hydrate(ctx, storeHandle.Store); err != nil {
		return nil, err
	}

	log.Info("Session state hydrated",
		"slots", len(state.Slots()),
		"categories", len(state.Categories()),
		"floors", len(state.Floors()),
	)

	return &SessionStateHandle{State: state}, nil
}
