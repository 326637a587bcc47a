package service_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanamapapp/tanamap-server/internal/grid"
	"github.com/tanamapapp/tanamap-server/internal/service"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// testEnv bundles a temp-dir store, a hydrated session mirror, and the
// services under test.
type testEnv struct {
	store       *store.Store
	state       *session.State
	categories  *service.CategoryService
	layout      *service.LayoutService
	assignments *service.AssignmentService
	views       *service.ViewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "service-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	})

	state := session.New()
	require.NoError(t, state.Hydrate(context.Background(), s))

	logger := slog.New(slog.DiscardHandler)

	return &testEnv{
		store:       s,
		state:       state,
		categories:  service.NewCategoryService(s, state, logger),
		layout:      service.NewLayoutService(s, state, logger, 20, grid.Point{X: 20, Y: 20}),
		assignments: service.NewAssignmentService(s, state, logger),
		views:       service.NewViewService(state),
	}
}
