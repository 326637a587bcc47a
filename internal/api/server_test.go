package api

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/grid"
	"github.com/tanamapapp/tanamap-server/internal/service"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// testEnvelope mirrors the response envelope for unmarshaling in tests.
type testEnvelope[T any] struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

// setupTestServer creates a server backed by a temporary store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "data"), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	state := session.New()
	require.NoError(t, state.Hydrate(context.Background(), st))

	services := &Services{
		Category:   service.NewCategoryService(st, state, logger),
		Layout:     service.NewLayoutService(st, state, logger, grid.DefaultSize, grid.Point{X: 20, Y: 20}),
		Assignment: service.NewAssignmentService(st, state, logger),
		View:       service.NewViewService(state),
	}

	s := NewServer(st, state, services, logger)

	t.Cleanup(func() {
		s.Close()
		_ = st.Close()
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

// seedFloor writes a floor directly to the store and state.
func (ts *testServer) seedFloor(t *testing.T, id, name string, order int) {
	t.Helper()

	floor := &domain.Floor{ID: id, Name: name, Order: order}
	require.NoError(t, ts.store.Floors.Create(context.Background(), id, floor))
	require.NoError(t, ts.state.Hydrate(context.Background(), ts.store))
}
