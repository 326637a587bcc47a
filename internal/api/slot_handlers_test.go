package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (ts *testServer) createSlot(t *testing.T, body map[string]any) SlotResponse {
	t.Helper()

	resp := ts.api.Post("/api/v1/slots", body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var env testEnvelope[SlotResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	return env.Data
}

func TestCreateSlot_DefaultPosition(t *testing.T) {
	ts := setupTestServer(t)

	slot := ts.createSlot(t, map[string]any{
		"name":   "入口正面ワゴン",
		"width":  200,
		"height": 80,
	})

	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, 20.0, slot.X)
	assert.Equal(t, 20.0, slot.Y)
	assert.Equal(t, 200.0, slot.Width)
	assert.Equal(t, 80.0, slot.Height)
	assert.Equal(t, "slot", slot.Type)
}

func TestCreateSlot_Templates(t *testing.T) {
	ts := setupTestServer(t)

	vertical := ts.createSlot(t, map[string]any{
		"name":     "壁際書架",
		"template": "vertical",
		"height":   200,
	})
	assert.Equal(t, 40.0, vertical.Width)
	assert.Equal(t, 200.0, vertical.Height)

	horizontal := ts.createSlot(t, map[string]any{
		"name":     "レジ横",
		"template": "horizontal",
	})
	assert.Equal(t, 160.0, horizontal.Width)
	assert.Equal(t, 40.0, horizontal.Height)
}

func TestCreateSlot_CustomRequiresSize(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/slots", map[string]any{"name": "棚A"})
	assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
}

func TestMoveSlot_SnapsToGrid(t *testing.T) {
	ts := setupTestServer(t)

	slot := ts.createSlot(t, map[string]any{"name": "棚A", "width": 100, "height": 50})

	resp := ts.api.Post("/api/v1/slots/"+slot.ID+"/move", map[string]any{
		"dx": 13.0,
		"dy": 27.0,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var env testEnvelope[SlotResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	// 20+13=33 snaps to 40, 20+27=47 snaps to 40.
	assert.Equal(t, 40.0, env.Data.X)
	assert.Equal(t, 40.0, env.Data.Y)
}

func TestMoveSlot_Missing(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/slots/slot-missing/move", map[string]any{"dx": 10.0, "dy": 0.0})
	assert.Equal(t, http.StatusNotFound, resp.Code, resp.Body.String())
}

func TestResizeSlot_KeepsPosition(t *testing.T) {
	ts := setupTestServer(t)

	slot := ts.createSlot(t, map[string]any{"name": "棚A", "width": 100, "height": 50})

	resp := ts.api.Post("/api/v1/slots/"+slot.ID+"/resize", map[string]any{
		"width":  140,
		"height": 60,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var env testEnvelope[SlotResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Equal(t, 140.0, env.Data.Width)
	assert.Equal(t, 60.0, env.Data.Height)
	assert.Equal(t, slot.X, env.Data.X)
	assert.Equal(t, slot.Y, env.Data.Y)
}

func TestListSlots_FilterByFloor(t *testing.T) {
	ts := setupTestServer(t)
	ts.seedFloor(t, "floor-1", "1F", 1)
	ts.seedFloor(t, "floor-2", "2F", 2)

	ts.createSlot(t, map[string]any{"name": "棚A", "width": 100, "height": 50, "floor_id": "floor-1"})
	ts.createSlot(t, map[string]any{"name": "棚B", "width": 100, "height": 50, "floor_id": "floor-2"})

	resp := ts.api.Get("/api/v1/slots?floor_id=floor-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var env testEnvelope[ListSlotsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	require.Len(t, env.Data.Slots, 1)
	assert.Equal(t, "棚A", env.Data.Slots[0].Name)

	resp = ts.api.Get("/api/v1/slots")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Len(t, env.Data.Slots, 2)
}

func TestDeleteSlot_RequiresConfirmation(t *testing.T) {
	ts := setupTestServer(t)

	slot := ts.createSlot(t, map[string]any{"name": "棚A", "width": 100, "height": 50})

	resp := ts.api.Delete("/api/v1/slots/" + slot.ID)
	assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())

	resp = ts.api.Delete("/api/v1/slots/" + slot.ID + "?confirm=true")
	assert.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	resp = ts.api.Get("/api/v1/slots")
	var env testEnvelope[ListSlotsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Empty(t, env.Data.Slots)
}

func TestDeleteSlot_ClearsAssignment(t *testing.T) {
	ts := setupTestServer(t)

	slot := ts.createSlot(t, map[string]any{"name": "棚A", "width": 100, "height": 50})

	resp := ts.api.Post("/api/v1/categories", map[string]any{"name": "文庫"})
	require.Equal(t, http.StatusOK, resp.Code)
	var cat testEnvelope[CategoryResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cat))

	resp = ts.api.Put("/api/v1/slots/"+slot.ID+"/assignment", map[string]any{
		"category_id": cat.Data.ID,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = ts.api.Delete("/api/v1/slots/" + slot.ID + "?confirm=true")
	require.Equal(t, http.StatusNoContent, resp.Code)

	assert.Empty(t, ts.state.AssignmentFor(slot.ID))
}
