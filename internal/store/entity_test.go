package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "entity-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return s
}

func TestEntity_CreateAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	cat := &domain.Category{ID: "cat-1", Name: "文庫", Color: "#FFEEDD"}
	require.NoError(t, s.Categories.Create(ctx, "cat-1", cat))

	got, err := s.Categories.Get(ctx, "cat-1")
	require.NoError(t, err)
	assert.Equal(t, "文庫", got.Name)
	assert.Equal(t, "#FFEEDD", got.Color)
}

func TestEntity_Create_FailsOnDuplicate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	cat := &domain.Category{ID: "cat-1", Name: "文庫"}
	require.NoError(t, s.Categories.Create(ctx, "cat-1", cat))

	err := s.Categories.Create(ctx, "cat-1", cat)
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEntity_Get_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Categories.Get(context.Background(), "cat-missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_Put_CreateOrReplace(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := &domain.Assignment{SlotID: "slot-001", CategoryID: "cat-1"}
	require.NoError(t, s.Assignments.Put(ctx, "slot-001", a))

	// Replacing under the same key leaves exactly one record.
	a2 := &domain.Assignment{SlotID: "slot-001", CategoryID: "cat-2"}
	require.NoError(t, s.Assignments.Put(ctx, "slot-001", a2))

	all, err := s.Assignments.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "cat-2", all[0].CategoryID)
}

func TestEntity_Put_Idempotent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := &domain.Assignment{SlotID: "slot-001", CategoryID: "cat-1"}
	require.NoError(t, s.Assignments.Put(ctx, "slot-001", a))
	require.NoError(t, s.Assignments.Put(ctx, "slot-001", a))

	all, err := s.Assignments.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.Assignment{SlotID: "slot-001", CategoryID: "cat-1"}, all[0])
}

func TestEntity_Update_NotFound(t *testing.T) {
	s := setupTestStore(t)

	slot := &domain.Slot{ID: "slot-x", Name: "棚A"}
	err := s.Slots.Update(context.Background(), "slot-x", slot)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_Update_ReplacesDocument(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	slot := &domain.Slot{ID: "slot-1", Name: "棚A", Size: domain.Size{Width: 140, Height: 50}}
	require.NoError(t, s.Slots.Create(ctx, "slot-1", slot))

	slot.Size = domain.Size{Width: 160, Height: 60}
	require.NoError(t, s.Slots.Update(ctx, "slot-1", slot))

	got, err := s.Slots.Get(ctx, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Size{Width: 160, Height: 60}, got.Size)
}

func TestEntity_Delete_Idempotent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := &domain.Assignment{SlotID: "slot-001", CategoryID: "cat-1"}
	require.NoError(t, s.Assignments.Put(ctx, "slot-001", a))

	require.NoError(t, s.Assignments.Delete(ctx, "slot-001"))
	// Deleting again is a no-op, not an error.
	require.NoError(t, s.Assignments.Delete(ctx, "slot-001"))

	_, err := s.Assignments.Get(ctx, "slot-001")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_ListAll(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, f := range []domain.Floor{
		{ID: "floor-1", Name: "1F", Order: 1},
		{ID: "floor-2", Name: "2F", Order: 2},
	} {
		require.NoError(t, s.Floors.Create(ctx, f.ID, &f))
	}

	all, err := s.Floors.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEntity_List_EmptyCollection(t *testing.T) {
	s := setupTestStore(t)

	all, err := s.Slots.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEntity_CollectionsAreIsolated(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Categories.Create(ctx, "x", &domain.Category{ID: "x", Name: "文庫"}))
	require.NoError(t, s.Slots.Create(ctx, "x", &domain.Slot{ID: "x", Name: "棚A"}))

	cats, err := s.Categories.ListAll(ctx)
	require.NoError(t, err)
	slots, err := s.Slots.ListAll(ctx)
	require.NoError(t, err)

	assert.Len(t, cats, 1)
	assert.Len(t, slots, 1)
}
