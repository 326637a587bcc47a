package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanamapapp/tanamap-server/internal/domain"
)

func testSlots() []domain.Slot {
	return []domain.Slot{
		{ID: "slot-001", Name: "入口正面ワゴン"},
		{ID: "slot-002", Name: "レジ横"},
	}
}

func TestCompose_ResolvesTwoLevelHierarchy(t *testing.T) {
	categories := []domain.Category{
		{ID: "cat-p", Name: "文学"},
		{ID: "cat-c", Name: "純文学", ParentID: "cat-p"},
	}
	assignments := []domain.Assignment{
		{SlotID: "slot-001", CategoryID: "cat-c"},
	}

	got := Compose(testSlots(), assignments, categories)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].Category)
	assert.Equal(t, "純文学", got[0].Category.Name)
	require.NotNil(t, got[0].ParentCategory)
	assert.Equal(t, "cat-p", got[0].ParentCategory.ID)

	assert.Nil(t, got[1].Category)
	assert.Nil(t, got[1].ParentCategory)
}

func TestCompose_PreservesSlotOrder(t *testing.T) {
	got := Compose(testSlots(), nil, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "slot-001", got[0].ID)
	assert.Equal(t, "slot-002", got[1].ID)
}

func TestCompose_DeletedCategoryDegradesToUnassigned(t *testing.T) {
	assignments := []domain.Assignment{
		{SlotID: "slot-001", CategoryID: "cat-gone"},
	}

	got := Compose(testSlots(), assignments, nil)

	require.Len(t, got, 2)
	assert.Nil(t, got[0].Category)
	assert.False(t, got[0].Assigned())
}

func TestCompose_DeletedParentDegradesToNoParent(t *testing.T) {
	categories := []domain.Category{
		{ID: "cat-c", Name: "純文学", ParentID: "cat-gone"},
	}
	assignments := []domain.Assignment{
		{SlotID: "slot-001", CategoryID: "cat-c"},
	}

	got := Compose(testSlots(), assignments, categories)

	require.NotNil(t, got[0].Category)
	assert.Nil(t, got[0].ParentCategory)
}

func TestFilter_MatchesCategoryName(t *testing.T) {
	categories := []domain.Category{
		{ID: "cat-1", Name: "文庫"},
		{ID: "cat-2", Name: "雑誌"},
	}
	assignments := []domain.Assignment{
		{SlotID: "slot-001", CategoryID: "cat-1"},
		{SlotID: "slot-002", CategoryID: "cat-2"},
	}
	display := Compose(testSlots(), assignments, categories)

	got := Filter(display, "文庫")

	require.Len(t, got, 1)
	assert.Equal(t, "入口正面ワゴン", got[0].Name)
}

func TestFilter_MatchesSlotName(t *testing.T) {
	display := Compose(testSlots(), nil, nil)

	got := Filter(display, "レジ")

	require.Len(t, got, 1)
	assert.Equal(t, "slot-002", got[0].ID)
}

func TestFilter_MatchesParentNameAndCodes(t *testing.T) {
	categories := []domain.Category{
		{ID: "cat-p", Name: "文学", DepartmentCode: "10"},
		{ID: "cat-c", Name: "純文学", ParentID: "cat-p", GenreCode: "1001"},
	}
	assignments := []domain.Assignment{
		{SlotID: "slot-001", CategoryID: "cat-c"},
	}
	display := Compose(testSlots(), assignments, categories)

	assert.Len(t, Filter(display, "文学"), 1)   // parent name (also child name)
	assert.Len(t, Filter(display, "1001"), 1) // genre code
	assert.Len(t, Filter(display, "10"), 1)   // department code
}

func TestFilter_CaseInsensitive(t *testing.T) {
	slots := []domain.Slot{{ID: "slot-001", Name: "Wagon A"}}
	display := Compose(slots, nil, nil)

	assert.Len(t, Filter(display, "wagon"), 1)
	assert.Len(t, Filter(display, "WAGON"), 1)
}

func TestFilter_EmptyTermMatchesAll(t *testing.T) {
	display := Compose(testSlots(), nil, nil)

	assert.Len(t, Filter(display, ""), 2)
}

func TestFilter_NoMatchReturnsEmpty(t *testing.T) {
	display := Compose(testSlots(), nil, nil)

	assert.Empty(t, Filter(display, "児童書"))
}
