package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize_Valid(t *testing.T) {
	assert.True(t, Size{Width: 140, Height: 50}.Valid())
	assert.False(t, Size{Width: 0, Height: 50}.Valid())
	assert.False(t, Size{Width: 140, Height: -1}.Valid())
}

func TestSlot_IsFixture(t *testing.T) {
	shelf := &Slot{ID: "slot-1", Name: "棚A", Type: SlotTypeSlot}
	pillar := &Slot{ID: "slot-2", Name: "柱", Type: SlotTypeFixture}

	assert.False(t, shelf.IsFixture())
	assert.True(t, pillar.IsFixture())
}

func TestSlot_OnFloor(t *testing.T) {
	s := &Slot{ID: "slot-1", Name: "レジ横", FloorID: "floor-1"}

	assert.True(t, s.OnFloor("floor-1"))
	assert.False(t, s.OnFloor("floor-2"))

	// Empty filter matches everything, including slots without a floor.
	assert.True(t, s.OnFloor(""))
	noFloor := &Slot{ID: "slot-2", Name: "入口正面ワゴン"}
	assert.True(t, noFloor.OnFloor(""))
	assert.False(t, noFloor.OnFloor("floor-1"))
}
