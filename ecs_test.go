package emojiscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type velocity struct{ x, y float32 }
type health struct{ hp int }

func TestStoreAddAndGet(t *testing.T) {
	store := MakeStore()
	eid := store.addEntity(&velocity{x: 1}, &health{hp: 10})

	raw, ok := store.getComponent(eid, componentTypeOf[velocity]())
	require.True(t, ok)
	assert.Equal(t, float32(1), raw.(*velocity).x)

	_, ok = store.getComponent(eid+1, componentTypeOf[velocity]())
	assert.False(t, ok)
}

func TestStoreRemoveEntityDropsAllComponents(t *testing.T) {
	store := MakeStore()
	eid := store.addEntity(&velocity{}, &health{})

	store.removeEntity(eid)

	_, ok := store.getComponent(eid, componentTypeOf[velocity]())
	assert.False(t, ok)
	_, ok = store.getComponent(eid, componentTypeOf[health]())
	assert.False(t, ok)
	assert.Empty(t, store.entityIdsWith(componentTypeOf[velocity]()))
}

func TestStoreEntityIdsSorted(t *testing.T) {
	store := MakeStore()
	var want []EntityId
	for i := 0; i < 20; i++ {
		want = append(want, store.addEntity(&velocity{}))
	}

	got := store.entityIdsWith(componentTypeOf[velocity]())
	assert.Equal(t, want, got)
}

func TestStoreIdsAreMonotonic(t *testing.T) {
	store := MakeStore()
	a := store.nextEntityId()
	b := store.nextEntityId()
	assert.Greater(t, b, a)
}

func TestAddComponentsToMissingEntityPanics(t *testing.T) {
	store := MakeStore()
	assert.Panics(t, func() { store.addComponents(99, &velocity{}) })
}

func TestWriteComponentRequiresPointerToStruct(t *testing.T) {
	store := MakeStore()
	eid := store.addEntity()

	assert.Panics(t, func() { store.addComponents(eid, velocity{}) })
	assert.Panics(t, func() { store.addComponents(eid, 42) })
}

func TestComponentsAreSharedPointers(t *testing.T) {
	store := MakeStore()
	v := &velocity{x: 1}
	eid := store.addEntity(v)

	raw, ok := store.getComponent(eid, componentTypeOf[velocity]())
	require.True(t, ok)
	raw.(*velocity).x = 5

	assert.Equal(t, float32(5), v.x, "mutation through the store is visible to the original pointer")
}
