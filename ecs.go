package emojiscape

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

type EntityId uint64

type set[T comparable] = map[T]struct{}

// Store is a deliberately small entity/component store: components are
// pointer-to-struct values bucketed by type, entities are plain ids. There is
// no archetype machinery; the demo's entity population is a fixed sprite pool
// plus a camera, so per-type maps with ordered iteration are enough.
type Store struct {
	idGeneratorLock sync.Mutex
	entityIdCounter EntityId

	components map[reflect.Type]map[EntityId]any
	entities   set[EntityId]
}

func MakeStore() Store {
	return Store{
		entityIdCounter: EntityId(0),
		components:      make(map[reflect.Type]map[EntityId]any),
		entities:        make(set[EntityId]),
	}
}

func (store *Store) addEntity(components ...any) EntityId {
	entityId := store.nextEntityId()
	return store.insertEntity(entityId, components...)
}

func (store *Store) insertEntity(entityId EntityId, components ...any) EntityId {
	store.entities[entityId] = struct{}{}
	for _, component := range components {
		store.writeComponent(entityId, component)
	}
	return entityId
}

func (store *Store) removeEntity(entityId EntityId) {
	for _, bucket := range store.components {
		delete(bucket, entityId)
	}
	delete(store.entities, entityId)
}

func (store *Store) addComponents(entityId EntityId, components ...any) {
	if _, ok := store.entities[entityId]; !ok {
		panic(fmt.Sprintf("entity %v does not exist", entityId))
	}
	for _, component := range components {
		store.writeComponent(entityId, component)
	}
}

func (store *Store) writeComponent(entityId EntityId, component any) {
	componentType := reflect.TypeOf(component)
	if componentType.Kind() != reflect.Pointer || componentType.Elem().Kind() != reflect.Struct {
		panic(fmt.Errorf("expected Component to be a pointer to a struct, got %s", componentType))
	}

	key := componentType.Elem()
	bucket, ok := store.components[key]
	if !ok {
		bucket = make(map[EntityId]any)
		store.components[key] = bucket
	}
	bucket[entityId] = component
}

// entityIdsWith returns the ids holding a component of the given type, in
// ascending order. Ids are assigned monotonically, so ascending id order is
// spawn order — queries visit sprites in index order because of this.
func (store *Store) entityIdsWith(componentType reflect.Type) []EntityId {
	bucket, ok := store.components[componentType]
	if !ok {
		return nil
	}
	ids := make([]EntityId, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (store *Store) getComponent(entityId EntityId, componentType reflect.Type) (any, bool) {
	bucket, ok := store.components[componentType]
	if !ok {
		return nil, false
	}
	c, ok := bucket[entityId]
	return c, ok
}

func (store *Store) nextEntityId() EntityId {
	store.idGeneratorLock.Lock()
	defer store.idGeneratorLock.Unlock()

	id := store.entityIdCounter
	store.entityIdCounter += 1

	return id
}
