package emojiscape

import (
	"reflect"
)

// Queries mirror the component types they require; Map visits matching
// entities in ascending id order and stops early when the callback returns
// false.
type Query1[A any] struct{ store *Store }
type Query2[A, B any] struct{ store *Store }
type Query3[A, B, C any] struct{ store *Store }

func MakeQuery1[A any](cmd *Commands) Query1[A] { return Query1[A]{store: cmd.app.store} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] {
	return Query2[A, B]{store: cmd.app.store}
}
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] {
	return Query3[A, B, C]{store: cmd.app.store}
}

func componentTypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	typeA := componentTypeOf[A]()

	for _, entityId := range q.store.entityIdsWith(typeA) {
		rawA, _ := q.store.getComponent(entityId, typeA)
		if !m(entityId, rawA.(*A)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	typeA := componentTypeOf[A]()
	typeB := componentTypeOf[B]()

	for _, entityId := range q.store.entityIdsWith(typeA) {
		rawB, ok := q.store.getComponent(entityId, typeB)
		if !ok {
			continue
		}
		rawA, _ := q.store.getComponent(entityId, typeA)
		if !m(entityId, rawA.(*A), rawB.(*B)) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool) {
	typeA := componentTypeOf[A]()
	typeB := componentTypeOf[B]()
	typeC := componentTypeOf[C]()

	for _, entityId := range q.store.entityIdsWith(typeA) {
		rawB, ok := q.store.getComponent(entityId, typeB)
		if !ok {
			continue
		}
		rawC, ok := q.store.getComponent(entityId, typeC)
		if !ok {
			continue
		}
		rawA, _ := q.store.getComponent(entityId, typeA)
		if !m(entityId, rawA.(*A), rawB.(*B), rawC.(*C)) {
			return
		}
	}
}
