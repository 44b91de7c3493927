package ecs

import "github.com/milk9111/gymroom/ecs/component"

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(int(e.id()), value)
	return nil
}

// Remove detaches the component of kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(int(e.id()))
}

// Has reports whether e carries a component of kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(int(e.id()))
}

// Get returns a pointer to the component of kind on e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(int(e.id())).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// First returns the first live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, id := range w.store(kind.ID(), false).IDs() {
		if e, ok := w.entities.resolve(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach calls fn for every live entity carrying kind. The id list is
// snapshotted, so fn may add or remove components.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, id := range w.store(kind.ID(), false).IDs() {
		e, a, ok := lookup(w, id, kind)
		if ok {
			fn(e, a)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	ids := intersectIDs(w.store(ka.ID(), false), w.store(kb.ID(), false))
	for _, id := range ids {
		e, a, okA := lookup(w, id, ka)
		_, b, okB := lookup(w, id, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	ids := intersectIDs(w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false))
	for _, id := range ids {
		e, a, okA := lookup(w, id, ka)
		_, b, okB := lookup(w, id, kb)
		_, c, okC := lookup(w, id, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	ids := intersectIDs(w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false), w.store(kd.ID(), false))
	for _, id := range ids {
		e, a, okA := lookup(w, id, ka)
		_, b, okB := lookup(w, id, kb)
		_, c, okC := lookup(w, id, kc)
		_, d, okD := lookup(w, id, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}

func lookup[T any](w *World, id int, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.entities.resolve(id)
	if !ok {
		return 0, nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(id).(*T)
	if !ok || value == nil {
		return 0, nil, false
	}
	return e, value, true
}
