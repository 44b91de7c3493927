package entity

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

// NewClock creates the Time singleton.
func NewClock(w *ecs.World, delta, fixedDelta float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	a := &adder{w: w, e: e}
	add(a, component.TimeComponent.Kind(), &component.Time{Delta: delta, FixedDelta: fixedDelta})
	return finish(w, e, "clock", a.err)
}

// NewReloadRequest asks the tuning reload system to re-read file.
func NewReloadRequest(w *ecs.World, file string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	a := &adder{w: w, e: e}
	add(a, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{File: file})
	return finish(w, e, "reload request", a.err)
}
