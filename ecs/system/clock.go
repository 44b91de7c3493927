package system

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

const (
	defaultDelta      = 1.0 / 60.0
	defaultFixedDelta = 1.0 / 50.0
)

type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (c *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.TimeComponent.Kind(), func(_ ecs.Entity, t *component.Time) {
		t.Frame++
	})
}

func worldTime(w *ecs.World) component.Time {
	e, ok := ecs.First(w, component.TimeComponent.Kind())
	if ok {
		if t, ok := ecs.Get(w, e, component.TimeComponent.Kind()); ok {
			out := *t
			if out.Delta <= 0 {
				out.Delta = defaultDelta
			}
			if out.FixedDelta <= 0 {
				out.FixedDelta = defaultFixedDelta
			}
			return out
		}
	}
	return component.Time{Delta: defaultDelta, FixedDelta: defaultFixedDelta}
}
