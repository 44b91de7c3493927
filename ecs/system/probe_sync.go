package system

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type ProbeSyncSystem struct{}

func NewProbeSyncSystem() *ProbeSyncSystem {
	return &ProbeSyncSystem{}
}

func (p *ProbeSyncSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, platform *component.Platform, transform *component.Transform) {
		pw.SetPlatform(uint64(e), transform.Position, platform.HalfExtents)
	})

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, collider *component.Collider, transform *component.Transform) {
		if !collider.Enabled || collider.Layer == 0 {
			pw.RemoveVolume(uint64(e))
			return
		}
		radius := collider.Radius
		if radius <= 0 {
			radius = collider.HalfExtents.X()
		}
		pw.SetVolume(uint64(e), transform.Position, radius, collider.HalfExtents.Y(), collider.Layer)
	})
}
