package system

import (
	"github.com/milk9111/gymroom/common"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

const landingEpsilon = 1e-3

// Kinematic and attached bodies are left to whoever drives them.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := worldTime(w).FixedDelta
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.RigidBody, transform *component.Transform) {
		if body.Kinematic || ecs.Has(w, e, component.AttachmentComponent.Kind()) {
			return
		}

		halfHeight := 0.0
		if collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			if !collider.Enabled {
				return
			}
			halfHeight = collider.HalfExtents.Y()
		}

		if body.UseGravity {
			body.Velocity[1] += common.Gravity * dt
		}

		prevBottom := transform.Position.Y() - halfHeight
		next := transform.Position.Add(body.Velocity.Mul(dt))

		if pw != nil && body.Velocity.Y() <= 0 {
			top, ok := pw.GroundHeight(next.X(), next.Z(), prevBottom+landingEpsilon)
			if ok && next.Y()-halfHeight < top {
				next[1] = top + halfHeight
				body.Velocity[1] = 0
			}
		}

		transform.Position = next
	})
}
