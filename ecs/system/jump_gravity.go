package system

import (
	"github.com/milk9111/gymroom/common"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type JumpGravitySystem struct{}

func NewJumpGravitySystem() *JumpGravitySystem {
	return &JumpGravitySystem{}
}

func (j *JumpGravitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := worldTime(w).FixedDelta

	ecs.ForEach3(w, component.LocomotionComponent.Kind(), component.RigidBodyComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, loco *component.Locomotion, body *component.RigidBody, input *component.Input) {
		if body.Kinematic || !body.UseGravity {
			return
		}
		vy := body.Velocity.Y()
		switch {
		case vy < 0:
			vy += common.Gravity * (loco.FallMultiplier - 1) * dt
		case vy > 0 && !input.Jump:
			vy += common.Gravity * (loco.LowJumpMultiplier - 1) * dt
		default:
			return
		}
		body.Velocity[1] = vy
	})
}
