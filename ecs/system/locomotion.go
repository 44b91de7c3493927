package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/common"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (l *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := worldTime(w).Delta
	pw := w.PhysicsWorld()

	ecs.ForEach4(w, component.LocomotionComponent.Kind(), component.TransformComponent.Kind(), component.RigidBodyComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, loco *component.Locomotion, transform *component.Transform, body *component.RigidBody, input *component.Input) {
		foot := transform.Position.Add(loco.FootOffset)
		loco.Grounded = pw.Grounded(foot, loco.GroundCheckDistance)

		if !loco.Enabled {
			return
		}

		moving := input.Moving()
		target := 0.0
		if moving {
			target = loco.WalkSpeed
			if input.Run {
				target = loco.RunSpeed
			}
		}
		loco.Running = moving && input.Run
		loco.CurrentSpeed = common.SmoothDamp(loco.CurrentSpeed, target, &loco.SpeedSmoothVelocity, loco.SpeedSmoothTime, dt)

		frame := transform.Frame()
		dir := frame.Right().Mul(input.MoveX).Add(frame.Forward().Mul(input.MoveZ))
		dir = mgl64.Vec3{dir.X(), 0, dir.Z()}
		if dir.Len() > 1 {
			dir = dir.Normalize()
		}
		move := dir.Mul(loco.CurrentSpeed)
		body.Velocity = mgl64.Vec3{move.X(), body.Velocity.Y(), move.Z()}

		if input.JumpPressed && loco.Grounded {
			body.AddImpulse(mgl64.Vec3{0, loco.JumpForce, 0})
		}
	})
}
