package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/common"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

const maxArmAngle = 90.0

type DisplacementBehavior struct{}

func (DisplacementBehavior) Interact(ctx *InteractionContext) bool {
	w := ctx.World
	disp, ok := ecs.Get(w, ctx.Target, component.DisplacementComponent.Kind())
	if !ok {
		log.Printf("bar: %s has no displacement settings", ctx.name())
		return false
	}
	if disp.Hanging() || ctx.IsHeld() {
		return false
	}
	body, ok := ecs.Get(w, ctx.Player, component.RigidBodyComponent.Kind())
	if !ok {
		log.Printf("bar: player %s has no rigid body, cannot hang from %s", ctx.Player, ctx.name())
		return false
	}
	transform, ok := ecs.Get(w, ctx.Player, component.TransformComponent.Kind())
	if !ok {
		log.Printf("bar: player %s has no transform, cannot hang from %s", ctx.Player, ctx.name())
		return false
	}
	if !ctx.BeginSession() {
		return false
	}

	disp.OriginalPose = transform.Frame()
	disp.Player = uint64(ctx.Player)

	yaw := component.YawOf(disp.Start.Rotation)
	transform.Position = disp.Start.Position
	transform.Rotation = component.YawRotation(yaw)
	if look, ok := ecs.Get(w, ctx.Player, component.LookComponent.Kind()); ok {
		look.Yaw = yaw
	}

	body.Kinematic = true
	body.Velocity = mgl64.Vec3{}
	if loco, ok := ecs.Get(w, ctx.Player, component.LocomotionComponent.Kind()); ok {
		loco.Enabled = false
		loco.CurrentSpeed = 0
		loco.SpeedSmoothVelocity = 0
	}

	disp.Height = 0
	disp.Phase = component.PhaseReady
	disp.ArmAngle = 0
	if disp.ReleaseMessage != "" && ctx.Interactable != nil {
		ctx.Interactable.Message = disp.ReleaseMessage
	}
	setArmPose(w, ctx.Player, 0)
	return true
}

// Update follows a strict priority: release, descend, climb, leave the top,
// then passive sinking.
func (b DisplacementBehavior) Update(ctx *InteractionContext) {
	if !ctx.IsHeld() {
		return
	}
	w := ctx.World
	disp, ok := ecs.Get(w, ctx.Target, component.DisplacementComponent.Kind())
	if !ok {
		return
	}

	var input component.Input
	if ctx.Input != nil {
		input = *ctx.Input
	}
	if input.ReleasePressed {
		b.Drop(ctx)
		return
	}

	dt := ctx.Delta
	switch {
	case disp.Phase == component.PhaseDescending:
		disp.Height = common.MoveToward(disp.Height, 0, disp.DropSpeed*dt)
		disp.ArmAngle = common.MoveToward(disp.ArmAngle, 0, disp.ArmAnimationSpeed*dt)
		if disp.Height <= 0 {
			disp.Height = 0
			disp.Phase = component.PhaseReady
		}
	case input.ClimbHeld && disp.Phase != component.PhaseAtTop:
		disp.Phase = component.PhasePullingUp
		disp.Height = common.MoveToward(disp.Height, 1, disp.PullUpSpeed*dt)
		disp.ArmAngle = common.MoveToward(disp.ArmAngle, maxArmAngle, disp.ArmAnimationSpeed*dt)
		if disp.Height >= 1 {
			disp.Height = 1
			disp.Phase = component.PhaseAtTop
		}
	case disp.Phase == component.PhaseAtTop && !input.ClimbHeld:
		disp.Phase = component.PhaseDescending
	default:
		if disp.Phase == component.PhasePullingUp {
			disp.Phase = component.PhaseReady
		}
		if disp.Phase == component.PhaseReady {
			disp.Height = common.MoveToward(disp.Height, 0, disp.DropSpeed*dt)
			disp.ArmAngle = common.MoveToward(disp.ArmAngle, 0, disp.ArmAnimationSpeed*dt)
		}
	}

	disp.Height = common.Clamp(disp.Height, 0, 1)
	disp.ArmAngle = common.Clamp(disp.ArmAngle, 0, maxArmAngle)

	if transform, ok := ecs.Get(w, ctx.Player, component.TransformComponent.Kind()); ok {
		transform.Position = disp.PositionAt(disp.Height)
	}
	setArmPose(w, ctx.Player, disp.ArmAngle)
}

// Drop is safe in any phase. It leaves the player alone when nobody hangs.
func (DisplacementBehavior) Drop(ctx *InteractionContext) {
	w := ctx.World
	disp, ok := ecs.Get(w, ctx.Target, component.DisplacementComponent.Kind())
	if !ok {
		ctx.EndSession()
		return
	}
	if !disp.Hanging() {
		ctx.EndSession()
		return
	}

	player := ecs.Entity(disp.Player)
	if body, ok := ecs.Get(w, player, component.RigidBodyComponent.Kind()); ok {
		body.Kinematic = false
	}
	if loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind()); ok {
		loco.Enabled = true
	}
	if disp.RestorePoseOnDrop {
		if transform, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			transform.SetFrame(disp.OriginalPose)
		}
		if look, ok := ecs.Get(w, player, component.LookComponent.Kind()); ok {
			look.Yaw = component.YawOf(disp.OriginalPose.Rotation)
		}
	}
	setArmPose(w, player, 0)

	ctx.EndSession()
	disp.Phase = component.PhaseReady
	disp.Height = 0
	disp.ArmAngle = 0
	disp.Player = 0
	if disp.EngageMessage != "" && ctx.Interactable != nil {
		ctx.Interactable.Message = disp.EngageMessage
	}
}
