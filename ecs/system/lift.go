package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type LiftBehavior struct{}

func (LiftBehavior) Interact(ctx *InteractionContext) bool {
	w := ctx.World
	lift, ok := ecs.Get(w, ctx.Target, component.LiftComponent.Kind())
	if !ok {
		log.Printf("lift: %s has no lift settings", ctx.name())
		return false
	}
	if ctx.IsHeld() {
		return false
	}
	if !ecs.Has(w, ctx.Player, component.HandAnchorComponent.Kind()) {
		log.Printf("lift: player %s has no hand anchor, cannot pick up %s", ctx.Player, ctx.name())
		return false
	}
	if !ctx.BeginSession() {
		return false
	}

	lift.OriginalParent = nil
	if current, ok := ecs.Get(w, ctx.Target, component.AttachmentComponent.Kind()); ok && current.Parent != uint64(ctx.Player) {
		original := *current
		lift.OriginalParent = &original
	}

	pivot := &component.PivotAnchor{Offset: lift.ElbowOffset}
	if err := ecs.Add(w, ctx.Target, component.AttachmentComponent.Kind(), &component.Attachment{
		Parent: uint64(ctx.Player),
		Socket: component.SocketHand,
		Local:  pivot.Frame().Compose(lift.GripFrame()),
	}); err != nil {
		log.Printf("lift: attach %s to %s: %v", ctx.name(), ctx.Player, err)
		lift.OriginalParent = nil
		ctx.EndSession()
		return false
	}

	if body, ok := ecs.Get(w, ctx.Target, component.RigidBodyComponent.Kind()); ok {
		body.Kinematic = true
		body.Velocity = mgl64.Vec3{}
	}
	if collider, ok := ecs.Get(w, ctx.Target, component.ColliderComponent.Kind()); ok {
		collider.Enabled = false
	}

	lift.Pivot = pivot
	lift.Angle = 0
	lift.Lifting = false
	lift.CanLift = true
	setArmPose(w, ctx.Player, 0)
	return true
}

func (LiftBehavior) Update(ctx *InteractionContext) {
	if !ctx.IsHeld() {
		return
	}
	w := ctx.World
	lift, ok := ecs.Get(w, ctx.Target, component.LiftComponent.Kind())
	if !ok {
		return
	}

	lift.Lifting = ctx.Input != nil && ctx.Input.LiftHeld && lift.CanLift
	if lift.Lifting {
		lift.Angle += lift.LiftSpeed * ctx.Delta
		if lift.Angle >= lift.MaxAngle {
			lift.Angle = lift.MaxAngle
			lift.CanLift = false
		}
	} else {
		lift.Angle -= lift.LowerSpeed * ctx.Delta
		if lift.Angle <= 0 {
			lift.Angle = 0
			lift.CanLift = true
		}
	}

	if lift.Pivot == nil {
		lift.Pivot = &component.PivotAnchor{Offset: lift.ElbowOffset}
	}
	lift.Pivot.Angle = lift.Angle
	if attachment, ok := ecs.Get(w, ctx.Target, component.AttachmentComponent.Kind()); ok {
		attachment.Local = lift.Pivot.Frame().Compose(lift.GripFrame())
	}
	setArmPose(w, ctx.Player, lift.Angle)
}

func (LiftBehavior) Drop(ctx *InteractionContext) {
	if !ctx.IsHeld() {
		return
	}
	w := ctx.World
	lift, ok := ecs.Get(w, ctx.Target, component.LiftComponent.Kind())
	if !ok {
		ctx.EndSession()
		return
	}

	if transform, ok := ecs.Get(w, ctx.Target, component.TransformComponent.Kind()); ok {
		if attachment, ok := ecs.Get(w, ctx.Target, component.AttachmentComponent.Kind()); ok {
			if frame, ok := attachmentFrame(w, attachment); ok {
				transform.SetFrame(frame)
			}
		}
	}

	if lift.OriginalParent != nil {
		restored := *lift.OriginalParent
		if err := ecs.Add(w, ctx.Target, component.AttachmentComponent.Kind(), &restored); err != nil {
			log.Printf("lift: restore parent of %s: %v", ctx.name(), err)
		}
		lift.OriginalParent = nil
	} else {
		ecs.Remove(w, ctx.Target, component.AttachmentComponent.Kind())
	}
	lift.Pivot = nil

	if body, ok := ecs.Get(w, ctx.Target, component.RigidBodyComponent.Kind()); ok {
		body.Kinematic = false
		body.Velocity = mgl64.Vec3{}
	}
	if collider, ok := ecs.Get(w, ctx.Target, component.ColliderComponent.Kind()); ok {
		collider.Enabled = true
	}

	lift.Angle = 0
	lift.Lifting = false
	lift.CanLift = true
	setArmPose(w, ctx.Player, 0)
	ctx.EndSession()
}

func setArmPose(w *ecs.World, player ecs.Entity, angle float64) {
	if pose, ok := ecs.Get(w, player, component.ArmPoseComponent.Kind()); ok {
		pose.Angle = angle
	}
}
