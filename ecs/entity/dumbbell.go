package entity

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

const (
	defaultDumbbellMessage = "Press E to pick up dumbbell"
	defaultMaxAngle        = 45.0
	defaultLiftSpeed       = 90.0
	defaultLowerSpeed      = 30.0
)

// BuildDumbbell creates a liftable prop. It needs a rigid body and a
// collider, which are created here and never added later.
func (b *Builder) BuildDumbbell(w *ecs.World, spec prefabs.DumbbellSpec, source string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	a := &adder{w: w, e: e}

	lift := &component.Lift{CanLift: true}
	applyLiftTuning(spec, lift)

	add(a, component.TransformComponent.Kind(), transformOf(spec.Transform))
	add(a, component.RigidBodyComponent.Kind(), &component.RigidBody{Mass: orDefault(spec.Mass, 1), UseGravity: true})
	add(a, component.ColliderComponent.Kind(), &component.Collider{
		HalfExtents: spec.Collider.HalfExtents.Vec(),
		Radius:      spec.Collider.Radius,
		Layer:       ecs.LayerInteractable,
		Enabled:     true,
	})
	add(a, component.InteractableComponent.Kind(), interactableOf(nameOr(spec.Name, "dumbbell"), spec.Interactable, component.KindLift, defaultDumbbellMessage))
	add(a, component.LiftComponent.Kind(), lift)
	add(a, component.PrefabSourceComponent.Kind(), &component.PrefabSource{File: source})

	if a.err == nil {
		a.err = validate(w, e,
			require(component.TransformComponent.Kind()),
			require(component.RigidBodyComponent.Kind()),
			require(component.ColliderComponent.Kind()),
			require(component.InteractableComponent.Kind()),
		)
	}
	return finish(w, e, nameOr(spec.Name, "dumbbell"), a.err)
}

// ApplyDumbbellTuning refreshes tunables, leaving angle and hold state alone.
func ApplyDumbbellTuning(w *ecs.World, e ecs.Entity, spec prefabs.DumbbellSpec) {
	if lift, ok := ecs.Get(w, e, component.LiftComponent.Kind()); ok {
		applyLiftTuning(spec, lift)
		if lift.Pivot != nil {
			lift.Pivot.Offset = lift.ElbowOffset
		}
	}
	if interactable, ok := ecs.Get(w, e, component.InteractableComponent.Kind()); ok {
		applyInteractableTuning(spec.Interactable, interactable, defaultDumbbellMessage)
	}
}

func applyLiftTuning(spec prefabs.DumbbellSpec, lift *component.Lift) {
	lift.MaxAngle = orDefault(spec.MaxAngle, defaultMaxAngle)
	lift.LiftSpeed = orDefault(spec.LiftSpeed, defaultLiftSpeed)
	lift.LowerSpeed = orDefault(spec.LowerSpeed, defaultLowerSpeed)
	lift.ElbowOffset = spec.ElbowOffset.Vec()
	lift.GripOffset = spec.GripOffset.Vec()
	if lift.Angle > lift.MaxAngle {
		lift.Angle = lift.MaxAngle
	}
}

func interactableOf(name string, spec prefabs.InteractableSpec, kind component.InteractableKind, fallbackMessage string) *component.Interactable {
	out := &component.Interactable{Name: name, Kind: kind}
	if spec.Kind != "" {
		out.Kind = component.InteractableKind(spec.Kind)
	}
	applyInteractableTuning(spec, out, fallbackMessage)
	return out
}

func applyInteractableTuning(spec prefabs.InteractableSpec, out *component.Interactable, fallbackMessage string) {
	out.Message = nameOr(spec.Message, fallbackMessage)
	out.Distance = spec.Distance
	out.CanInteract = spec.Enabled()
	out.Condition = spec.Condition
}
