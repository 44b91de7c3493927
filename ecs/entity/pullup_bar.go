package entity

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

const (
	defaultBarEngageMessage  = "Press E to hang on pull-up bar"
	defaultBarReleaseMessage = "Press G to drop from bar"
	defaultPullUpSpeed       = 2.0
	defaultDropSpeed         = 1.0
	defaultMaxHeight         = 0.5
	defaultArmAnimationSpeed = 90.0
)

// BuildPullUpBar creates a bar the player hangs from and climbs.
func (b *Builder) BuildPullUpBar(w *ecs.World, spec prefabs.PullUpBarSpec, source string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	a := &adder{w: w, e: e}
	name := nameOr(spec.Name, "pullup_bar")

	disp := &component.Displacement{}
	applyDisplacementTuning(name, spec, disp)

	interactable := interactableOf(name, spec.Interactable, component.KindDisplacement, disp.EngageMessage)
	if spec.Interactable.Message == "" {
		interactable.Message = disp.EngageMessage
	}

	add(a, component.TransformComponent.Kind(), transformOf(spec.Transform))
	add(a, component.ColliderComponent.Kind(), &component.Collider{
		HalfExtents: spec.Collider.HalfExtents.Vec(),
		Radius:      spec.Collider.Radius,
		Layer:       ecs.LayerInteractable,
		Enabled:     true,
	})
	add(a, component.InteractableComponent.Kind(), interactable)
	add(a, component.DisplacementComponent.Kind(), disp)
	add(a, component.PrefabSourceComponent.Kind(), &component.PrefabSource{File: source})

	if a.err == nil {
		a.err = validate(w, e,
			require(component.TransformComponent.Kind()),
			require(component.ColliderComponent.Kind()),
			require(component.InteractableComponent.Kind()),
		)
	}
	return finish(w, e, name, a.err)
}

// ApplyPullUpBarTuning refreshes speeds and anchors. The hang state and the
// message currently shown are left alone while someone hangs.
func ApplyPullUpBarTuning(w *ecs.World, e ecs.Entity, spec prefabs.PullUpBarSpec) {
	disp, ok := ecs.Get(w, e, component.DisplacementComponent.Kind())
	if !ok {
		return
	}
	name := nameOr(spec.Name, "pullup_bar")
	applyDisplacementTuning(name, spec, disp)

	interactable, ok := ecs.Get(w, e, component.InteractableComponent.Kind())
	if !ok {
		return
	}
	message := interactable.Message
	applyInteractableTuning(spec.Interactable, interactable, disp.EngageMessage)
	if disp.Hanging() {
		interactable.Message = message
	}
}

func applyDisplacementTuning(name string, spec prefabs.PullUpBarSpec, disp *component.Displacement) {
	disp.PullUpSpeed = orDefault(spec.PullUpSpeed, defaultPullUpSpeed)
	disp.DropSpeed = orDefault(spec.DropSpeed, defaultDropSpeed)
	disp.MaxHeight = orDefault(spec.MaxHeight, defaultMaxHeight)
	disp.ArmAnimationSpeed = orDefault(spec.ArmAnimationSpeed, defaultArmAnimationSpeed)
	disp.EngageMessage = nameOr(spec.EngageMessage, nameOr(spec.Interactable.Message, defaultBarEngageMessage))
	disp.ReleaseMessage = nameOr(spec.ReleaseMessage, defaultBarReleaseMessage)
	disp.RestorePoseOnDrop = spec.RestorePoseOnDrop

	if spec.Start != nil {
		disp.Start = frameOf(*spec.Start)
	} else {
		log.Printf("bar: %s has no start anchor, hanging from the bar itself", name)
		disp.Start = frameOf(spec.Transform)
	}
	if spec.End != nil {
		disp.End = frameOf(*spec.End)
	} else {
		disp.End = component.Frame{
			Position: disp.Start.Position.Add(mgl64.Vec3{0, disp.MaxHeight, 0}),
			Rotation: disp.Start.Rotation,
		}
	}
}
