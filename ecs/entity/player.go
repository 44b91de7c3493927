package entity

import (
	"math"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

// Player defaults, used when a prefab leaves a tunable at zero.
const (
	defaultWalkSpeed         = 5.0
	defaultRunSpeed          = 8.0
	defaultJumpForce         = 5.0
	defaultSpeedSmoothTime   = 0.2
	defaultFallMultiplier    = 2.5
	defaultLowJumpMultiplier = 2.0
	defaultGroundCheck       = 0.4
	defaultSensitivity       = 2.0
	defaultLookDelay         = 0.5
	defaultInteractionRadius = 3.0
)

func NewPlayer(w *ecs.World, b *Builder) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](prefabs.PlayerFile)
	if err != nil {
		return 0, err
	}
	return b.BuildPlayer(w, spec)
}

func (b *Builder) BuildPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	a := &adder{w: w, e: e}

	transform := transformOf(spec.Transform)
	mass := orDefault(spec.Mass, 1)

	add(a, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(a, component.TransformComponent.Kind(), transform)
	add(a, component.RigidBodyComponent.Kind(), &component.RigidBody{Mass: mass, UseGravity: true})
	add(a, component.ColliderComponent.Kind(), &component.Collider{
		HalfExtents: spec.Collider.HalfExtents.Vec(),
		Radius:      spec.Collider.Radius,
		Enabled:     true,
	})
	add(a, component.InputComponent.Kind(), &component.Input{})

	look := &component.Look{Enabled: true, Yaw: spec.Transform.Yaw}
	loco := &component.Locomotion{Enabled: true}
	interactor := &component.Interactor{LayerMask: ecs.LayerInteractable}
	hand := &component.HandAnchor{}
	b.applyPlayerTuning(spec, look, loco, interactor, hand)

	add(a, component.LookComponent.Kind(), look)
	add(a, component.LocomotionComponent.Kind(), loco)
	add(a, component.InteractorComponent.Kind(), interactor)
	add(a, component.HandAnchorComponent.Kind(), hand)
	add(a, component.PromptComponent.Kind(), &component.Prompt{})
	add(a, component.ArmPoseComponent.Kind(), &component.ArmPose{})
	add(a, component.AudioComponent.Kind(), b.buildAudio(spec.Audio))
	add(a, component.PrefabSourceComponent.Kind(), &component.PrefabSource{File: prefabs.PlayerFile})

	if a.err == nil {
		a.err = validate(w, e,
			require(component.TransformComponent.Kind()),
			require(component.RigidBodyComponent.Kind()),
			require(component.ColliderComponent.Kind()),
			require(component.InputComponent.Kind()),
			require(component.InteractorComponent.Kind()),
		)
	}
	return finish(w, e, nameOr(spec.Name, "player"), a.err)
}

// ApplyPlayerTuning pushes tunables from spec into a live player without
// touching its runtime state.
func (b *Builder) ApplyPlayerTuning(w *ecs.World, e ecs.Entity, spec prefabs.PlayerSpec) {
	look, _ := ecs.Get(w, e, component.LookComponent.Kind())
	loco, _ := ecs.Get(w, e, component.LocomotionComponent.Kind())
	interactor, _ := ecs.Get(w, e, component.InteractorComponent.Kind())
	hand, _ := ecs.Get(w, e, component.HandAnchorComponent.Kind())
	b.applyPlayerTuning(spec, look, loco, interactor, hand)

	if body, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok {
		body.Mass = orDefault(spec.Mass, 1)
	}
	if collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		collider.HalfExtents = spec.Collider.HalfExtents.Vec()
		collider.Radius = spec.Collider.Radius
	}
}

func (b *Builder) applyPlayerTuning(spec prefabs.PlayerSpec, look *component.Look, loco *component.Locomotion, interactor *component.Interactor, hand *component.HandAnchor) {
	if look != nil {
		look.Sensitivity = orDefault(spec.MouseSensitivity, defaultSensitivity)
		look.EyeHeight = spec.EyeHeight
		look.DelayFrames = int(math.Round(orDefault(spec.LookDelay, defaultLookDelay) * float64(b.tps())))
	}
	if loco != nil {
		loco.WalkSpeed = orDefault(spec.WalkSpeed, defaultWalkSpeed)
		loco.RunSpeed = orDefault(spec.RunSpeed, defaultRunSpeed)
		loco.JumpForce = orDefault(spec.JumpForce, defaultJumpForce)
		loco.SpeedSmoothTime = orDefault(spec.SpeedSmoothTime, defaultSpeedSmoothTime)
		loco.FallMultiplier = orDefault(spec.FallMultiplier, defaultFallMultiplier)
		loco.LowJumpMultiplier = orDefault(spec.LowJumpMultiplier, defaultLowJumpMultiplier)
		loco.GroundCheckDistance = orDefault(spec.GroundCheckDistance, defaultGroundCheck)
		loco.FootOffset = spec.FootOffset.Vec()
	}
	if interactor != nil {
		interactor.Radius = orDefault(spec.InteractionRadius, defaultInteractionRadius)
	}
	if hand != nil {
		hand.Offset = spec.HandOffset.Vec()
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
