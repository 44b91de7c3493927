package entity

import (
	"fmt"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

// Level is what BuildLevel created.
type Level struct {
	Name      string
	Player    ecs.Entity
	Platforms []ecs.Entity
	Props     []ecs.Entity
}

// LoadLevel reads a level file and builds it together with the player.
func (b *Builder) LoadLevel(w *ecs.World, filename string) (*Level, error) {
	spec, err := prefabs.LoadSpec[prefabs.LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	return b.BuildLevel(w, spec)
}

func (b *Builder) BuildLevel(w *ecs.World, spec prefabs.LevelSpec) (*Level, error) {
	level := &Level{Name: spec.Name}

	for i, p := range spec.Platforms {
		e, err := BuildPlatform(w, p)
		if err != nil {
			return nil, fmt.Errorf("entity: level %s platform %d: %w", spec.Name, i, err)
		}
		level.Platforms = append(level.Platforms, e)
	}

	for i, placement := range spec.Props {
		e, err := b.BuildPlacement(w, placement)
		if err != nil {
			return nil, fmt.Errorf("entity: level %s prop %d: %w", spec.Name, i, err)
		}
		level.Props = append(level.Props, e)
	}

	playerSpec, err := prefabs.LoadSpec[prefabs.PlayerSpec](prefabs.PlayerFile)
	if err != nil {
		return nil, err
	}
	if spec.Spawn != (prefabs.TransformSpec{}) {
		playerSpec.Transform = spec.Spawn
	}
	player, err := b.BuildPlayer(w, playerSpec)
	if err != nil {
		return nil, err
	}
	level.Player = player
	return level, nil
}

func BuildPlatform(w *ecs.World, spec prefabs.PlatformSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	a := &adder{w: w, e: e}
	add(a, component.TransformComponent.Kind(), &component.Transform{Position: spec.Center.Vec()})
	platform := &component.Platform{HalfExtents: spec.HalfExtents.Vec()}
	if spec.Color != nil {
		platform.Tint = spec.Color.Color
	}
	add(a, component.PlatformComponent.Kind(), platform)
	return finish(w, e, nameOr(spec.Name, "platform"), a.err)
}

// BuildPlacement builds the prefab of a level placement. The interactable
// kind in the prefab picks the builder.
func (b *Builder) BuildPlacement(w *ecs.World, placement prefabs.PlacementSpec) (ecs.Entity, error) {
	probe, err := prefabs.LoadOverlaid[struct {
		Interactable prefabs.InteractableSpec `yaml:"interactable"`
	}](placement.Prefab, placement.Overrides)
	if err != nil {
		return 0, err
	}

	var e ecs.Entity
	switch component.InteractableKind(probe.Interactable.Kind) {
	case component.KindLift:
		spec, err := prefabs.LoadOverlaid[prefabs.DumbbellSpec](placement.Prefab, placement.Overrides)
		if err != nil {
			return 0, err
		}
		if placement.Transform != nil {
			spec.Transform = *placement.Transform
		}
		if e, err = b.BuildDumbbell(w, spec, placement.Prefab); err != nil {
			return 0, err
		}
	case component.KindDisplacement:
		spec, err := prefabs.LoadOverlaid[prefabs.PullUpBarSpec](placement.Prefab, placement.Overrides)
		if err != nil {
			return 0, err
		}
		if placement.Transform != nil {
			moveBar(&spec, *placement.Transform)
		}
		if e, err = b.BuildPullUpBar(w, spec, placement.Prefab); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("entity: %s: unknown interactable kind %q", placement.Prefab, probe.Interactable.Kind)
	}

	if source, ok := ecs.Get(w, e, component.PrefabSourceComponent.Kind()); ok {
		source.Overrides = placement.Overrides
	}
	return e, nil
}

// moveBar relocates a bar and carries its anchors along.
func moveBar(spec *prefabs.PullUpBarSpec, to prefabs.TransformSpec) {
	delta := to.Position.Vec().Sub(spec.Transform.Position.Vec())
	shift := func(t *prefabs.TransformSpec) {
		if t == nil {
			return
		}
		moved := *t
		p := t.Position.Vec().Add(delta)
		moved.Position = prefabs.Vec3Spec{X: p.X(), Y: p.Y(), Z: p.Z()}
		moved.Yaw += to.Yaw - spec.Transform.Yaw
		*t = moved
	}
	shift(spec.Start)
	shift(spec.End)
	spec.Transform = to
}
