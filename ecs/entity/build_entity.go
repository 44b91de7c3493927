package entity

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

// ErrMissingCapability is returned when a built entity lacks a component its
// behavior depends on.
var ErrMissingCapability = errors.New("entity: missing capability")

// AudioLoader turns an audio spec into a playable clip.
type AudioLoader func(spec prefabs.AudioSpec) (component.AudioPlayer, error)

// Builder turns prefab specs into entities.
type Builder struct {
	// TPS converts second-based tunables into frame counts.
	TPS int
	// LoadAudio is optional; without it audio slots are created silent.
	LoadAudio AudioLoader
}

func NewBuilder(tps int, loadAudio AudioLoader) *Builder {
	if tps <= 0 {
		tps = 60
	}
	return &Builder{TPS: tps, LoadAudio: loadAudio}
}

func (b *Builder) tps() int {
	if b == nil || b.TPS <= 0 {
		return 60
	}
	return b.TPS
}

// adder collects the first error of a run of ecs.Add calls.
type adder struct {
	w   *ecs.World
	e   ecs.Entity
	err error
}

func add[T any](a *adder, kind component.ComponentKind[T], value *T) {
	if a.err != nil {
		return
	}
	if err := ecs.Add(a.w, a.e, kind, value); err != nil {
		a.err = fmt.Errorf("add %s: %w", kind, err)
	}
}

type capability struct {
	name string
	has  func(w *ecs.World, e ecs.Entity) bool
}

func require[T any](kind component.ComponentKind[T]) capability {
	return capability{
		name: kind.String(),
		has:  func(w *ecs.World, e ecs.Entity) bool { return ecs.Has(w, e, kind) },
	}
}

// validate checks every capability once, at construction.
func validate(w *ecs.World, e ecs.Entity, caps ...capability) error {
	var missing []string
	for _, c := range caps {
		if !c.has(w, e) {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCapability, strings.Join(missing, ", "))
	}
	return nil
}

// finish destroys a half built entity when err is set.
func finish(w *ecs.World, e ecs.Entity, name string, err error) (ecs.Entity, error) {
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: build %s: %w", name, err)
	}
	return e, nil
}

func (b *Builder) buildAudio(specs []prefabs.AudioSpec) *component.Audio {
	out := &component.Audio{
		Names:   make([]string, 0, len(specs)),
		Players: make([]component.AudioPlayer, 0, len(specs)),
		Volume:  make([]float64, 0, len(specs)),
		Play:    make([]bool, len(specs)),
		Stop:    make([]bool, len(specs)),
	}
	for _, spec := range specs {
		var player component.AudioPlayer
		if b != nil && b.LoadAudio != nil {
			p, err := b.LoadAudio(spec)
			if err != nil {
				log.Printf("entity: audio %s: %v", spec.Name, err)
			} else {
				player = p
			}
		}
		volume := spec.Volume
		if volume <= 0 {
			volume = 1
		}
		out.Names = append(out.Names, spec.Name)
		out.Players = append(out.Players, player)
		out.Volume = append(out.Volume, volume)
	}
	return out
}

func transformOf(spec prefabs.TransformSpec) *component.Transform {
	return &component.Transform{
		Position: spec.Position.Vec(),
		Rotation: component.YawRotation(spec.Yaw),
	}
}

func frameOf(spec prefabs.TransformSpec) component.Frame {
	return component.Frame{
		Position: spec.Position.Vec(),
		Rotation: component.YawRotation(spec.Yaw),
	}
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
