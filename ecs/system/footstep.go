package system

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

const walkClip = "walk"

type FootstepSystem struct{}

func NewFootstepSystem() *FootstepSystem {
	return &FootstepSystem{}
}

func (f *FootstepSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.LocomotionComponent.Kind(), component.AudioComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, loco *component.Locomotion, audioComp *component.Audio, input *component.Input) {
		idx := audioComp.Index(walkClip)
		if idx < 0 || idx >= len(audioComp.Play) || idx >= len(audioComp.Stop) {
			return
		}
		walking := loco.Enabled && loco.Grounded && input.Moving()
		audioComp.Play[idx] = walking
		audioComp.Stop[idx] = !walking
	})
}
