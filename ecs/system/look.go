package system

import (
	"github.com/milk9111/gymroom/common"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

const maxPitch = 90.0

// LookSystem ignores input for the first DelayFrames frames.
type LookSystem struct{}

func NewLookSystem() *LookSystem {
	return &LookSystem{}
}

func (l *LookSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.LookComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, look *component.Look, transform *component.Transform, input *component.Input) {
		if !look.Enabled {
			return
		}
		if !look.Ready {
			look.Elapsed++
			if look.Elapsed < look.DelayFrames {
				return
			}
			look.Ready = true
		}

		look.Yaw += input.LookX * look.Sensitivity
		look.Pitch = common.Clamp(look.Pitch-input.LookY*look.Sensitivity, -maxPitch, maxPitch)
		transform.Rotation = component.YawRotation(look.Yaw)
	})
}
