package system

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type InputSource interface {
	Sample(input *component.Input)
}

// InputSystem is the only writer of Input. Everything downstream reads the
// sampled state.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var sampled component.Input
	if i != nil && i.source != nil {
		i.source.Sample(&sampled)
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		*input = sampled
	})
}
