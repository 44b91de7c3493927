package system

import (
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type InteractableUpdateSystem struct{}

func NewInteractableUpdateSystem() *InteractableUpdateSystem {
	return &InteractableUpdateSystem{}
}

func (s *InteractableUpdateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock := worldTime(w)

	ecs.ForEach2(w, component.InteractorComponent.Kind(), component.InputComponent.Kind(), func(player ecs.Entity, interactor *component.Interactor, input *component.Input) {
		if !interactor.Session.Active() {
			return
		}
		target := ecs.Entity(interactor.Session.Target)
		interactable, ok := ecs.Get(w, target, component.InteractableComponent.Kind())
		if !ok {
			return
		}
		behavior, ok := behaviorFor(interactable.Kind)
		if !ok {
			return
		}
		behavior.Update(&InteractionContext{
			World:        w,
			Player:       player,
			Target:       target,
			Frame:        clock.Frame,
			Delta:        clock.Delta,
			Input:        input,
			Interactor:   interactor,
			Interactable: interactable,
		})
	})
}
