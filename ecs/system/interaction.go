package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

// InteractionSystem owns the interaction session of every player. A player
// holds at most one interactable at a time.
type InteractionSystem struct {
	conditions *conditions
}

func NewInteractionSystem() *InteractionSystem {
	return &InteractionSystem{conditions: newConditions()}
}

func (s *InteractionSystem) ForgetCondition(path string) {
	if s == nil {
		return
	}
	s.conditions.Forget(path)
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if s.conditions == nil {
		s.conditions = newConditions()
	}
	clock := worldTime(w)

	ecs.ForEach3(w, component.InteractorComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(player ecs.Entity, interactor *component.Interactor, transform *component.Transform, input *component.Input) {
		session := &interactor.Session
		if session.Active() {
			s.checkStale(w, player, interactor)
		}

		released := false
		if session.Active() && input.ReleasePressed {
			target := ecs.Entity(session.Target)
			interactable, _ := ecs.Get(w, target, component.InteractableComponent.Kind())
			drop(&InteractionContext{
				World:        w,
				Player:       player,
				Target:       target,
				Frame:        clock.Frame,
				Delta:        clock.Delta,
				Input:        input,
				Interactor:   interactor,
				Interactable: interactable,
			})
			session.Clear()
			released = true
		}

		interactor.Candidate = 0
		if !session.Active() {
			if candidate, ok := s.scan(w, player, interactor, transform); ok {
				interactor.Candidate = uint64(candidate)
			}
		}

		updatePrompt(w, player, interactor)

		if released || !input.EngagePressed || session.Active() || interactor.Candidate == 0 {
			return
		}

		target := ecs.Entity(interactor.Candidate)
		interactable, ok := ecs.Get(w, target, component.InteractableComponent.Kind())
		if !ok {
			return
		}
		interact(&InteractionContext{
			World:        w,
			Player:       player,
			Target:       target,
			Frame:        clock.Frame,
			Delta:        clock.Delta,
			Input:        input,
			Interactor:   interactor,
			Interactable: interactable,
		})
		updatePrompt(w, player, interactor)
	})
}

func (s *InteractionSystem) checkStale(w *ecs.World, player ecs.Entity, interactor *component.Interactor) {
	target := ecs.Entity(interactor.Session.Target)
	if ecs.Has(w, target, component.InteractableComponent.Kind()) {
		return
	}
	log.Printf("interaction: player %s held %s which no longer exists, clearing session", player, target)
	interactor.Session.Clear()
	restorePlayerControl(w, player)
	w.Events().Push(ecs.Event{
		Type: ecs.InteractionEventType,
		Data: ecs.InteractionEvent{Kind: ecs.InteractionStale, Player: player, Target: target},
	})
}

// Both the ray and the overlap fallback go through canInteract.
func (s *InteractionSystem) scan(w *ecs.World, player ecs.Entity, interactor *component.Interactor, transform *component.Transform) (ecs.Entity, bool) {
	pw := w.PhysicsWorld()
	if pw == nil || interactor.Radius <= 0 {
		return 0, false
	}

	view := transform.Frame()
	if look, ok := ecs.Get(w, player, component.LookComponent.Kind()); ok {
		view = look.ViewFrame(transform.Position)
	}

	if owner, ok := pw.Raycast(view.Position, view.Forward(), interactor.Radius, interactor.LayerMask); ok {
		target := ecs.Entity(owner)
		if target != player && s.canInteract(w, player, transform.Position, target) {
			return target, true
		}
	}

	best := ecs.Entity(0)
	bestDist := math.Inf(1)
	for _, owner := range pw.Overlap(transform.Position, interactor.Radius, interactor.LayerMask) {
		target := ecs.Entity(owner)
		if target == player {
			continue
		}
		dist, ok := distanceTo(w, transform.Position, target)
		if !ok || dist >= interactor.Radius || dist >= bestDist {
			continue
		}
		if !s.canInteract(w, player, transform.Position, target) {
			continue
		}
		best = target
		bestDist = dist
	}
	return best, best != 0
}

func (s *InteractionSystem) canInteract(w *ecs.World, player ecs.Entity, from mgl64.Vec3, target ecs.Entity) bool {
	interactable, ok := ecs.Get(w, target, component.InteractableComponent.Kind())
	if !ok || !interactable.CanInteract {
		return false
	}
	dist, ok := distanceTo(w, from, target)
	if !ok {
		return false
	}
	if interactable.Distance > 0 && dist > interactable.Distance {
		return false
	}
	if interactable.Condition == "" {
		return true
	}

	in := conditionInput{Distance: dist}
	if loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind()); ok {
		in.Grounded = loco.Grounded
		in.Running = loco.Running
	}
	if interactor, ok := ecs.Get(w, player, component.InteractorComponent.Kind()); ok {
		in.Holding = interactor.Session.Active()
	}
	return s.conditions.Allow(interactable.Condition, in)
}

func distanceTo(w *ecs.World, from mgl64.Vec3, target ecs.Entity) (float64, bool) {
	transform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return transform.Position.Sub(from).Len(), true
}

func updatePrompt(w *ecs.World, player ecs.Entity, interactor *component.Interactor) {
	prompt, ok := ecs.Get(w, player, component.PromptComponent.Kind())
	if !ok {
		return
	}

	shown := interactor.Candidate
	if interactor.Session.Active() {
		shown = interactor.Session.Target
	}
	prompt.Message = ""
	prompt.Visible = false
	if shown == 0 {
		return
	}
	if interactable, ok := ecs.Get(w, ecs.Entity(shown), component.InteractableComponent.Kind()); ok {
		prompt.Message = interactable.Message
		prompt.Visible = interactable.Message != ""
	}
}

func restorePlayerControl(w *ecs.World, player ecs.Entity) {
	if body, ok := ecs.Get(w, player, component.RigidBodyComponent.Kind()); ok {
		body.Kinematic = false
	}
	if loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind()); ok {
		loco.Enabled = true
	}
	if pose, ok := ecs.Get(w, player, component.ArmPoseComponent.Kind()); ok {
		pose.Angle = 0
	}
}
