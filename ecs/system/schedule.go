package system

import "github.com/milk9111/gymroom/ecs"

// reload may be nil.
func NewFrameScheduler(source InputSource, interaction *InteractionSystem, reload *TuningReloadSystem, verbose bool) *ecs.Scheduler {
	if interaction == nil {
		interaction = NewInteractionSystem()
	}
	s := ecs.NewScheduler(NewClockSystem())
	if reload != nil {
		s.Add(reload)
	}
	s.Add(NewInputSystem(source))
	s.Add(NewProbeSyncSystem())
	s.Add(NewLookSystem())
	s.Add(NewLocomotionSystem())
	s.Add(interaction)
	s.Add(NewInteractableUpdateSystem())
	s.Add(NewHierarchySystem())
	s.Add(NewFootstepSystem())
	s.Add(NewAudioSystem())
	s.Add(NewEventLogSystem(verbose))
	return s
}

func NewFixedScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewJumpGravitySystem(),
		NewPhysicsSystem(),
	)
}
