package system

import (
	"fmt"
	"log"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type EventLogSystem struct {
	Verbose bool
}

func NewEventLogSystem(verbose bool) *EventLogSystem {
	return &EventLogSystem{Verbose: verbose}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		ie, ok := evt.Data.(ecs.InteractionEvent)
		if evt.Type != ecs.InteractionEventType || !ok {
			continue
		}
		line := describeInteraction(ie)
		if s != nil && s.Verbose {
			log.Printf("interaction: %s", line)
		}
		if prompt, ok := ecs.Get(w, ie.Player, component.PromptComponent.Kind()); ok {
			prompt.Status = line
		}
	}
}

func describeInteraction(ie ecs.InteractionEvent) string {
	name := ie.Name
	if name == "" {
		name = ie.Target.String()
	}
	switch ie.Kind {
	case ecs.InteractionEngaged:
		return fmt.Sprintf("using %s", name)
	case ecs.InteractionReleased:
		return fmt.Sprintf("let go of %s", name)
	case ecs.InteractionRejected:
		return fmt.Sprintf("cannot use %s", name)
	case ecs.InteractionStale:
		return fmt.Sprintf("lost %s", name)
	default:
		return fmt.Sprintf("%s %s", ie.Kind, name)
	}
}
