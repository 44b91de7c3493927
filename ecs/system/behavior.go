package system

import (
	"log"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type InteractionContext struct {
	World  *ecs.World
	Player ecs.Entity
	Target ecs.Entity
	Frame  uint64
	Delta  float64

	Input        *component.Input
	Interactor   *component.Interactor
	Interactable *component.Interactable
}

func (ctx *InteractionContext) IsHeld() bool {
	return ctx != nil && ctx.Interactor != nil && ctx.Interactor.Session.Holds(uint64(ctx.Target))
}

func (ctx *InteractionContext) BeginSession() bool {
	if ctx == nil || ctx.Interactor == nil || ctx.Interactable == nil {
		return false
	}
	return ctx.Interactor.Session.Begin(uint64(ctx.Target), ctx.Interactable.Kind, ctx.Frame)
}

func (ctx *InteractionContext) EndSession() {
	if ctx == nil || ctx.Interactor == nil {
		return
	}
	ctx.Interactor.Session.End(uint64(ctx.Target))
}

func (ctx *InteractionContext) name() string {
	if ctx == nil || ctx.Interactable == nil || ctx.Interactable.Name == "" {
		return "interactable"
	}
	return ctx.Interactable.Name
}

// Behavior is the variant logic of an interactable kind. Interact reports
// whether a session started. Drop and Interact must leave state untouched
// when they cannot proceed.
type Behavior interface {
	Interact(ctx *InteractionContext) bool
	Drop(ctx *InteractionContext)
	Update(ctx *InteractionContext)
}

var behaviorRegistry = map[component.InteractableKind]Behavior{
	component.KindLift:         LiftBehavior{},
	component.KindDisplacement: DisplacementBehavior{},
}

func RegisterBehavior(kind component.InteractableKind, behavior Behavior) {
	if kind == "" || behavior == nil {
		return
	}
	behaviorRegistry[kind] = behavior
}

func behaviorFor(kind component.InteractableKind) (Behavior, bool) {
	b, ok := behaviorRegistry[kind]
	return b, ok && b != nil
}

func interact(ctx *InteractionContext) bool {
	behavior, ok := behaviorFor(ctx.Interactable.Kind)
	if !ok {
		log.Printf("interaction: %s has unknown kind %q", ctx.name(), ctx.Interactable.Kind)
		pushInteractionEvent(ctx, ecs.InteractionRejected)
		return false
	}

	log.Printf("interaction: player %s interacts with %s", ctx.Player, ctx.name())
	if !behavior.Interact(ctx) || !ctx.IsHeld() {
		pushInteractionEvent(ctx, ecs.InteractionRejected)
		return false
	}
	pushInteractionEvent(ctx, ecs.InteractionEngaged)
	return true
}

func drop(ctx *InteractionContext) {
	if ctx.Interactable == nil {
		return
	}
	log.Printf("interaction: player %s drops %s", ctx.Player, ctx.name())
	if behavior, ok := behaviorFor(ctx.Interactable.Kind); ok {
		behavior.Drop(ctx)
	}
	pushInteractionEvent(ctx, ecs.InteractionReleased)
}

func pushInteractionEvent(ctx *InteractionContext, kind ecs.InteractionEventKind) {
	ctx.World.Events().Push(ecs.Event{
		Type: ecs.InteractionEventType,
		Data: ecs.InteractionEvent{Kind: kind, Player: ctx.Player, Target: ctx.Target, Name: ctx.name()},
	})
}
