package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

func engageBar(t *testing.T, f *fixture) (ecs.Entity, *component.Displacement) {
	t.Helper()
	bar := f.addBar(testBarSpec())
	f.step(component.Input{})
	f.step(component.Input{EngagePressed: true})
	if !f.interactor().Session.Holds(uint64(bar)) {
		t.Fatalf("failed to hang from bar: %+v", f.interactor().Session)
	}
	return bar, mustGet(t, f.w, bar, component.DisplacementComponent.Kind())
}

func checkDisplacementBounds(t *testing.T, tick int, disp *component.Displacement) {
	t.Helper()
	if disp.Height < 0 || disp.Height > 1 {
		t.Fatalf("tick %d: height %v out of [0, 1]", tick, disp.Height)
	}
	if disp.ArmAngle < 0 || disp.ArmAngle > 90 {
		t.Fatalf("tick %d: arm angle %v out of [0, 90]", tick, disp.ArmAngle)
	}
}

func TestDisplacementEngageSnapsToStart(t *testing.T) {
	f := newFixture(t, true)
	bar, disp := engageBar(t, f)

	transform := mustGet(t, f.w, f.player, component.TransformComponent.Kind())
	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	look := mustGet(t, f.w, f.player, component.LookComponent.Kind())

	if !approxVec(transform.Position, mgl64.Vec3{0, 1.3, 1.0}) {
		t.Fatalf("expected player at start anchor, got %v", transform.Position)
	}
	if d := math.Mod(look.Yaw+360, 360) - 180; math.Abs(d) > 1e-6 {
		t.Fatalf("expected look yaw 180, got %v", look.Yaw)
	}
	if !body.Kinematic || loco.Enabled {
		t.Fatal("hanging player should be kinematic with locomotion off")
	}
	if disp.Phase != component.PhaseReady || disp.Height != 0 || disp.Player != uint64(f.player) {
		t.Fatalf("unexpected displacement state %+v", *disp)
	}
	if !approxVec(disp.End.Position, mgl64.Vec3{0, 1.8, 1.0}) {
		t.Fatalf("end anchor should default to start raised by max height, got %v", disp.End.Position)
	}

	interactable := mustGet(t, f.w, bar, component.InteractableComponent.Kind())
	prompt := mustGet(t, f.w, f.player, component.PromptComponent.Kind())
	if interactable.Message != "Press G to drop from bar" || prompt.Message != interactable.Message {
		t.Fatalf("prompt should show the release hint, got %q / %q", interactable.Message, prompt.Message)
	}
}

// Climb to the top, let go of climb, and sink back to the start.
func TestDisplacementClimbCycle(t *testing.T) {
	f := newFixture(t, true)
	_, disp := engageBar(t, f)
	transform := mustGet(t, f.w, f.player, component.TransformComponent.Kind())
	pose := mustGet(t, f.w, f.player, component.ArmPoseComponent.Kind())

	tick := 0
	for disp.Phase != component.PhaseAtTop {
		f.step(component.Input{ClimbHeld: true})
		tick++
		checkDisplacementBounds(t, tick, disp)
		if disp.Phase != component.PhasePullingUp && disp.Phase != component.PhaseAtTop {
			t.Fatalf("tick %d: unexpected phase %s while climbing", tick, disp.Phase)
		}
		if tick > 200 {
			t.Fatal("never reached the top")
		}
	}
	if disp.Height != 1 {
		t.Fatalf("expected height 1 at top, got %v", disp.Height)
	}
	if !approxVec(transform.Position, disp.End.Position) {
		t.Fatalf("player should be at the end anchor, got %v", transform.Position)
	}
	if pose.Angle != disp.ArmAngle || pose.Angle <= 0 {
		t.Fatalf("arm pose %v should follow arm angle %v", pose.Angle, disp.ArmAngle)
	}

	f.step(component.Input{ClimbHeld: true})
	if disp.Phase != component.PhaseAtTop {
		t.Fatalf("holding climb at the top should stay there, got %s", disp.Phase)
	}

	f.step(component.Input{})
	if disp.Phase != component.PhaseDescending {
		t.Fatalf("releasing climb at the top should start descending, got %s", disp.Phase)
	}
	if disp.Height != 1 {
		t.Fatal("the transition tick should not move the player")
	}

	for disp.Phase == component.PhaseDescending {
		f.step(component.Input{ClimbHeld: true})
		tick++
		checkDisplacementBounds(t, tick, disp)
		if tick > 400 {
			t.Fatal("never finished descending")
		}
	}
	if disp.Phase != component.PhaseReady || disp.Height != 0 {
		t.Fatalf("expected ready at height 0, got %s at %v", disp.Phase, disp.Height)
	}
	if !approxVec(transform.Position, disp.Start.Position) {
		t.Fatalf("player should be back at the start anchor, got %v", transform.Position)
	}
}

func TestDisplacementEarlyClimbReleaseSinks(t *testing.T) {
	f := newFixture(t, true)
	_, disp := engageBar(t, f)

	f.stepN(10, component.Input{ClimbHeld: true})
	if disp.Phase != component.PhasePullingUp {
		t.Fatalf("expected pulling up, got %s", disp.Phase)
	}
	height := disp.Height

	f.step(component.Input{})
	if disp.Phase != component.PhaseReady {
		t.Fatalf("releasing climb before the top should fall back to ready, got %s", disp.Phase)
	}
	if disp.Height >= height {
		t.Fatalf("ready should sink passively: %v -> %v", height, disp.Height)
	}
}

// Release mid-descent drops immediately whatever the height.
func TestDisplacementReleaseMidDescent(t *testing.T) {
	f := newFixture(t, true)
	bar, disp := engageBar(t, f)

	for i := 0; disp.Phase != component.PhaseAtTop && i < 200; i++ {
		f.step(component.Input{ClimbHeld: true})
	}
	f.step(component.Input{})
	f.stepN(10, component.Input{})
	if disp.Phase != component.PhaseDescending || disp.Height <= 0 || disp.Height >= 1 {
		t.Fatalf("expected to be mid descent, got %s at %v", disp.Phase, disp.Height)
	}

	f.step(component.Input{ReleasePressed: true})

	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	if body.Kinematic || !loco.Enabled {
		t.Fatal("drop should hand physics and locomotion back")
	}
	if disp.Phase != component.PhaseReady || disp.Hanging() {
		t.Fatalf("drop should clear phases and the cached player: %+v", *disp)
	}
	if f.interactor().Session.Active() {
		t.Fatal("session should be empty after drop")
	}
	interactable := mustGet(t, f.w, bar, component.InteractableComponent.Kind())
	if interactable.Message != "Press E to hang on pull-up bar" {
		t.Fatalf("message should reset to the engage hint, got %q", interactable.Message)
	}
}

func TestDisplacementDropIsIdempotent(t *testing.T) {
	f := newFixture(t, true)
	bar, disp := engageBar(t, f)
	f.stepN(5, component.Input{ClimbHeld: true})

	ctx := &InteractionContext{
		World:        f.w,
		Player:       f.player,
		Target:       bar,
		Interactor:   f.interactor(),
		Interactable: mustGet(t, f.w, bar, component.InteractableComponent.Kind()),
	}
	DisplacementBehavior{}.Drop(ctx)
	first := *disp
	DisplacementBehavior{}.Drop(ctx)

	if *disp != first {
		t.Fatalf("second drop changed state: %+v vs %+v", first, *disp)
	}
	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	if body.Kinematic || !loco.Enabled || f.interactor().Session.Active() {
		t.Fatal("player should be free after drop")
	}
}

func TestDisplacementDropWhenNotHangingLeavesPlayer(t *testing.T) {
	f := newFixture(t, true)
	bar := f.addBar(testBarSpec())
	f.step(component.Input{})

	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	body.Kinematic = true
	loco.Enabled = false

	ctx := &InteractionContext{
		World:        f.w,
		Player:       f.player,
		Target:       bar,
		Interactor:   f.interactor(),
		Interactable: mustGet(t, f.w, bar, component.InteractableComponent.Kind()),
	}
	DisplacementBehavior{}.Drop(ctx)

	if !body.Kinematic || loco.Enabled {
		t.Fatal("drop without a hanging player must not touch the player")
	}
	if disp := mustGet(t, f.w, bar, component.DisplacementComponent.Kind()); disp.Hanging() || disp.Phase != component.PhaseReady {
		t.Fatalf("bar should stay idle, got %+v", *disp)
	}
}

func TestDisplacementRestorePose(t *testing.T) {
	f := newFixture(t, true)
	spec := testBarSpec()
	spec.RestorePoseOnDrop = true
	f.addBar(spec)

	transform := mustGet(t, f.w, f.player, component.TransformComponent.Kind())
	start := transform.Position

	f.step(component.Input{})
	f.step(component.Input{EngagePressed: true})
	f.stepN(5, component.Input{ClimbHeld: true})
	f.step(component.Input{ReleasePressed: true})

	if !approxVec(transform.Position, start) {
		t.Fatalf("expected pose restored to %v, got %v", start, transform.Position)
	}
	look := mustGet(t, f.w, f.player, component.LookComponent.Kind())
	if math.Abs(look.Yaw) > 1e-6 {
		t.Fatalf("expected yaw restored to 0, got %v", look.Yaw)
	}
}

func TestDisplacementWithoutRigidBodyIsInert(t *testing.T) {
	f := newFixture(t, true)
	ecs.Remove(f.w, f.player, component.RigidBodyComponent.Kind())
	bar := f.addBar(testBarSpec())

	f.step(component.Input{})
	f.step(component.Input{EngagePressed: true})

	if f.interactor().Session.Active() {
		t.Fatal("engage without a rigid body must not start a session")
	}
	disp := mustGet(t, f.w, bar, component.DisplacementComponent.Kind())
	if disp.Hanging() {
		t.Fatal("bar should not record a player")
	}
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	if !loco.Enabled {
		t.Fatal("locomotion should be untouched")
	}
}
