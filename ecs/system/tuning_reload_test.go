package system

import (
	"testing"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/ecs/entity"
	"github.com/milk9111/gymroom/prefabs"
)

func TestTuningReloadKeepsRuntimeState(t *testing.T) {
	f := newFixture(t, true)
	reload := NewTuningReloadSystem(f.builder, nil)

	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	loco.WalkSpeed = 1
	loco.CurrentSpeed = 3.5
	loco.Grounded = true

	if _, err := entity.NewReloadRequest(f.w, "prefabs/"+prefabs.PlayerFile); err != nil {
		t.Fatal(err)
	}
	reload.Update(f.w)

	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](prefabs.PlayerFile)
	if err != nil {
		t.Fatal(err)
	}
	if loco.WalkSpeed != spec.WalkSpeed {
		t.Fatalf("walk speed should come from %s: got %v want %v", prefabs.PlayerFile, loco.WalkSpeed, spec.WalkSpeed)
	}
	if loco.CurrentSpeed != 3.5 || !loco.Grounded {
		t.Fatal("reload must not reset runtime state")
	}
	if _, ok := ecs.First(f.w, component.ReloadRequestComponent.Kind()); ok {
		t.Fatal("reload requests should be consumed")
	}
}

func TestTuningReloadKeepsHangMessage(t *testing.T) {
	f := newFixture(t, true)
	bar, disp := engageBar(t, f)
	reload := NewTuningReloadSystem(f.builder, nil)
	disp.PullUpSpeed = 100

	if _, err := entity.NewReloadRequest(f.w, prefabs.PullUpBarFile); err != nil {
		t.Fatal(err)
	}
	reload.Update(f.w)

	if disp.PullUpSpeed == 100 {
		t.Fatal("pull up speed should be reloaded")
	}
	if !disp.Hanging() {
		t.Fatal("reload must not drop the hanging player")
	}
	interactable := mustGet(t, f.w, bar, component.InteractableComponent.Kind())
	if interactable.Message != disp.ReleaseMessage {
		t.Fatalf("release hint should survive a reload, got %q", interactable.Message)
	}
}
