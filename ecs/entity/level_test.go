package entity

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

func loadTestLevel(t *testing.T) (*ecs.World, *Level) {
	t.Helper()
	w := ecs.NewWorld()
	level, err := NewBuilder(60, nil).LoadLevel(w, prefabs.LevelFile)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	return w, level
}

func TestLoadLevel(t *testing.T) {
	w, level := loadTestLevel(t)

	if level.Name != "gym" {
		t.Fatalf("level name = %q", level.Name)
	}
	if len(level.Platforms) != 2 {
		t.Fatalf("expected 2 platforms, got %d", len(level.Platforms))
	}
	if len(level.Props) != 3 {
		t.Fatalf("expected 3 props, got %d", len(level.Props))
	}

	floor, ok := ecs.Get(w, level.Platforms[0], component.PlatformComponent.Kind())
	if !ok || floor.Tint == nil {
		t.Fatal("floor should carry its color")
	}

	transform, ok := ecs.Get(w, level.Player, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("player has no transform")
	}
	if !transform.Position.ApproxEqual(mgl64.Vec3{0, 1, -3}) {
		t.Fatalf("player should spawn at the level spawn, got %v", transform.Position)
	}
}

func TestLoadLevelPlacementOverrides(t *testing.T) {
	w, level := loadTestLevel(t)

	tests := []struct {
		name      string
		prop      int
		wantName  string
		wantSpeed float64
		wantMsg   string
		wantPos   mgl64.Vec3
	}{
		{
			name:      "prefab as is",
			prop:      0,
			wantName:  "dumbbell",
			wantSpeed: 90,
			wantMsg:   "Press E to pick up dumbbell",
			wantPos:   mgl64.Vec3{1.5, 0.15, 0},
		},
		{
			name:      "moved and overridden",
			prop:      1,
			wantName:  "heavy_dumbbell",
			wantSpeed: 60,
			wantMsg:   "Press E to pick up heavy dumbbell",
			wantPos:   mgl64.Vec3{4, 0.65, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := level.Props[tt.prop]
			interactable, ok := ecs.Get(w, e, component.InteractableComponent.Kind())
			if !ok {
				t.Fatal("prop is not interactable")
			}
			lift, ok := ecs.Get(w, e, component.LiftComponent.Kind())
			if !ok {
				t.Fatal("dumbbell has no lift")
			}
			transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

			if interactable.Name != tt.wantName {
				t.Errorf("name = %q, want %q", interactable.Name, tt.wantName)
			}
			if interactable.Kind != component.KindLift {
				t.Errorf("kind = %q, want lift", interactable.Kind)
			}
			if interactable.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", interactable.Message, tt.wantMsg)
			}
			if lift.LiftSpeed != tt.wantSpeed {
				t.Errorf("lift speed = %v, want %v", lift.LiftSpeed, tt.wantSpeed)
			}
			if lift.LowerSpeed != 30 {
				t.Errorf("lower speed should come from the prefab, got %v", lift.LowerSpeed)
			}
			if !transform.Position.ApproxEqual(tt.wantPos) {
				t.Errorf("position = %v, want %v", transform.Position, tt.wantPos)
			}
		})
	}
}

func TestLoadLevelBarDerivesEnd(t *testing.T) {
	w, level := loadTestLevel(t)
	bar := level.Props[2]

	disp, ok := ecs.Get(w, bar, component.DisplacementComponent.Kind())
	if !ok {
		t.Fatal("bar has no displacement")
	}
	if !disp.Start.Position.ApproxEqual(mgl64.Vec3{-2, 1.3, 2}) {
		t.Fatalf("start = %v", disp.Start.Position)
	}
	if want := disp.Start.Position.Add(mgl64.Vec3{0, disp.MaxHeight, 0}); !disp.End.Position.ApproxEqual(want) {
		t.Fatalf("end = %v, want %v", disp.End.Position, want)
	}
	if disp.Phase != component.PhaseReady {
		t.Fatalf("phase = %s, want ready", disp.Phase)
	}

	interactable, _ := ecs.Get(w, bar, component.InteractableComponent.Kind())
	if interactable.Condition != "scripts/pullup_bar.tengo" {
		t.Fatalf("condition = %q", interactable.Condition)
	}
	source, _ := ecs.Get(w, bar, component.PrefabSourceComponent.Kind())
	if source.File != prefabs.PullUpBarFile {
		t.Fatalf("prefab source = %q", source.File)
	}
}

func TestBuildPlacementUnknownKind(t *testing.T) {
	w := ecs.NewWorld()
	before := len(ecs.Entities(w))

	_, err := NewBuilder(60, nil).BuildPlacement(w, prefabs.PlacementSpec{
		Prefab:    prefabs.DumbbellFile,
		Overrides: map[string]any{"interactable": map[string]any{"kind": "trampoline"}},
	})
	if err == nil || !strings.Contains(err.Error(), "trampoline") {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
	if after := len(ecs.Entities(w)); after != before {
		t.Fatalf("failed placement left %d entities behind", after-before)
	}
}

func TestMoveBarCarriesAnchors(t *testing.T) {
	spec := prefabs.PullUpBarSpec{
		Transform: prefabs.TransformSpec{Position: prefabs.Vec3Spec{Y: 2.4}, Yaw: 180},
		Start:     &prefabs.TransformSpec{Position: prefabs.Vec3Spec{Y: 1.3, Z: -0.2}, Yaw: 180},
	}

	moveBar(&spec, prefabs.TransformSpec{Position: prefabs.Vec3Spec{X: 3, Y: 2.4, Z: 1}, Yaw: 90})

	if got := spec.Start.Position.Vec(); !got.ApproxEqual(mgl64.Vec3{3, 1.3, 0.8}) {
		t.Fatalf("start = %v", got)
	}
	if spec.Start.Yaw != 90 {
		t.Fatalf("start yaw = %v, want 90", spec.Start.Yaw)
	}
	if spec.End != nil {
		t.Fatal("a missing end anchor should stay missing")
	}
}
