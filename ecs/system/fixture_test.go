package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/ecs/entity"
	"github.com/milk9111/gymroom/prefabs"
)

const testDelta = 1.0 / 60.0

type scriptedInput struct {
	next component.Input
}

func (s *scriptedInput) Sample(in *component.Input) {
	*in = s.next
}

type fixture struct {
	t       *testing.T
	w       *ecs.World
	builder *entity.Builder
	input   *scriptedInput
	frame   *ecs.Scheduler
	fixed   *ecs.Scheduler
	player  ecs.Entity
}

func newFixture(t *testing.T, withFloor bool) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	if _, err := entity.NewClock(w, testDelta, 1.0/50.0); err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		t:       t,
		w:       w,
		builder: entity.NewBuilder(60, nil),
		input:   &scriptedInput{},
	}
	f.frame = NewFrameScheduler(f.input, NewInteractionSystem(), nil, false)
	f.fixed = NewFixedScheduler()

	if withFloor {
		if _, err := entity.BuildPlatform(w, prefabs.PlatformSpec{
			Name:        "floor",
			Center:      prefabs.Vec3Spec{Y: -0.5},
			HalfExtents: prefabs.Vec3Spec{X: 10, Y: 0.5, Z: 10},
		}); err != nil {
			t.Fatal(err)
		}
	}

	player, err := f.builder.BuildPlayer(w, testPlayerSpec())
	if err != nil {
		t.Fatal(err)
	}
	f.player = player
	return f
}

func testPlayerSpec() prefabs.PlayerSpec {
	return prefabs.PlayerSpec{
		Name:       "player",
		Transform:  prefabs.TransformSpec{Position: prefabs.Vec3Spec{Y: 1}},
		Mass:       1,
		Collider:   prefabs.ColliderSpec{HalfExtents: prefabs.Vec3Spec{X: 0.4, Y: 1, Z: 0.4}, Radius: 0.4},
		FootOffset: prefabs.Vec3Spec{Y: -1},
		EyeHeight:  0.7,
		LookDelay:  0.001,
		HandOffset: prefabs.Vec3Spec{X: 0.35, Y: -0.45, Z: 0.4},
	}
}

func (f *fixture) addDumbbell(pos prefabs.Vec3Spec) ecs.Entity {
	f.t.Helper()
	e, err := f.builder.BuildDumbbell(f.w, prefabs.DumbbellSpec{
		Name:         "dumbbell",
		Transform:    prefabs.TransformSpec{Position: pos},
		Mass:         5,
		Collider:     prefabs.ColliderSpec{HalfExtents: prefabs.Vec3Spec{X: 0.15, Y: 0.15, Z: 0.3}, Radius: 0.3},
		Interactable: prefabs.InteractableSpec{Kind: "lift", Distance: 2.5},
		ElbowOffset:  prefabs.Vec3Spec{Z: -0.2},
		GripOffset:   prefabs.Vec3Spec{Z: 0.4},
	}, prefabs.DumbbellFile)
	if err != nil {
		f.t.Fatal(err)
	}
	return e
}

func (f *fixture) addBar(spec prefabs.PullUpBarSpec) ecs.Entity {
	f.t.Helper()
	e, err := f.builder.BuildPullUpBar(f.w, spec, prefabs.PullUpBarFile)
	if err != nil {
		f.t.Fatal(err)
	}
	return e
}

func testBarSpec() prefabs.PullUpBarSpec {
	return prefabs.PullUpBarSpec{
		Name:         "bar",
		Transform:    prefabs.TransformSpec{Position: prefabs.Vec3Spec{Y: 2.4, Z: 1.2}, Yaw: 180},
		Collider:     prefabs.ColliderSpec{HalfExtents: prefabs.Vec3Spec{X: 0.6, Y: 0.05, Z: 0.05}, Radius: 0.6},
		Interactable: prefabs.InteractableSpec{Kind: "displacement", Distance: 2.5},
		Start:        &prefabs.TransformSpec{Position: prefabs.Vec3Spec{Y: 1.3, Z: 1.0}, Yaw: 180},
	}
}

// step runs one frame with in as the sampled input.
func (f *fixture) step(in component.Input) {
	f.input.next = in
	f.frame.Update(f.w)
}

func (f *fixture) stepN(n int, in component.Input) {
	for i := 0; i < n; i++ {
		f.step(in)
	}
}

func (f *fixture) interactor() *component.Interactor {
	f.t.Helper()
	v, ok := ecs.Get(f.w, f.player, component.InteractorComponent.Kind())
	if !ok {
		f.t.Fatal("player has no interactor")
	}
	return v
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %s has no %s", e, kind)
	}
	return v
}

func approxVec(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}
