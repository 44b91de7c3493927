package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gymroom/ecs/component"
)

func TestJumpRequiresGround(t *testing.T) {
	tests := []struct {
		name   string
		floor  bool
		wantVY float64
	}{
		{"grounded_jump", true, 5},
		{"airborne_jump_ignored", false, -1.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.floor)
			body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
			body.Velocity = mgl64.Vec3{0, -1.25, 0}
			if tc.floor {
				body.Velocity = mgl64.Vec3{}
			}

			f.step(component.Input{JumpPressed: true, Jump: true})

			if got := body.Velocity.Y(); math.Abs(got-tc.wantVY) > 1e-9 {
				t.Fatalf("vertical velocity = %v, want %v", got, tc.wantVY)
			}
		})
	}
}

func TestLocomotionSpeedEasesTowardTarget(t *testing.T) {
	f := newFixture(t, true)
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())

	f.step(component.Input{MoveZ: 1})
	if loco.CurrentSpeed <= 0 || loco.CurrentSpeed >= loco.WalkSpeed {
		t.Fatalf("speed should ease in, got %v", loco.CurrentSpeed)
	}
	if body.Velocity.Z() <= 0 || body.Velocity.X() != 0 {
		t.Fatalf("expected forward velocity, got %v", body.Velocity)
	}

	f.stepN(120, component.Input{MoveZ: 1, Run: true})
	if math.Abs(loco.CurrentSpeed-loco.RunSpeed) > 1e-3 || !loco.Running {
		t.Fatalf("expected to settle at run speed, got %v running=%v", loco.CurrentSpeed, loco.Running)
	}

	f.step(component.Input{})
	if loco.Running {
		t.Fatal("running flag should drop when the player stops")
	}
}

func TestLocomotionFollowsYaw(t *testing.T) {
	f := newFixture(t, true)
	look := mustGet(t, f.w, f.player, component.LookComponent.Kind())
	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())

	look.Yaw = 90
	f.stepN(30, component.Input{MoveZ: 1})
	if body.Velocity.X() <= 0 || math.Abs(body.Velocity.Z()) > 1e-9 {
		t.Fatalf("yaw 90 should walk along +X, got %v", body.Velocity)
	}
}

func TestLocomotionDisabledKeepsVelocity(t *testing.T) {
	f := newFixture(t, true)
	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
	loco.Enabled = false
	body.Velocity = mgl64.Vec3{1, 0, 0}

	f.step(component.Input{MoveZ: 1, JumpPressed: true})
	if body.Velocity != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("disabled locomotion should not touch velocity, got %v", body.Velocity)
	}
	if !loco.Grounded {
		t.Fatal("ground probe should still run while disabled")
	}
}

func TestJumpGravityMultipliers(t *testing.T) {
	tests := []struct {
		name string
		vy   float64
		jump bool
		want float64
	}{
		{"falling", -1, false, -1 + -9.81*1.5*0.02},
		{"rising_jump_held", 1, true, 1},
		{"rising_jump_released", 1, false, 1 + -9.81*1*0.02},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, false)
			body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
			input := mustGet(t, f.w, f.player, component.InputComponent.Kind())
			body.Velocity = mgl64.Vec3{0, tc.vy, 0}
			input.Jump = tc.jump

			NewJumpGravitySystem().Update(f.w)

			if got := body.Velocity.Y(); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("vy = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPhysicsLandsOnPlatform(t *testing.T) {
	f := newFixture(t, true)
	transform := mustGet(t, f.w, f.player, component.TransformComponent.Kind())
	transform.Position = mgl64.Vec3{0, 3, 0}

	f.step(component.Input{})
	for i := 0; i < 150; i++ {
		f.fixed.Update(f.w)
	}
	if math.Abs(transform.Position.Y()-1) > 1e-9 {
		t.Fatalf("player should rest with feet on the floor, got y=%v", transform.Position.Y())
	}
	body := mustGet(t, f.w, f.player, component.RigidBodyComponent.Kind())
	if body.Velocity.Y() != 0 {
		t.Fatalf("landing should stop vertical motion, got %v", body.Velocity.Y())
	}
}

func TestLookPitchClampAndDelay(t *testing.T) {
	f := newFixture(t, true)
	look := mustGet(t, f.w, f.player, component.LookComponent.Kind())
	look.DelayFrames = 3

	f.stepN(2, component.Input{LookX: 10, LookY: 10})
	if look.Yaw != 0 || look.Pitch != 0 {
		t.Fatalf("look input during the startup delay should be ignored, got yaw=%v pitch=%v", look.Yaw, look.Pitch)
	}

	f.step(component.Input{LookX: 10, LookY: 10})
	if !look.Ready {
		t.Fatal("look should be ready after the delay")
	}
	if look.Yaw != 20 || look.Pitch != -20 {
		t.Fatalf("expected yaw 20 pitch -20, got yaw=%v pitch=%v", look.Yaw, look.Pitch)
	}

	f.stepN(10, component.Input{LookY: 10})
	if look.Pitch != -90 {
		t.Fatalf("pitch should clamp at -90, got %v", look.Pitch)
	}
	f.stepN(20, component.Input{LookY: -10})
	if look.Pitch != 90 {
		t.Fatalf("pitch should clamp at 90, got %v", look.Pitch)
	}

	f.stepN(40, component.Input{LookX: 10})
	if look.Yaw <= 360 {
		t.Fatalf("yaw should be unbounded, got %v", look.Yaw)
	}

	look.Enabled = false
	yaw := look.Yaw
	f.step(component.Input{LookX: 10})
	if look.Yaw != yaw {
		t.Fatal("disabled look should ignore input")
	}
}
