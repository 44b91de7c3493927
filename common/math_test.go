package common

import (
	"math"
	"testing"
)

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name                   string
		current, target, delta float64
		want                   float64
	}{
		{"step_up", 0, 10, 3, 3},
		{"step_down", 10, 0, 3, 7},
		{"snap", 9, 10, 3, 10},
		{"already_there", 5, 5, 1, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MoveToward(tc.current, tc.target, tc.delta); got != tc.want {
				t.Fatalf("MoveToward(%v, %v, %v) = %v, want %v", tc.current, tc.target, tc.delta, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("Clamp out of bounds")
	}
}

func TestSmoothDampConverges(t *testing.T) {
	var velocity float64
	speed := 0.0
	prev := speed
	for i := 0; i < 120; i++ {
		speed = SmoothDamp(speed, 5, &velocity, 0.2, 1.0/60)
		if speed < prev {
			t.Fatalf("tick %d: speed went backwards %v -> %v", i, prev, speed)
		}
		if speed > 5 {
			t.Fatalf("tick %d: overshot target: %v", i, speed)
		}
		prev = speed
	}
	if math.Abs(speed-5) > 1e-3 {
		t.Fatalf("expected to settle near 5, got %v", speed)
	}
}

func TestSmoothDampZeroDelta(t *testing.T) {
	var velocity float64
	if got := SmoothDamp(2, 5, &velocity, 0.2, 0); got != 2 {
		t.Fatalf("zero dt should not move, got %v", got)
	}
}
