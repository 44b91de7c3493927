package common

import "math"

// Gravity is the downward acceleration applied to rigid bodies, in m/s².
const Gravity = -9.81

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveToward steps current toward target by at most maxDelta without
// overshooting.
func MoveToward(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// SmoothDamp eases current toward target with a critically damped spring
// that reaches it in roughly smoothTime seconds. velocity carries the spring
// state between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	if smoothTime < 1e-4 {
		smoothTime = 1e-4
	}
	var v float64
	if velocity != nil {
		v = *velocity
	}

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	temp := (v + omega*change) * dt
	v = (v - omega*temp) * exp
	out := target + (change+temp)*exp

	// Do not overshoot.
	if (target-current > 0) == (out > target) {
		out = target
		v = (out - target) / dt
	}
	if velocity != nil {
		*velocity = v
	}
	return out
}
