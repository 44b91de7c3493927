package component

import "github.com/go-gl/mathgl/mgl64"

// Locomotion holds grounded movement tuning and runtime state. Interactables
// that take over the player flip Enabled off while they hold it.
type Locomotion struct {
	WalkSpeed         float64
	RunSpeed          float64
	JumpForce         float64
	SpeedSmoothTime   float64
	FallMultiplier    float64
	LowJumpMultiplier float64

	// FootOffset places the ground probe relative to the body position and
	// GroundCheckDistance is the length of the downward probe ray.
	FootOffset          mgl64.Vec3
	GroundCheckDistance float64

	Enabled bool

	CurrentSpeed        float64
	SpeedSmoothVelocity float64
	Running             bool
	Grounded            bool
}

var LocomotionComponent = NewComponent[Locomotion]()
