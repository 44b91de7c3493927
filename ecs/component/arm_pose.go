package component

// ArmPose is the animation-only arm angle, in degrees, written by
// interactables that drive the player's arms.
type ArmPose struct {
	Angle float64
}

var ArmPoseComponent = NewComponent[ArmPose]()
