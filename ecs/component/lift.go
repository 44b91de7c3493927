package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PivotAnchor is the elbow joint of a lifted object, local to the hand.
// It exists only while the object is held.
type PivotAnchor struct {
	Offset mgl64.Vec3
	Angle  float64
}

// Frame rotates about the local X axis by -Angle, which raises the forearm.
func (p *PivotAnchor) Frame() Frame {
	if p == nil {
		return IdentityFrame()
	}
	return Frame{
		Position: p.Offset,
		Rotation: mgl64.QuatRotate(mgl64.DegToRad(-p.Angle), mgl64.Vec3{1, 0, 0}),
	}
}

// Lift is an object held in the hand and curled up and down.
type Lift struct {
	MaxAngle   float64
	LiftSpeed  float64
	LowerSpeed float64

	ElbowOffset mgl64.Vec3
	GripOffset  mgl64.Vec3

	Angle   float64
	Lifting bool

	// CanLift flips false only on reaching MaxAngle and true only on
	// returning to 0, so holding the lift key oscillates through full reps.
	CanLift bool

	Pivot *PivotAnchor

	// OriginalParent is the attachment the object had when it was picked up
	// and is restored on drop. Nil means the object was free standing.
	OriginalParent *Attachment
}

// GripFrame is the object placement relative to the pivot.
func (l *Lift) GripFrame() Frame {
	if l == nil {
		return IdentityFrame()
	}
	return Frame{Position: l.GripOffset, Rotation: mgl64.QuatIdent()}
}

var LiftComponent = NewComponent[Lift]()
