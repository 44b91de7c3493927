package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Look is the mouse-look state of a first-person view. Yaw turns the body,
// pitch tilts only the view and is kept within [-90, 90] degrees.
type Look struct {
	Sensitivity float64
	EyeHeight   float64

	// DelayFrames is how many frames to wait before accepting look input,
	// so the first cursor delta after capture is discarded.
	DelayFrames int
	Elapsed     int
	Ready       bool

	// Enabled is an external kill switch; the locomotion switch does not
	// affect look.
	Enabled bool

	Yaw   float64
	Pitch float64
}

// ViewFrame returns the eye placement for a body at position.
func (l *Look) ViewFrame(position mgl64.Vec3) Frame {
	if l == nil {
		return Frame{Position: position, Rotation: mgl64.QuatIdent()}
	}
	return Frame{
		Position: position.Add(mgl64.Vec3{0, l.EyeHeight, 0}),
		Rotation: YawRotation(l.Yaw).Mul(PitchRotation(l.Pitch)).Normalize(),
	}
}

var LookComponent = NewComponent[Look]()
