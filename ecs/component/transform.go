package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// Frame is a rigid placement: a position and an orientation. Y is up and
// +Z is forward.
type Frame struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func IdentityFrame() Frame {
	return Frame{Rotation: mgl64.QuatIdent()}
}

// Compose places child, expressed in f's space, into f's parent space.
func (f Frame) Compose(child Frame) Frame {
	rot := safeRotation(f.Rotation)
	return Frame{
		Position: f.Position.Add(rot.Rotate(child.Position)),
		Rotation: rot.Mul(safeRotation(child.Rotation)).Normalize(),
	}
}

// Inverse returns the frame that undoes f.
func (f Frame) Inverse() Frame {
	inv := safeRotation(f.Rotation).Inverse()
	return Frame{
		Position: inv.Rotate(f.Position.Mul(-1)),
		Rotation: inv,
	}
}

func (f Frame) Forward() mgl64.Vec3 {
	return safeRotation(f.Rotation).Rotate(axisZ)
}

func (f Frame) Right() mgl64.Vec3 {
	return safeRotation(f.Rotation).Rotate(axisX)
}

// Transform is an entity's world placement.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func (t *Transform) Frame() Frame {
	if t == nil {
		return IdentityFrame()
	}
	return Frame{Position: t.Position, Rotation: safeRotation(t.Rotation)}
}

func (t *Transform) SetFrame(f Frame) {
	if t == nil {
		return
	}
	t.Position = f.Position
	t.Rotation = safeRotation(f.Rotation)
}

var TransformComponent = NewComponent[Transform]()

// YawRotation returns a rotation of yaw degrees about the up axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yaw), axisY)
}

// PitchRotation returns a rotation of pitch degrees about the right axis.
// Positive pitch looks down.
func PitchRotation(pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(pitch), axisX)
}

// YawOf extracts the heading, in degrees, of a rotation's forward vector.
func YawOf(q mgl64.Quat) float64 {
	fwd := safeRotation(q).Rotate(axisZ)
	return mgl64.RadToDeg(math.Atan2(fwd.X(), fwd.Z()))
}

// safeRotation maps the zero quaternion, which a zero-valued struct carries,
// to the identity.
func safeRotation(q mgl64.Quat) mgl64.Quat {
	if q.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return q
}
