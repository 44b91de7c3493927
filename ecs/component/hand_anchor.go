package component

import "github.com/go-gl/mathgl/mgl64"

// HandAnchor is the wrist point of a player, expressed in the view frame.
// Lift-style interactables hang their pivot from it.
type HandAnchor struct {
	Offset mgl64.Vec3
}

func (h *HandAnchor) Frame() Frame {
	if h == nil {
		return IdentityFrame()
	}
	return Frame{Position: h.Offset, Rotation: mgl64.QuatIdent()}
}

var HandAnchorComponent = NewComponent[HandAnchor]()
