package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Collider is the collision volume of an entity: an upright cylinder of
// Radius for probes and HalfExtents for resting on platforms. A disabled
// collider is invisible to probes and does not land on platforms.
type Collider struct {
	HalfExtents mgl64.Vec3
	Radius      float64
	Layer       uint
	Enabled     bool
}

var ColliderComponent = NewComponent[Collider]()

// Platform marks a static box the player and props can stand on. Tint is
// only used for drawing and may be nil.
type Platform struct {
	HalfExtents mgl64.Vec3
	Tint        color.Color
}

var PlatformComponent = NewComponent[Platform]()
