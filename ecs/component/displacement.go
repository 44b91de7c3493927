package component

import "github.com/go-gl/mathgl/mgl64"

// DisplacementPhase is the climb state of a player hanging from an object.
type DisplacementPhase int

const (
	PhaseReady DisplacementPhase = iota
	PhasePullingUp
	PhaseAtTop
	PhaseDescending
)

func (p DisplacementPhase) String() string {
	switch p {
	case PhasePullingUp:
		return "pulling_up"
	case PhaseAtTop:
		return "at_top"
	case PhaseDescending:
		return "descending"
	default:
		return "ready"
	}
}

// Displacement takes over the player's position: the player hangs at Start
// and climbs along the segment to End.
type Displacement struct {
	PullUpSpeed       float64
	DropSpeed         float64
	MaxHeight         float64
	ArmAnimationSpeed float64

	Start Frame
	End   Frame

	Height   float64
	ArmAngle float64
	Phase    DisplacementPhase

	// Player is the hanging player, 0 when nobody hangs.
	Player       uint64
	OriginalPose Frame

	EngageMessage     string
	ReleaseMessage    string
	RestorePoseOnDrop bool
}

func (d *Displacement) Hanging() bool {
	return d != nil && d.Player != 0
}

// PositionAt returns the hang position for a normalized height.
func (d *Displacement) PositionAt(height float64) mgl64.Vec3 {
	if d == nil {
		return mgl64.Vec3{}
	}
	return d.Start.Position.Add(d.End.Position.Sub(d.Start.Position).Mul(height))
}

var DisplacementComponent = NewComponent[Displacement]()
