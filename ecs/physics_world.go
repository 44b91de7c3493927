package ecs

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Probe layers. They double as Chipmunk shape categories, so a layer mask is
// a cp.ShapeFilter mask.
const (
	LayerGround uint = 1 << iota
	LayerInteractable
	LayerProp
)

// probeGroup puts every probe shape in one group so the space never pairs
// them for collision; the space is only ever queried.
const probeGroup uint = 1

const groundEpsilon = 1e-4

// Volume is an upright cylinder registered for ray and overlap queries.
type Volume struct {
	Owner      uint64
	Center     mgl64.Vec3
	Radius     float64
	HalfHeight float64
	Layer      uint

	shape *cp.Shape
}

// Platform is an axis aligned box the player can stand on.
type Platform struct {
	Owner  uint64
	Center mgl64.Vec3
	Half   mgl64.Vec3

	shape *cp.Shape
}

// Top returns the walkable height of the platform.
func (p *Platform) Top() float64 {
	return p.Center.Y() + p.Half.Y()
}

// PhysicsWorld answers the spatial questions the simulation asks: is a foot
// anchor on the ground, what does a view ray hit, what is within reach. The
// world is projected onto a Chipmunk space in the XZ plane (cp X = world X,
// cp Y = world Z) and vertical extents are checked separately.
type PhysicsWorld struct {
	space     *cp.Space
	volumes   map[uint64]*Volume
	platforms map[uint64]*Platform
}

// NewPhysicsWorld creates an empty probe space.
func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		space:     cp.NewSpace(),
		volumes:   make(map[uint64]*Volume),
		platforms: make(map[uint64]*Platform),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetPlatform registers or moves the platform owned by owner.
func (pw *PhysicsWorld) SetPlatform(owner uint64, center, half mgl64.Vec3) {
	if pw == nil || owner == 0 {
		return
	}
	if p, ok := pw.platforms[owner]; ok {
		if p.Center.ApproxEqual(center) && p.Half.ApproxEqual(half) {
			return
		}
		pw.space.RemoveShape(p.shape)
		delete(pw.platforms, owner)
	}

	p := &Platform{Owner: owner, Center: center, Half: half}
	bb := cp.BB{
		L: center.X() - half.X(),
		B: center.Z() - half.Z(),
		R: center.X() + half.X(),
		T: center.Z() + half.Z(),
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.Filter = cp.NewShapeFilter(probeGroup, LayerGround, cp.ALL_CATEGORIES)
	shape.UserData = p
	p.shape = pw.space.AddShape(shape)
	pw.platforms[owner] = p
}

// SetVolume registers or moves the query volume owned by owner.
func (pw *PhysicsWorld) SetVolume(owner uint64, center mgl64.Vec3, radius, halfHeight float64, layer uint) {
	if pw == nil || owner == 0 || radius <= 0 {
		return
	}
	if v, ok := pw.volumes[owner]; ok {
		if v.Center.ApproxEqual(center) && v.Radius == radius && v.HalfHeight == halfHeight && v.Layer == layer {
			return
		}
		pw.space.RemoveShape(v.shape)
		delete(pw.volumes, owner)
	}

	v := &Volume{Owner: owner, Center: center, Radius: radius, HalfHeight: halfHeight, Layer: layer}
	shape := cp.NewCircle(pw.space.StaticBody, radius, cp.Vector{X: center.X(), Y: center.Z()})
	shape.Filter = cp.NewShapeFilter(probeGroup, layer, cp.ALL_CATEGORIES)
	shape.UserData = v
	v.shape = pw.space.AddShape(shape)
	pw.volumes[owner] = v
}

// Forget drops every shape registered for owner.
func (pw *PhysicsWorld) Forget(owner uint64) {
	if pw == nil {
		return
	}
	pw.RemoveVolume(owner)
	if p, ok := pw.platforms[owner]; ok {
		pw.space.RemoveShape(p.shape)
		delete(pw.platforms, owner)
	}
}

// RemoveVolume drops the query volume of owner, keeping any platform.
func (pw *PhysicsWorld) RemoveVolume(owner uint64) {
	if pw == nil {
		return
	}
	if v, ok := pw.volumes[owner]; ok {
		pw.space.RemoveShape(v.shape)
		delete(pw.volumes, owner)
	}
}

// HasVolume reports whether owner currently has a query volume.
func (pw *PhysicsWorld) HasVolume(owner uint64) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.volumes[owner]
	return ok
}

// Grounded casts a ray of length distance straight down from foot and
// reports whether it meets the top of a platform.
func (pw *PhysicsWorld) Grounded(foot mgl64.Vec3, distance float64) bool {
	top, ok := pw.GroundHeight(foot.X(), foot.Z(), foot.Y()+groundEpsilon)
	if !ok {
		return false
	}
	return foot.Y()-top <= distance
}

// GroundHeight returns the highest platform top under (x, z) that is not
// above maxY.
func (pw *PhysicsWorld) GroundHeight(x, z, maxY float64) (float64, bool) {
	if pw == nil || pw.space == nil {
		return 0, false
	}
	best := math.Inf(-1)
	found := false
	point := cp.Vector{X: x, Y: z}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, LayerGround)
	pw.space.BBQuery(cp.NewBBForCircle(point, groundEpsilon), filter, func(shape *cp.Shape, _ interface{}) {
		p, ok := shape.UserData.(*Platform)
		if !ok || !shape.BB().ContainsVect(point) {
			return
		}
		top := p.Top()
		if top <= maxY && top > best {
			best = top
			found = true
		}
	}, nil)
	return best, found
}

// Raycast returns the owner of the first volume on mask hit by the ray from
// origin along dir, up to maxDist.
func (pw *PhysicsWorld) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint) (uint64, bool) {
	if pw == nil || pw.space == nil || maxDist <= 0 || dir.Len() == 0 {
		return 0, false
	}
	end := origin.Add(dir.Normalize().Mul(maxDist))
	a := cp.Vector{X: origin.X(), Y: origin.Z()}
	b := cp.Vector{X: end.X(), Y: end.Z()}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)

	// Near-vertical rays have no usable XZ projection.
	if a.Distance(b) < 1e-6 {
		return pw.verticalHit(origin, end, filter)
	}

	var best *Volume
	bestAlpha := math.Inf(1)
	pw.space.SegmentQuery(a, b, 0, filter, func(shape *cp.Shape, _, _ cp.Vector, alpha float64, _ interface{}) {
		v, ok := shape.UserData.(*Volume)
		if !ok || alpha >= bestAlpha {
			return
		}
		y := origin.Y() + (end.Y()-origin.Y())*alpha
		if math.Abs(y-v.Center.Y()) > v.HalfHeight {
			return
		}
		best = v
		bestAlpha = alpha
	}, nil)

	if best == nil {
		return 0, false
	}
	return best.Owner, true
}

func (pw *PhysicsWorld) verticalHit(origin, end mgl64.Vec3, filter cp.ShapeFilter) (uint64, bool) {
	point := cp.Vector{X: origin.X(), Y: origin.Z()}
	lo := math.Min(origin.Y(), end.Y())
	hi := math.Max(origin.Y(), end.Y())

	var best *Volume
	bestDist := math.Inf(1)
	pw.space.BBQuery(cp.NewBBForCircle(point, groundEpsilon), filter, func(shape *cp.Shape, _ interface{}) {
		v, ok := shape.UserData.(*Volume)
		if !ok || point.Distance(cp.Vector{X: v.Center.X(), Y: v.Center.Z()}) > v.Radius {
			return
		}
		if v.Center.Y()+v.HalfHeight < lo || v.Center.Y()-v.HalfHeight > hi {
			return
		}
		d := math.Abs(v.Center.Y() - origin.Y())
		if d < bestDist {
			best = v
			bestDist = d
		}
	}, nil)
	if best == nil {
		return 0, false
	}
	return best.Owner, true
}

// Overlap returns the owners of every volume on mask that intersects the
// sphere at center, ordered by owner.
func (pw *PhysicsWorld) Overlap(center mgl64.Vec3, radius float64, mask uint) []uint64 {
	if pw == nil || pw.space == nil || radius <= 0 {
		return nil
	}
	point := cp.Vector{X: center.X(), Y: center.Z()}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)

	var out []uint64
	pw.space.BBQuery(cp.NewBBForCircle(point, radius), filter, func(shape *cp.Shape, _ interface{}) {
		v, ok := shape.UserData.(*Volume)
		if !ok {
			return
		}
		horizontal := point.Distance(cp.Vector{X: v.Center.X(), Y: v.Center.Z()}) - v.Radius
		vertical := math.Abs(center.Y()-v.Center.Y()) - v.HalfHeight
		if math.Max(horizontal, 0) > radius || math.Max(vertical, 0) > radius {
			return
		}
		out = append(out, v.Owner)
	}, nil)

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Volumes returns a snapshot of the registered volumes for debug drawing.
func (pw *PhysicsWorld) Volumes() []Volume {
	if pw == nil {
		return nil
	}
	out := make([]Volume, 0, len(pw.volumes))
	for _, v := range pw.volumes {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Owner < out[j].Owner })
	return out
}

// Platforms returns a snapshot of the registered platforms for debug drawing.
func (pw *PhysicsWorld) Platforms() []Platform {
	if pw == nil {
		return nil
	}
	out := make([]Platform, 0, len(pw.platforms))
	for _, p := range pw.platforms {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Owner < out[j].Owner })
	return out
}
