package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	mapZoom             = 48.0
	debugCircleSegments = 24
	debugDotSize        = 4
	headingLength       = 0.8
	gaugeWidth          = 14
	gaugeHeight         = 120
)

// topDown maps the XZ plane onto the screen, centered on a focus point,
// with +Z pointing up the screen.
type topDown struct {
	screen *ebiten.Image
	focus  mgl64.Vec3
	zoom   float64
}

func newTopDown(screen *ebiten.Image, focus mgl64.Vec3) *topDown {
	return &topDown{screen: screen, focus: focus, zoom: mapZoom}
}

func (v *topDown) toScreen(x, z float64) (float32, float32) {
	b := v.screen.Bounds()
	sx := float64(b.Dx())/2 + (x-v.focus.X())*v.zoom
	sy := float64(b.Dy())/2 - (z-v.focus.Z())*v.zoom
	return float32(sx), float32(sy)
}

func (v *topDown) line(a, b mgl64.Vec3, c color.Color) {
	x1, y1 := v.toScreen(a.X(), a.Z())
	x2, y2 := v.toScreen(b.X(), b.Z())
	vector.StrokeLine(v.screen, x1, y1, x2, y2, 1, c, true)
}

func (v *topDown) circle(center mgl64.Vec3, radius float64, c color.Color) {
	x, y := v.toScreen(center.X(), center.Z())
	vector.StrokeCircle(v.screen, x, y, float32(radius*v.zoom), 1, c, true)
}

// DrawWorld draws platforms, props and the player from above. With debug
// on it also draws the probe space, the interaction radius, the climb gauge
// of a hanging bar and a state readout.
func DrawWorld(w *ecs.World, screen *ebiten.Image, debug bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	view := newTopDown(screen, transform.Position)

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		tint := p.Tint
		if tint == nil {
			tint = colornames.Dimgray
		}
		x, y := view.toScreen(t.Position.X()-p.HalfExtents.X(), t.Position.Z()+p.HalfExtents.Z())
		wd := float32(2 * p.HalfExtents.X() * view.zoom)
		ht := float32(2 * p.HalfExtents.Z() * view.zoom)
		vector.DrawFilledRect(screen, x, y, wd, ht, tint, false)
	})

	interactor, _ := ecs.Get(w, player, component.InteractorComponent.Kind())
	ecs.ForEach3(w, component.InteractableComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, it *component.Interactable, t *component.Transform, c *component.Collider) {
		col := colornames.Steelblue
		switch {
		case interactor != nil && interactor.Session.Holds(uint64(e)):
			col = colornames.Gold
		case interactor != nil && interactor.Candidate == uint64(e):
			col = colornames.Lightgreen
		case !it.CanInteract:
			col = colornames.Gray
		}
		x, y := view.toScreen(t.Position.X(), t.Position.Z())
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(c.Radius, 0.1)*view.zoom), col, true)
	})

	view.circle(transform.Position, 0.4, colornames.White)
	look, _ := ecs.Get(w, player, component.LookComponent.Kind())
	heading := transform.Frame().Forward().Mul(headingLength)
	if look != nil {
		heading = component.YawRotation(look.Yaw).Rotate(mgl64.Vec3{0, 0, headingLength})
	}
	view.line(transform.Position, transform.Position.Add(heading), colornames.White)

	if !debug {
		return
	}

	if pw := w.PhysicsWorld(); pw != nil {
		cp.DrawSpace(pw.Space(), &spaceDrawer{view: view})
	}
	if interactor != nil {
		view.circle(transform.Position, interactor.Radius, colornames.Orange)
	}
	drawClimbGauges(w, screen, view)
	ebitenutil.DebugPrintAt(screen, playerState(w, player), 10, 30)
}

// drawClimbGauges draws each bar's climb path as a side gauge next to the
// bar, filled to the current normalized height.
func drawClimbGauges(w *ecs.World, screen *ebiten.Image, view *topDown) {
	ecs.ForEach2(w, component.DisplacementComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, d *component.Displacement, t *component.Transform) {
		view.line(d.Start.Position, d.End.Position, colornames.Orange)
		x, y := view.toScreen(t.Position.X(), t.Position.Z())
		x += 20
		y -= gaugeHeight / 2
		vector.StrokeRect(screen, x, y, gaugeWidth, gaugeHeight, 1, colornames.Orange, false)
		fill := float32(d.Height) * gaugeHeight
		vector.DrawFilledRect(screen, x, y+gaugeHeight-fill, gaugeWidth, fill, colornames.Orange, false)
		ebitenutil.DebugPrintAt(screen, d.Phase.String(), int(x)+gaugeWidth+4, int(y))
	})
}

func playerState(w *ecs.World, player ecs.Entity) string {
	var b strings.Builder
	if loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind()); ok {
		fmt.Fprintf(&b, "Grounded: %v\nRunning: %v\nSpeed: %.2f\nLocomotion: %v\n", loco.Grounded, loco.Running, loco.CurrentSpeed, loco.Enabled)
	}
	if look, ok := ecs.Get(w, player, component.LookComponent.Kind()); ok {
		fmt.Fprintf(&b, "Yaw: %.1f Pitch: %.1f\n", look.Yaw, look.Pitch)
	}
	if arm, ok := ecs.Get(w, player, component.ArmPoseComponent.Kind()); ok {
		fmt.Fprintf(&b, "Arm: %.1f\n", arm.Angle)
	}
	if interactor, ok := ecs.Get(w, player, component.InteractorComponent.Kind()); ok {
		session := "none"
		if interactor.Session.Active() {
			session = fmt.Sprintf("%s #%d", interactor.Session.Kind, interactor.Session.Target)
			if lift, ok := ecs.Get(w, ecs.Entity(interactor.Session.Target), component.LiftComponent.Kind()); ok {
				session += fmt.Sprintf(" angle %.1f", lift.Angle)
			}
		}
		fmt.Fprintf(&b, "Session: %s\n", session)
	}
	return b.String()
}

// spaceDrawer draws the Chipmunk probe space through a topDown view. Chipmunk
// Y is world Z.
type spaceDrawer struct {
	view *topDown
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: pos.X + math.Cos(t)*radius, Y: pos.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, outline)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.view.toScreen(pos.X, pos.Y)
	vector.DrawFilledCircle(d.view.screen, x, y, float32(size/2), toNRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	d.view.line(mgl64.Vec3{a.X, 0, a.Y}, mgl64.Vec3{b.X, 0, b.Y}, toNRGBA(c))
}

func (d *spaceDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
