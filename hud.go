package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gymroom/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const crosshairSize = 6

// HUD shows the interaction prompt at the bottom of the screen, the last
// interaction event in the top left corner and a crosshair.
type HUD struct {
	ui     *ebitenui.UI
	prompt *widget.Text
	status *widget.Text
}

func NewHUD() *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	prompt := widget.NewText(
		widget.TextOpts.Text("", &face, colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	status := widget.NewText(
		widget.TextOpts.Text("", &face, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 24, Right: 24}),
		)),
	)
	root.AddChild(prompt)
	root.AddChild(status)

	return &HUD{ui: &ebitenui.UI{Container: root}, prompt: prompt, status: status}
}

// Sync copies the player's prompt into the widgets.
func (h *HUD) Sync(p *component.Prompt) {
	if h == nil {
		return
	}
	label, status := "", ""
	if p != nil {
		status = p.Status
		if p.Visible {
			label = p.Message
		}
	}
	h.prompt.Label = label
	h.status.Label = status
	if label == "" {
		h.prompt.GetWidget().Visibility = widget.Visibility_Hide
	} else {
		h.prompt.GetWidget().Visibility = widget.Visibility_Show
	}
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 1, c, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 1, c, false)
	h.ui.Draw(screen)
}
