package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

const (
	stickDeadzone = 0.2
	// mouseScale turns cursor pixels into look units.
	mouseScale = 0.1
	// stickLookScale turns full right stick deflection into look units per frame.
	stickLookScale = 2.5
)

type keyBindings struct {
	forward, back, left, right ebiten.Key
	run, jump                  ebiten.Key
	engage, release            ebiten.Key
	climb, lift                ebiten.Key
	pause                      ebiten.Key
}

func defaultKeyBindings() keyBindings {
	return keyBindings{
		forward: ebiten.KeyW,
		back:    ebiten.KeyS,
		left:    ebiten.KeyA,
		right:   ebiten.KeyD,
		run:     ebiten.KeyShiftLeft,
		jump:    ebiten.KeySpace,
		engage:  ebiten.KeyE,
		release: ebiten.KeyG,
		climb:   ebiten.KeyF,
		lift:    ebiten.KeyF,
		pause:   ebiten.KeyEscape,
	}
}

// parseKeyBindings overlays the named keys of spec on the defaults.
func parseKeyBindings(spec prefabs.KeyBindingsSpec) (keyBindings, error) {
	keys := defaultKeyBindings()
	fields := []struct {
		name string
		text string
		dst  *ebiten.Key
	}{
		{"forward", spec.Forward, &keys.forward},
		{"back", spec.Back, &keys.back},
		{"left", spec.Left, &keys.left},
		{"right", spec.Right, &keys.right},
		{"run", spec.Run, &keys.run},
		{"jump", spec.Jump, &keys.jump},
		{"engage", spec.Engage, &keys.engage},
		{"release", spec.Release, &keys.release},
		{"climb", spec.Climb, &keys.climb},
		{"lift", spec.Lift, &keys.lift},
		{"pause", spec.Pause, &keys.pause},
	}
	for _, f := range fields {
		if f.text == "" {
			continue
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(f.text)); err != nil {
			return keys, fmt.Errorf("keys: %s: %w", f.name, err)
		}
		*f.dst = k
	}
	return keys, nil
}

// ebitenInput samples keyboard, mouse and the first gamepad.
type ebitenInput struct {
	keys     keyBindings
	captured bool
	lastX    int
	lastY    int
	primed   bool
}

func newEbitenInput(keys keyBindings) *ebitenInput {
	return &ebitenInput{keys: keys}
}

// Capture grabs or frees the cursor. Mouse look only runs while captured.
func (i *ebitenInput) Capture(on bool) {
	i.captured = on
	i.primed = false
	if on {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (i *ebitenInput) PausePressed() bool {
	if inpututil.IsKeyJustPressed(i.keys.pause) {
		return true
	}
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

func (i *ebitenInput) Sample(in *component.Input) {
	k := i.keys
	*in = component.Input{
		Run:            ebiten.IsKeyPressed(k.run),
		Jump:           ebiten.IsKeyPressed(k.jump),
		JumpPressed:    inpututil.IsKeyJustPressed(k.jump),
		EngagePressed:  inpututil.IsKeyJustPressed(k.engage),
		ReleasePressed: inpututil.IsKeyJustPressed(k.release),
		ClimbHeld:      ebiten.IsKeyPressed(k.climb),
		LiftHeld:       ebiten.IsKeyPressed(k.lift),
	}
	in.MoveX = axis(ebiten.IsKeyPressed(k.left), ebiten.IsKeyPressed(k.right))
	in.MoveZ = axis(ebiten.IsKeyPressed(k.back), ebiten.IsKeyPressed(k.forward))

	x, y := ebiten.CursorPosition()
	if i.captured && i.primed {
		in.LookX = float64(x-i.lastX) * mouseScale
		in.LookY = -float64(y-i.lastY) * mouseScale
	}
	i.lastX, i.lastY = x, y
	i.primed = i.captured

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return
	}
	id := gamepads[0]

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(lx, ly) > stickDeadzone {
		in.MoveX = lx
		in.MoveZ = -ly
	}
	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		in.LookX += rx * stickLookScale
		in.LookY -= ry * stickLookScale
	}

	in.Run = in.Run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick)
	in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.EngagePressed = in.EngagePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	in.ReleasePressed = in.ReleasePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	held := ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
	in.ClimbHeld = in.ClimbHeld || held
	in.LiftHeld = in.LiftHeld || held
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}
