package system

import (
	"testing"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type fakePlayer struct {
	playing bool
	plays   int
	pauses  int
	rewinds int
	volume  float64
}

func (p *fakePlayer) IsPlaying() bool       { return p.playing }
func (p *fakePlayer) Play()                 { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()                { p.playing = false; p.pauses++ }
func (p *fakePlayer) Rewind() error         { p.rewinds++; return nil }
func (p *fakePlayer) SetVolume(vol float64) { p.volume = vol }

func TestFootstepsFollowGroundedMovement(t *testing.T) {
	f := newFixture(t, true)
	clip := &fakePlayer{}
	audioComp := mustGet(t, f.w, f.player, component.AudioComponent.Kind())
	*audioComp = component.Audio{
		Names:   []string{"walk"},
		Players: []component.AudioPlayer{clip},
		Volume:  []float64{0.6},
		Play:    []bool{false},
		Stop:    []bool{false},
	}

	f.stepN(3, component.Input{MoveZ: 1})
	if !clip.playing || clip.plays != 1 || clip.volume != 0.6 {
		t.Fatalf("walking should start the clip once, got %+v", *clip)
	}

	f.step(component.Input{})
	if clip.playing || clip.pauses != 1 {
		t.Fatalf("standing still should pause the clip, got %+v", *clip)
	}

	loco := mustGet(t, f.w, f.player, component.LocomotionComponent.Kind())
	loco.Enabled = false
	f.step(component.Input{MoveZ: 1})
	if clip.playing {
		t.Fatal("no footsteps while locomotion is taken over")
	}
}

func TestAudioSystemToleratesShortSlices(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	clip := &fakePlayer{}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Names:   []string{"a", "b"},
		Players: []component.AudioPlayer{clip, nil},
		Play:    []bool{true, true},
		Stop:    []bool{false, false},
	}); err != nil {
		t.Fatal(err)
	}

	NewAudioSystem().Update(w)

	if clip.plays != 1 || clip.rewinds != 1 {
		t.Fatalf("expected one rewind and play, got %+v", *clip)
	}
}
