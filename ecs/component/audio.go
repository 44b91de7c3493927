package component

// AudioPlayer is the part of *audio.Player the audio system drives.
type AudioPlayer interface {
	IsPlaying() bool
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

type Audio struct {
	Names   []string
	Players []AudioPlayer
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Index returns the slot of the named clip, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
