package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/gymroom/assets/procedural"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/prefabs"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = procedural.SampleRate

const proceduralPrefix = "procedural:"

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// LoadAudioPlayer resolves an audio prefab entry into a player. Files named
// "procedural:<clip>" are synthesized; anything else is read from disk,
// relative to the assets directory, and decoded as wav when it has that
// extension.
func LoadAudioPlayer(spec prefabs.AudioSpec) (component.AudioPlayer, error) {
	if clip, ok := strings.CutPrefix(spec.File, proceduralPrefix); ok {
		pcm, err := procedural.Synthesize(clip)
		if err != nil {
			return nil, fmt.Errorf("assets: %s: %w", spec.Name, err)
		}
		return sharedContext().NewPlayerFromBytes(pcm), nil
	}

	b, err := LoadFile(spec.File)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", spec.File, err)
	}
	if strings.EqualFold(filepath.Ext(spec.File), ".wav") {
		stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", spec.File, err)
		}
		return sharedContext().NewPlayer(stream)
	}

	// Already decoded PCM in ebiten's native format.
	return sharedContext().NewPlayerFromBytes(b), nil
}

// LoadFile reads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("empty asset path")
	}
	return os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean)))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(filepath.ToSlash(path), "assets/")
}
