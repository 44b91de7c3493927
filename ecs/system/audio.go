package system

import (
	"log"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Players), len(audioComp.Play), len(audioComp.Stop))

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && !player.IsPlaying() {
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				if err := player.Rewind(); err != nil {
					log.Printf("audio: rewind %s: %v", clipName(audioComp, i), err)
				}
				player.Play()
			}

			audioComp.Play[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}

func clipName(audioComp *component.Audio, i int) string {
	if i < len(audioComp.Names) {
		return audioComp.Names[i]
	}
	return "clip"
}
