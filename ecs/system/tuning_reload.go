package system

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/ecs/entity"
	"github.com/milk9111/gymroom/prefabs"
)

// TuningReloadSystem pushes re-read prefab tunables into live entities.
type TuningReloadSystem struct {
	builder     *entity.Builder
	interaction *InteractionSystem
}

func NewTuningReloadSystem(builder *entity.Builder, interaction *InteractionSystem) *TuningReloadSystem {
	return &TuningReloadSystem{builder: builder, interaction: interaction}
}

func (s *TuningReloadSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var files []string
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, req *component.ReloadRequest) {
		files = append(files, prefabs.Name(req.File))
		ecs.DestroyEntity(w, e)
	})

	for _, file := range files {
		if strings.EqualFold(filepath.Ext(file), ".tengo") {
			if s.interaction != nil {
				s.interaction.ForgetCondition(file)
			}
			log.Printf("prefabs: reloaded script %s", file)
			continue
		}
		s.reload(w, file)
	}
}

func (s *TuningReloadSystem) reload(w *ecs.World, file string) {
	count := 0
	ecs.ForEach(w, component.PrefabSourceComponent.Kind(), func(e ecs.Entity, source *component.PrefabSource) {
		if source.File != file {
			return
		}
		var err error
		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			var spec prefabs.PlayerSpec
			if spec, err = prefabs.LoadOverlaid[prefabs.PlayerSpec](file, source.Overrides); err == nil {
				s.builder.ApplyPlayerTuning(w, e, spec)
			}
		case ecs.Has(w, e, component.LiftComponent.Kind()):
			var spec prefabs.DumbbellSpec
			if spec, err = prefabs.LoadOverlaid[prefabs.DumbbellSpec](file, source.Overrides); err == nil {
				entity.ApplyDumbbellTuning(w, e, spec)
			}
		case ecs.Has(w, e, component.DisplacementComponent.Kind()):
			var spec prefabs.PullUpBarSpec
			if spec, err = prefabs.LoadOverlaid[prefabs.PullUpBarSpec](file, source.Overrides); err == nil {
				entity.ApplyPullUpBarTuning(w, e, spec)
			}
		default:
			return
		}
		if err != nil {
			log.Printf("prefabs: reload %s: %v", file, err)
			return
		}
		count++
	})
	if count > 0 {
		log.Printf("prefabs: reloaded %s into %d entities", file, count)
	}
}
