package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// PrefabSource records which prefab file an entity was built from so tuning
// can be re-applied when that file changes.
type PrefabSource struct {
	File      string
	Overrides map[string]any
}

var PrefabSourceComponent = NewComponent[PrefabSource]()
