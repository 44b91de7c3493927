package component

type InteractableKind string

const (
	KindLift         InteractableKind = "lift"
	KindDisplacement InteractableKind = "displacement"
)

// Interactable is the shared contract of everything a player can engage.
// Kind selects the behavior that handles engage, drop and per-tick update.
type Interactable struct {
	Name        string
	Message     string
	CanInteract bool

	// Distance is the largest player distance at which the object accepts
	// an interaction. Zero means no limit beyond the interactor radius.
	Distance float64
	Kind     InteractableKind

	// Condition is an optional script path; the script decides through its
	// allow variable whether the object is engageable right now.
	Condition string
}

var InteractableComponent = NewComponent[Interactable]()
