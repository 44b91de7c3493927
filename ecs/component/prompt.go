package component

// Prompt is the read-only channel to the HUD: the interaction hint to show
// and whether to show it. Status carries the last interaction event line.
type Prompt struct {
	Message string
	Visible bool
	Status  string
}

var PromptComponent = NewComponent[Prompt]()
