package component

// Input stores per-frame input state for an entity. It is written once per
// frame by the input system and only read afterwards.
type Input struct {
	MoveX float64
	MoveZ float64
	LookX float64
	LookY float64

	Run         bool
	Jump        bool
	JumpPressed bool

	EngagePressed  bool
	ReleasePressed bool
	ClimbHeld      bool
	LiftHeld       bool
}

// Moving reports whether either movement axis is non-zero.
func (i *Input) Moving() bool {
	return i != nil && (i.MoveX != 0 || i.MoveZ != 0)
}

var InputComponent = NewComponent[Input]()
