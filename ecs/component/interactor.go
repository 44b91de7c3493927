package component

// InteractionSession records what a player currently holds. Target is the
// held entity (0 when nothing is held). It is the only place held state
// lives; interactables ask the session instead of keeping a back reference.
type InteractionSession struct {
	Target  uint64
	Kind    InteractableKind
	Started uint64
}

func (s *InteractionSession) Active() bool {
	return s != nil && s.Target != 0
}

func (s *InteractionSession) Holds(target uint64) bool {
	return s != nil && target != 0 && s.Target == target
}

// Begin starts a session on target. It refuses when another target is held.
func (s *InteractionSession) Begin(target uint64, kind InteractableKind, frame uint64) bool {
	if s == nil || target == 0 {
		return false
	}
	if s.Target != 0 && s.Target != target {
		return false
	}
	s.Target = target
	s.Kind = kind
	s.Started = frame
	return true
}

// End clears the session if it belongs to target.
func (s *InteractionSession) End(target uint64) bool {
	if !s.Holds(target) {
		return false
	}
	s.Clear()
	return true
}

func (s *InteractionSession) Clear() {
	if s == nil {
		return
	}
	*s = InteractionSession{}
}

// Interactor scans for interactables in front of and around a player.
type Interactor struct {
	Radius    float64
	LayerMask uint
	Session   InteractionSession

	// Candidate is the entity the prompt currently points at, 0 for none.
	Candidate uint64
}

var InteractorComponent = NewComponent[Interactor]()
