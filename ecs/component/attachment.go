package component

// Socket selects which frame of the parent an attachment hangs from.
type Socket int

const (
	SocketRoot Socket = iota
	SocketView
	SocketHand
)

func (s Socket) String() string {
	switch s {
	case SocketView:
		return "view"
	case SocketHand:
		return "hand"
	default:
		return "root"
	}
}

// Attachment parents an entity to another one. The hierarchy system
// recomputes the child's Transform from the parent socket and Local every
// frame, and physics leaves attached bodies alone.
type Attachment struct {
	Parent uint64
	Socket Socket
	Local  Frame
}

var AttachmentComponent = NewComponent[Attachment]()
