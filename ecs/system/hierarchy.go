package system

import (
	"log"

	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
)

type HierarchySystem struct{}

func NewHierarchySystem() *HierarchySystem {
	return &HierarchySystem{}
}

func (h *HierarchySystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AttachmentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, attachment *component.Attachment, transform *component.Transform) {
		frame, ok := attachmentFrame(w, attachment)
		if !ok {
			log.Printf("hierarchy: parent %s of %s is gone, detaching", ecs.Entity(attachment.Parent), e)
			ecs.Remove(w, e, component.AttachmentComponent.Kind())
			return
		}
		transform.SetFrame(frame)
	})
}

func attachmentFrame(w *ecs.World, attachment *component.Attachment) (component.Frame, bool) {
	socket, ok := socketFrame(w, ecs.Entity(attachment.Parent), attachment.Socket)
	if !ok {
		return component.Frame{}, false
	}
	return socket.Compose(attachment.Local), true
}

// socketFrame resolves a parent socket to a world frame. View falls back to
// the root when the parent has no Look, Hand to the view when it has no
// hand anchor.
func socketFrame(w *ecs.World, parent ecs.Entity, socket component.Socket) (component.Frame, bool) {
	transform, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
	if !ok {
		return component.Frame{}, false
	}
	frame := transform.Frame()
	if socket == component.SocketRoot {
		return frame, true
	}

	if look, ok := ecs.Get(w, parent, component.LookComponent.Kind()); ok {
		frame = look.ViewFrame(transform.Position)
	}
	if socket == component.SocketView {
		return frame, true
	}

	if hand, ok := ecs.Get(w, parent, component.HandAnchorComponent.Kind()); ok {
		frame = frame.Compose(hand.Frame())
	}
	return frame, true
}
