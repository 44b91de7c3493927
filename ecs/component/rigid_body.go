package component

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is the simulated state of a dynamic entity. A kinematic body is
// skipped by the physics step and only moves when something writes its
// Transform.
type RigidBody struct {
	Velocity   mgl64.Vec3
	Mass       float64
	Kinematic  bool
	UseGravity bool
}

// AddImpulse changes velocity by impulse/mass. Kinematic bodies ignore it.
func (b *RigidBody) AddImpulse(impulse mgl64.Vec3) {
	if b == nil || b.Kinematic {
		return
	}
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(1 / mass))
}

var RigidBodyComponent = NewComponent[RigidBody]()
