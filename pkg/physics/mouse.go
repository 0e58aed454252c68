package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

type MouseConstraintOptions struct {
	// Stiffness is the fraction of the remaining distance corrected per step,
	// between 0 and 1.
	Stiffness float64
	// MaxForce caps the force the joint applies to the grabbed body.
	MaxForce float64
}

// pointerFollow is how far the pointer body moves towards the pointer per update.
const pointerFollow = 0.25

// MouseConstraint couples the pointer to the body it grabs through a pivot
// joint anchored on a kinematic pointer body.
type MouseConstraint struct {
	world   *World
	opts    MouseConstraintOptions
	pointer *cp.Body
	target  Vector
	joint   *cp.Constraint
	grabbed *Body
}

func NewMouseConstraint(world *World, opts MouseConstraintOptions) *MouseConstraint {
	return &MouseConstraint{
		world:   world,
		opts:    opts,
		pointer: cp.NewKinematicBody(),
	}
}

// Press grabs the dynamic body under (x, y), if any, and reports whether a body
// was grabbed.
func (m *MouseConstraint) Press(x, y float64) bool {
	m.target = Vector{X: x, Y: y}
	if m.joint != nil {
		return true
	}
	b := m.world.BodyAt(x, y)
	if b == nil {
		return false
	}

	point := cp.Vector{X: x, Y: y}
	m.pointer.SetPosition(point)
	m.pointer.SetVelocity(0, 0)

	joint := cp.NewPivotJoint2(m.pointer, b.body, cp.Vector{}, b.body.WorldToLocal(point))
	joint.SetMaxForce(m.opts.MaxForce)
	joint.SetErrorBias(math.Pow(1-m.opts.Stiffness, 60))
	if err := m.world.AddConstraint(joint); err != nil {
		return false
	}

	m.joint = joint
	m.grabbed = b
	return true
}

func (m *MouseConstraint) Move(x, y float64) {
	m.target = Vector{X: x, Y: y}
}

func (m *MouseConstraint) Release() {
	if m.joint != nil {
		m.world.RemoveConstraint(m.joint)
	}
	m.joint = nil
	m.grabbed = nil
}

// Update moves the pointer body towards the pointer, giving it the velocity
// of that move so the joint drags the grabbed body smoothly.
func (m *MouseConstraint) Update(dt float64) {
	if m.joint == nil || dt <= 0 {
		return
	}
	current := m.pointer.Position()
	next := current.Lerp(m.target.cp(), pointerFollow)
	v := next.Sub(current).Mult(1 / dt)
	m.pointer.SetVelocity(v.X, v.Y)
	m.pointer.SetPosition(next)
}

// Grabbed returns the body currently held, or nil.
func (m *MouseConstraint) Grabbed() *Body {
	return m.grabbed
}
