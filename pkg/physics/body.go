package physics

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	}
	return "unknown"
}

type RenderOptions struct {
	// FillStyle is the fill color used when drawing the body.
	FillStyle color.Color
}

// BodyOptions holds every recognized body setting.
type BodyOptions struct {
	// IsStatic bodies have infinite mass and never move.
	IsStatic bool
	// Restitution is the bounciness. Values above 1 add energy on impact.
	Restitution float64
	// Mass overrides the density derived mass when positive.
	Mass float64
	// FrictionAir is the fraction of velocity lost every step.
	FrictionAir float64
	// Density is used to derive the mass from the area when Mass is not set.
	Density float64
	// FrictionStatic is kept on the body for completeness. The solver uses a
	// single friction coefficient and does not read it.
	FrictionStatic float64
	// Friction is the surface friction coefficient.
	Friction float64
	// ID identifies the body within its world. An empty ID is assigned on Add.
	ID string
	// Force is applied once, on the first step after the body is created. Like
	// gravity it is expressed per millisecond squared and scaled by
	// GravityUnit.
	Force Vector
	// Render holds drawing options.
	Render RenderOptions
}

// DefaultBodyOptions returns the defaults applied to bodies created without
// explicit settings.
func DefaultBodyOptions() BodyOptions {
	return BodyOptions{
		Restitution:    0,
		FrictionAir:    0.01,
		Density:        0.001,
		FrictionStatic: 0.5,
		Friction:       0.1,
		Render: RenderOptions{
			FillStyle: color.White,
		},
	}
}

// Body is a rigid body together with its single collision shape.
type Body struct {
	id     string
	kind   ShapeKind
	opts   BodyOptions
	width  float64
	height float64
	radius float64

	body  *cp.Body
	shape *cp.Shape
}

// NewRectangle creates a rectangle body centred on (x, y).
func NewRectangle(x, y, w, h float64, opts BodyOptions) *Body {
	var body *cp.Body
	if opts.IsStatic {
		body = cp.NewStaticBody()
	} else {
		mass := bodyMass(opts, w*h)
		body = cp.NewBody(mass, cp.MomentForBox(mass, w, h))
	}
	body.SetPosition(cp.Vector{X: x, Y: y})

	b := &Body{
		id:     opts.ID,
		kind:   ShapeRectangle,
		opts:   opts,
		width:  w,
		height: h,
		body:   body,
		shape:  cp.NewBox(body, w, h, 0),
	}
	b.applyOptions()
	return b
}

// NewCircle creates a circle body centred on (x, y).
func NewCircle(x, y, r float64, opts BodyOptions) *Body {
	var body *cp.Body
	if opts.IsStatic {
		body = cp.NewStaticBody()
	} else {
		mass := bodyMass(opts, math.Pi*r*r)
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, r, cp.Vector{}))
	}
	body.SetPosition(cp.Vector{X: x, Y: y})

	b := &Body{
		id:     opts.ID,
		kind:   ShapeCircle,
		opts:   opts,
		width:  2 * r,
		height: 2 * r,
		radius: r,
		body:   body,
		shape:  cp.NewCircle(body, r, cp.Vector{}),
	}
	b.applyOptions()
	return b
}

func bodyMass(opts BodyOptions, area float64) float64 {
	if opts.Mass > 0 {
		return opts.Mass
	}
	if m := opts.Density * area; m > 0 {
		return m
	}
	return 1
}

func (b *Body) applyOptions() {
	// The solver multiplies the elasticities of both shapes in a contact, so
	// two bodies with equal restitution e resolve to e rather than e*e.
	b.shape.SetElasticity(math.Sqrt(math.Max(b.opts.Restitution, 0)))
	b.shape.SetFriction(b.opts.Friction)
	b.shape.UserData = b
	b.body.UserData = b

	if b.opts.IsStatic {
		return
	}

	b.body.SetForce(b.opts.Force.cp().Mult(GravityUnit))

	if frictionAir := b.opts.FrictionAir; frictionAir != 0 {
		b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, damping, dt)
			v := body.Velocity().Mult(1 - frictionAir)
			body.SetVelocity(v.X, v.Y)
		})
	}
}

func (b *Body) ID() string {
	return b.id
}

func (b *Body) Kind() ShapeKind {
	return b.kind
}

func (b *Body) IsStatic() bool {
	return b.opts.IsStatic
}

// Options returns the options the body was created with.
func (b *Body) Options() BodyOptions {
	return b.opts
}

func (b *Body) FillStyle() color.Color {
	return b.opts.Render.FillStyle
}

func (b *Body) Position() Vector {
	return vectorFromCP(b.body.Position())
}

func (b *Body) Velocity() Vector {
	return vectorFromCP(b.body.Velocity())
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// Mass returns the body mass, infinite for static bodies.
func (b *Body) Mass() float64 {
	if b.opts.IsStatic {
		return math.Inf(1)
	}
	return b.body.Mass()
}

// Radius returns the circle radius, or zero for rectangles.
func (b *Body) Radius() float64 {
	return b.radius
}

// Size returns the unrotated width and height of the body.
func (b *Body) Size() (float64, float64) {
	return b.width, b.height
}

// Bounds returns the axis aligned bounding box of the body at its current
// position and angle.
func (b *Body) Bounds() Bounds {
	p := b.Position()
	hw, hh := b.width/2, b.height/2
	if b.kind == ShapeRectangle {
		sin, cos := math.Sincos(b.Angle())
		sin, cos = math.Abs(sin), math.Abs(cos)
		hw, hh = hw*cos+hh*sin, hw*sin+hh*cos
	}
	return Bounds{
		Min: Vector{X: p.X - hw, Y: p.Y - hh},
		Max: Vector{X: p.X + hw, Y: p.Y + hh},
	}
}

// Contains reports whether the point (x, y) lies inside the body's shape.
func (b *Body) Contains(x, y float64) bool {
	p := b.Position()
	dx, dy := x-p.X, y-p.Y
	if b.kind == ShapeCircle {
		return dx*dx+dy*dy <= b.radius*b.radius
	}
	sin, cos := math.Sincos(-b.Angle())
	lx, ly := dx*cos-dy*sin, dx*sin+dy*cos
	return math.Abs(lx) <= b.width/2 && math.Abs(ly) <= b.height/2
}
