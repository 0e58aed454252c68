package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// GravityUnit converts a gravity vector multiplied by its scale into world
// acceleration in pixels per second squared. Gravity scales are expressed per
// millisecond squared.
const GravityUnit = 1e6

var (
	ErrWorldClosed   = errors.New("world is closed")
	ErrDuplicateBody = errors.New("duplicate body id")
)

// Gravity is a direction and a scale. The effective acceleration is
// (X, Y) * Scale * GravityUnit.
type Gravity struct {
	X     float64
	Y     float64
	Scale float64
}

// Iterations are the solver iteration counts.
type Iterations struct {
	Velocity   int
	Position   int
	Constraint int
}

var (
	DefaultGravity    = Gravity{X: 0, Y: -5, Scale: 0}
	DefaultIterations = Iterations{Velocity: 4, Position: 6, Constraint: 2}
)

// solverIterations folds the counts into the single iteration count of the
// impulse solver, which resolves contacts and joints in the same passes.
func (it Iterations) solverIterations() uint {
	var n int
	for _, c := range []int{it.Velocity, it.Position, it.Constraint} {
		if c > 0 {
			n += c
		}
	}
	return uint(n)
}

// World owns every body in a simulation.
type World struct {
	space      *cp.Space
	gravity    Gravity
	iterations Iterations

	// bodies is kept in insertion order.
	bodies      []*Body
	byID        map[string]*Body
	constraints map[*cp.Constraint]struct{}
	nextID      int
}

func NewWorld() *World {
	w := &World{
		space:       cp.NewSpace(),
		byID:        make(map[string]*Body),
		constraints: make(map[*cp.Constraint]struct{}),
	}
	w.Configure(DefaultGravity, DefaultIterations)
	return w
}

// Configure sets the gravity and solver iterations. Values are passed to the
// solver unchecked.
func (w *World) Configure(g Gravity, it Iterations) {
	w.gravity = g
	w.iterations = it
	if w.space == nil {
		return
	}
	w.space.SetGravity(cp.Vector{
		X: g.X * g.Scale * GravityUnit,
		Y: g.Y * g.Scale * GravityUnit,
	})
	w.space.Iterations = it.solverIterations()
}

func (w *World) Gravity() Gravity {
	return w.gravity
}

func (w *World) Iterations() Iterations {
	return w.iterations
}

// Add inserts bodies into the world. Bodies without an ID are given one.
// Either all bodies are added or none are.
func (w *World) Add(bodies ...*Body) error {
	if w.space == nil {
		return ErrWorldClosed
	}

	seen := make(map[string]struct{}, len(bodies))
	for _, b := range bodies {
		if b == nil {
			return fmt.Errorf("cannot add nil body")
		}
		if b.id == "" {
			continue
		}
		if _, ok := w.byID[b.id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBody, b.id)
		}
		if _, ok := seen[b.id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBody, b.id)
		}
		seen[b.id] = struct{}{}
	}

	for _, b := range bodies {
		if b.id == "" {
			b.id = w.generateID()
		}
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		w.bodies = append(w.bodies, b)
		w.byID[b.id] = b
	}
	return nil
}

func (w *World) generateID() string {
	for {
		w.nextID++
		id := fmt.Sprintf("body-%d", w.nextID)
		if _, ok := w.byID[id]; !ok {
			return id
		}
	}
}

// Bodies returns the bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) Body(id string) *Body {
	return w.byID[id]
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// BodyAt returns the dynamic body under the point (x, y), or nil.
func (w *World) BodyAt(x, y float64) *Body {
	if w.space == nil {
		return nil
	}
	info := w.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return nil
	}
	b, ok := info.Shape.UserData.(*Body)
	if !ok || b.IsStatic() {
		return nil
	}
	return b
}

func (w *World) AddConstraint(c *cp.Constraint) error {
	if w.space == nil {
		return ErrWorldClosed
	}
	if _, ok := w.constraints[c]; ok {
		return nil
	}
	w.space.AddConstraint(c)
	w.constraints[c] = struct{}{}
	return nil
}

// RemoveConstraint removes c if it belongs to the world.
func (w *World) RemoveConstraint(c *cp.Constraint) {
	if _, ok := w.constraints[c]; !ok {
		return
	}
	delete(w.constraints, c)
	if w.space != nil {
		w.space.RemoveConstraint(c)
	}
}

func (w *World) ConstraintCount() int {
	return len(w.constraints)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w.space == nil {
		return
	}
	w.space.Step(dt)
}

// Clear removes every body and constraint from the world.
func (w *World) Clear() {
	if w.space != nil {
		for c := range w.constraints {
			w.space.RemoveConstraint(c)
		}
		for _, b := range w.bodies {
			w.space.RemoveShape(b.shape)
			w.space.RemoveBody(b.body)
		}
	}
	w.constraints = make(map[*cp.Constraint]struct{})
	w.bodies = nil
	w.byID = make(map[string]*Body)
}

// Close clears the world and releases the solver. A closed world rejects new
// bodies and ignores steps.
func (w *World) Close() {
	w.Clear()
	w.space = nil
}

func (w *World) Closed() bool {
	return w.space == nil
}
