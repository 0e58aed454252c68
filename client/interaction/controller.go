package interaction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/ballpit/pkg/physics"
)

// Spawner receives the bodies created by a Controller.
type Spawner interface {
	Add(bodies ...*physics.Body) error
}

type Options struct {
	// MaxBodies is the spawn ceiling. Once the move count exceeds it no more
	// bodies are spawned.
	MaxBodies int
	// MinRadius and MaxRadius bound spawned radii to [MinRadius, MaxRadius).
	MinRadius float64
	MaxRadius float64
	// Material is applied to every spawned body. Its ID is replaced.
	Material physics.BodyOptions
	// Rand draws radii. A time seeded source is used when nil.
	Rand *rand.Rand
}

// Controller spawns a circle under the pointer for every move made while the
// pointer is released, until the move count passes the ceiling.
type Controller struct {
	spawner Spawner
	opts    Options
	rand    *rand.Rand

	pressed bool
	count   int
}

func NewController(spawner Spawner, opts Options) *Controller {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		spawner: spawner,
		opts:    opts,
		rand:    r,
	}
}

func (c *Controller) OnPress() {
	c.pressed = true
}

func (c *Controller) OnRelease() {
	c.pressed = false
}

// OnMove counts the move and spawns a circle at (x, y) if the pointer is
// released and the ceiling has not been passed. It returns the spawned body,
// or nil when nothing was spawned.
func (c *Controller) OnMove(x, y float64) (*physics.Body, error) {
	c.count++
	if c.count > c.opts.MaxBodies {
		return nil, nil
	}
	if c.pressed {
		return nil, nil
	}

	material := c.opts.Material
	material.ID = fmt.Sprintf("id-%d", c.count)
	body := physics.NewCircle(x, y, c.radius(), material)
	if err := c.spawner.Add(body); err != nil {
		return nil, fmt.Errorf("failed to add body %s: %v", material.ID, err)
	}
	return body, nil
}

func (c *Controller) radius() float64 {
	return c.opts.MinRadius + c.rand.Float64()*(c.opts.MaxRadius-c.opts.MinRadius)
}

// Count returns the number of moves seen, including moves that spawned nothing.
func (c *Controller) Count() int {
	return c.count
}

func (c *Controller) Pressed() bool {
	return c.pressed
}

// Capped reports whether spawning has stopped for good.
func (c *Controller) Capped() bool {
	return c.count >= c.opts.MaxBodies
}
