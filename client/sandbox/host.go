package sandbox

import (
	"fmt"

	"github.com/cbodonnell/ballpit/client/flow"
	"github.com/cbodonnell/ballpit/client/interaction"
	"github.com/cbodonnell/ballpit/client/pointer"
	"github.com/cbodonnell/ballpit/pkg/collisions"
	"github.com/cbodonnell/ballpit/pkg/config"
	"github.com/cbodonnell/ballpit/pkg/log"
	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/google/uuid"
)

// Host owns one mounted physics scene: its world, render surface, run loop and
// pointer handling. A host is mounted once and torn down once.
type Host struct {
	id     string
	opts   Options
	cfg    *config.Config
	logger *log.Logger
	state  flow.SceneState

	world      *physics.World
	surface    Surface
	runner     *physics.Runner
	mouse      *physics.MouseConstraint
	controller *interaction.Controller
	tracker    *pointer.Tracker
	index      *collisions.Index

	viewport physics.Bounds
	// pointerX and pointerY are the last pointer position in world space.
	pointerX, pointerY float64
	hovered            string
}

func NewHost(opts Options) *Host {
	id := uuid.New().String()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Host{
		id:     id,
		opts:   opts,
		cfg:    cfg,
		logger: logger.With("scene", id),
		state:  flow.SceneStateUnmounted,
	}
}

// Mount builds the scene and starts it. On failure the host is torn down and
// an *InitializationError is returned.
func (h *Host) Mount() (err error) {
	if h.state != flow.SceneStateUnmounted {
		return fmt.Errorf("cannot mount scene in state %s", h.state)
	}
	h.state = flow.SceneStateInitializing

	defer func() {
		if err != nil {
			h.logger.Error("Failed to mount scene: %v", err)
			h.teardown()
			err = &InitializationError{Err: err}
		}
	}()

	if h.opts.Element == nil {
		return ErrNoElement
	}
	if h.opts.NewSurface == nil {
		return fmt.Errorf("no surface factory")
	}

	cw, ch := h.opts.Element.ClientWidth(), h.opts.Element.ClientHeight()
	walls, err := collisions.BuildWalls(float64(cw), float64(ch), wallOptionsFromConfig(h.cfg))
	if err != nil {
		return fmt.Errorf("failed to build walls: %w", err)
	}

	h.world = physics.NewWorld()
	h.world.Configure(gravityFromConfig(h.cfg), iterationsFromConfig(h.cfg))

	h.surface, err = h.opts.NewSurface(h.world, cw, ch)
	if err != nil {
		return fmt.Errorf("failed to create render surface: %w", err)
	}

	if err := h.world.Add(walls...); err != nil {
		return fmt.Errorf("failed to add walls: %w", err)
	}

	if h.opts.Pointer != nil {
		h.tracker = pointer.NewTracker(h.opts.Pointer)
	}
	h.mouse = physics.NewMouseConstraint(h.world, mouseOptionsFromConfig(h.cfg))
	h.controller = interaction.NewController(h.world, controllerOptionsFromConfig(h.cfg, h.opts.Rand))
	h.index = collisions.NewIndex(float64(cw), float64(ch))
	h.index.Sync(h.world.Bodies())

	h.viewport = physics.Bounds{
		Min: physics.Vector{X: 0, Y: 0},
		Max: physics.Vector{X: float64(cw), Y: float64(ch)},
	}
	h.surface.LookAt(h.viewport)

	h.runner = physics.NewRunner(h.world, h.cfg.Engine.TimeStep)
	h.runner.Start()
	h.surface.Run()

	h.state = flow.SceneStateRunning
	h.logger.Info("Mounted scene %dx%d", cw, ch)
	return nil
}

// Unmount stops the scene and releases everything it holds. It is safe to
// call more than once.
func (h *Host) Unmount() {
	if h.state == flow.SceneStateTornDown {
		return
	}
	h.teardown()
	h.logger.Info("Unmounted scene")
}

// teardown stops the loop before anything else is released.
func (h *Host) teardown() {
	if h.surface != nil {
		h.surface.Stop()
	}
	if h.runner != nil {
		h.runner.Stop()
	}
	if h.mouse != nil {
		h.mouse.Release()
	}
	if h.world != nil {
		h.world.Clear()
		h.world.Close()
	}
	if h.index != nil {
		h.index.Clear()
	}
	if h.surface != nil {
		if err := h.surface.Close(); err != nil {
			h.logger.Warn("Failed to close render surface: %v", err)
		}
	}

	h.surface = nil
	h.runner = nil
	h.mouse = nil
	h.controller = nil
	h.tracker = nil
	h.index = nil
	h.world = nil
	h.hovered = ""
	h.state = flow.SceneStateTornDown
}

// Update handles pointer input and advances the world one step.
func (h *Host) Update() error {
	if h.state != flow.SceneStateRunning {
		return nil
	}

	if h.tracker != nil {
		for _, e := range h.tracker.Poll() {
			if err := h.HandleEvent(e); err != nil {
				return fmt.Errorf("failed to handle pointer %s: %v", e.Type, err)
			}
		}
	}

	h.mouse.Update(h.cfg.Engine.TimeStep)
	h.runner.Tick()

	h.index.Sync(h.world.Bodies())
	h.hovered = ""
	// the last hit was added last and is drawn on top
	if ids := h.index.At(h.pointerX, h.pointerY); len(ids) > 0 {
		h.hovered = ids[len(ids)-1]
	}

	return nil
}

func (h *Host) HandleEvent(e pointer.Event) error {
	switch e.Type {
	case pointer.EventDown:
		h.HandlePress(e.X, e.Y)
	case pointer.EventUp:
		h.HandleRelease(e.X, e.Y)
	case pointer.EventMove:
		return h.HandleMove(e.X, e.Y)
	}
	return nil
}

func (h *Host) HandlePress(x, y float64) {
	if h.state != flow.SceneStateRunning {
		return
	}
	wx, wy := h.toWorld(x, y)
	if h.mouse.Press(wx, wy) {
		h.logger.Debug("Grabbed body %s", h.mouse.Grabbed().ID())
	}
	h.controller.OnPress()
}

func (h *Host) HandleRelease(x, y float64) {
	if h.state != flow.SceneStateRunning {
		return
	}
	h.toWorld(x, y)
	h.mouse.Release()
	h.controller.OnRelease()
}

func (h *Host) HandleMove(x, y float64) error {
	if h.state != flow.SceneStateRunning {
		return nil
	}
	wx, wy := h.toWorld(x, y)
	h.mouse.Move(wx, wy)

	body, err := h.controller.OnMove(wx, wy)
	if err != nil {
		return fmt.Errorf("failed to spawn body: %v", err)
	}
	if body != nil {
		h.logger.Trace("Spawned body %s at (%0.1f, %0.1f) with radius %0.1f", body.ID(), wx, wy, body.Radius())
	}
	return nil
}

func (h *Host) toWorld(x, y float64) (float64, float64) {
	wx, wy := h.surface.ScreenToWorld(x, y)
	h.pointerX, h.pointerY = wx, wy
	return wx, wy
}

func (h *Host) ID() string {
	return h.id
}

func (h *Host) State() flow.SceneState {
	return h.state
}

// World returns the scene's world, or nil once torn down.
func (h *Host) World() *physics.World {
	return h.world
}

// Surface returns the render surface, or nil once torn down.
func (h *Host) Surface() Surface {
	return h.surface
}

// Running reports whether the step loop is running.
func (h *Host) Running() bool {
	return h.runner != nil && h.runner.Running()
}

// SpawnCount returns the number of pointer moves counted towards the spawn
// ceiling.
func (h *Host) SpawnCount() int {
	if h.controller == nil {
		return 0
	}
	return h.controller.Count()
}

// SpawnLimit returns the spawn ceiling.
func (h *Host) SpawnLimit() int {
	return h.cfg.Spawn.MaxBodies
}

// Pressed reports whether the pointer is held down.
func (h *Host) Pressed() bool {
	return h.controller != nil && h.controller.Pressed()
}

// Hovered returns the id of the dynamic body under the pointer, or "".
func (h *Host) Hovered() string {
	return h.hovered
}

// Viewport returns the world rectangle framed by the camera.
func (h *Host) Viewport() physics.Bounds {
	return h.viewport
}
