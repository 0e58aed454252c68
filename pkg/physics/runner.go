package physics

// Runner advances a world by a fixed time step once per tick while running.
type Runner struct {
	world   *World
	dt      float64
	running bool
	ticks   uint64
}

func NewRunner(world *World, dt float64) *Runner {
	return &Runner{
		world: world,
		dt:    dt,
	}
}

func (r *Runner) Start() {
	r.running = true
}

func (r *Runner) Stop() {
	r.running = false
}

func (r *Runner) Running() bool {
	return r.running
}

// Tick steps the world once if the runner is running and reports whether it did.
func (r *Runner) Tick() bool {
	if !r.running || r.world == nil {
		return false
	}
	r.world.Step(r.dt)
	r.ticks++
	return true
}

// Ticks returns the number of steps taken.
func (r *Runner) Ticks() uint64 {
	return r.ticks
}
