package sandbox

import (
	"math/rand"

	"github.com/cbodonnell/ballpit/client/interaction"
	"github.com/cbodonnell/ballpit/client/pointer"
	"github.com/cbodonnell/ballpit/pkg/collisions"
	"github.com/cbodonnell/ballpit/pkg/config"
	"github.com/cbodonnell/ballpit/pkg/log"
	"github.com/cbodonnell/ballpit/pkg/physics"
)

// Element is the container the scene is mounted into.
type Element interface {
	ClientWidth() int
	ClientHeight() int
}

// Surface draws a world and runs until stopped.
type Surface interface {
	// LookAt frames the camera on the given world rectangle.
	LookAt(bounds physics.Bounds)
	// ScreenToWorld maps a screen point through the camera.
	ScreenToWorld(x, y float64) (float64, float64)
	Run()
	Stop()
	// Close releases the surface and everything it caches.
	Close() error
}

// SurfaceFactory creates a surface bound to a world and a viewport size.
type SurfaceFactory func(world *physics.World, width, height int) (Surface, error)

type Options struct {
	// Element supplies the viewport size on mount.
	Element Element
	// NewSurface creates the render surface.
	NewSurface SurfaceFactory
	// Pointer is polled on every update. Events can also be fed through the
	// Handle methods when it is nil.
	Pointer pointer.Source
	// Config holds the engine, wall, spawn and drag settings.
	Config *config.Config
	// Rand overrides the radius generator.
	Rand *rand.Rand
	// Logger overrides the default logger.
	Logger *log.Logger
}

func gravityFromConfig(cfg *config.Config) physics.Gravity {
	return physics.Gravity{
		X:     cfg.Engine.Gravity.X,
		Y:     cfg.Engine.Gravity.Y,
		Scale: cfg.Engine.Gravity.Scale,
	}
}

func iterationsFromConfig(cfg *config.Config) physics.Iterations {
	return physics.Iterations{
		Velocity:   cfg.Engine.Iterations.Velocity,
		Position:   cfg.Engine.Iterations.Position,
		Constraint: cfg.Engine.Iterations.Constraint,
	}
}

func wallOptionsFromConfig(cfg *config.Config) collisions.WallOptions {
	return collisions.WallOptions{
		Thickness:   cfg.Walls.Thickness,
		Restitution: cfg.Walls.Restitution,
	}
}

func mouseOptionsFromConfig(cfg *config.Config) physics.MouseConstraintOptions {
	return physics.MouseConstraintOptions{
		Stiffness: cfg.Drag.Stiffness,
		MaxForce:  cfg.Drag.MaxForce,
	}
}

func controllerOptionsFromConfig(cfg *config.Config, r *rand.Rand) interaction.Options {
	if r == nil && cfg.Spawn.Seed != 0 {
		r = rand.New(rand.NewSource(cfg.Spawn.Seed))
	}
	return interaction.Options{
		MaxBodies: cfg.Spawn.MaxBodies,
		MinRadius: cfg.Spawn.MinRadius,
		MaxRadius: cfg.Spawn.MaxRadius,
		Material: physics.BodyOptions{
			Restitution:    cfg.Spawn.Restitution,
			Mass:           cfg.Spawn.Mass,
			FrictionAir:    cfg.Spawn.FrictionAir,
			Density:        cfg.Spawn.Density,
			FrictionStatic: cfg.Spawn.FrictionStatic,
			Friction:       cfg.Spawn.Friction,
			Force: physics.Vector{
				X: cfg.Spawn.Force.X,
				Y: cfg.Spawn.Force.Y,
			},
			Render: physics.RenderOptions{
				FillStyle: cfg.FillColor(),
			},
		},
		Rand: r,
	}
}
