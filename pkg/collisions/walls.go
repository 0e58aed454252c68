package collisions

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/ballpit/pkg/physics"
)

var ErrInvalidViewport = errors.New("viewport dimensions must be positive")

const (
	WallTop    = "wall-top"
	WallLeft   = "wall-left"
	WallBottom = "wall-bottom"
	WallRight  = "wall-right"
)

type WallOptions struct {
	// Thickness of each wall. Walls are centred half a thickness outside the
	// viewport edge they guard.
	Thickness float64
	// Restitution of the walls.
	Restitution float64
}

// BuildWalls returns four static walls enclosing a viewport of the given size,
// in top, left, bottom, right order.
func BuildWalls(width, height float64, opts WallOptions) ([]*physics.Body, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	if opts.Thickness <= 0 {
		return nil, fmt.Errorf("wall thickness must be positive, got %v", opts.Thickness)
	}

	t := opts.Thickness
	wall := func(id string) physics.BodyOptions {
		return physics.BodyOptions{
			IsStatic:    true,
			Restitution: opts.Restitution,
			ID:          id,
		}
	}

	return []*physics.Body{
		physics.NewRectangle(width/2, -t/2, width, t, wall(WallTop)),
		physics.NewRectangle(-t/2, height/2, t, height, wall(WallLeft)),
		physics.NewRectangle(width/2, height+t/2, width, t, wall(WallBottom)),
		physics.NewRectangle(width+t/2, height/2, t, height, wall(WallRight)),
	}, nil
}
