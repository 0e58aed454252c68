package physics

import "github.com/jakecoffman/cp"

// Vector is a point or direction in world space. World space matches screen
// space: x grows to the right and y grows downwards.
type Vector struct {
	X, Y float64
}

func (v Vector) cp() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func vectorFromCP(v cp.Vector) Vector {
	return Vector{X: v.X, Y: v.Y}
}

// Bounds is an axis aligned rectangle.
type Bounds struct {
	Min Vector
	Max Vector
}

func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Vector{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Vector{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// StrictlyContains reports whether o lies inside b without touching its edges.
func (b Bounds) StrictlyContains(o Bounds) bool {
	return b.Min.X < o.Min.X && b.Min.Y < o.Min.Y && b.Max.X > o.Max.X && b.Max.Y > o.Max.Y
}
