package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is driven by the game loop: Init when an object joins a tree,
// Update once per tick, Draw once per frame and Destroy when it leaves.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}
