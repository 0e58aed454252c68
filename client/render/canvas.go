package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cbodonnell/ballpit/client/objects"
	"github.com/cbodonnell/ballpit/client/sandbox"
	"github.com/cbodonnell/ballpit/pkg/log"
	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	wallZIndex = 0
	ballZIndex = 10
)

type CanvasOptions struct {
	// Background fills the world image before each frame. Nil leaves it
	// transparent.
	Background color.Color
	// WallColor overrides the fill of static bodies.
	WallColor color.Color
}

// Canvas is the render surface of a sandbox scene. It keeps a drawable for
// every body in the world, draws them onto an offscreen world image and
// frames that image onto the screen through its camera.
type Canvas struct {
	world *physics.World
	opts  CanvasOptions

	image    *ebiten.Image
	root     *objects.SortedZIndexObject
	textures map[textureKey]*ebiten.Image

	camera  physics.Bounds
	screenW int
	screenH int
	running bool
	hovered string
	closed  bool
}

var _ sandbox.Surface = &Canvas{}

type textureKey struct {
	radius int
	clr    color.RGBA
}

func NewCanvas(world *physics.World, width, height int, opts CanvasOptions) (*Canvas, error) {
	if world == nil {
		return nil, fmt.Errorf("canvas requires a world")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return &Canvas{
		world:    world,
		opts:     opts,
		image:    ebiten.NewImage(width, height),
		root:     objects.NewSortedZIndexObject("canvas-root"),
		textures: make(map[textureKey]*ebiten.Image),
		camera: physics.Bounds{
			Max: physics.Vector{X: float64(width), Y: float64(height)},
		},
		screenW: width,
		screenH: height,
	}, nil
}

// LookAt frames the camera on bounds.
func (c *Canvas) LookAt(bounds physics.Bounds) {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		log.Warn("Ignoring empty camera bounds %v", bounds)
		return
	}
	c.camera = bounds
}

func (c *Canvas) ScreenToWorld(x, y float64) (float64, float64) {
	return c.camera.Min.X + x*c.camera.Width()/float64(c.screenW),
		c.camera.Min.Y + y*c.camera.Height()/float64(c.screenH)
}

func (c *Canvas) Run() {
	if c.closed {
		return
	}
	c.running = true
}

func (c *Canvas) Stop() {
	c.running = false
}

// SetHovered marks the body drawn with a hover outline.
func (c *Canvas) SetHovered(id string) {
	c.hovered = id
}

// Close releases the world image, the drawables and the texture cache.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.running = false
	c.closed = true

	var err error
	if c.root != nil {
		if derr := objects.DestroyTree(c.root); derr != nil {
			err = fmt.Errorf("failed to destroy canvas objects: %v", derr)
		}
	}
	for _, t := range c.textures {
		t.Dispose()
	}
	if c.image != nil {
		c.image.Dispose()
	}

	c.textures = make(map[textureKey]*ebiten.Image)
	c.image = nil
	c.root = nil
	c.world = nil
	return err
}

// Render draws the world onto screen. It does nothing unless running.
func (c *Canvas) Render(screen *ebiten.Image) {
	if !c.running || c.image == nil {
		return
	}
	c.screenW, c.screenH = screen.Bounds().Dx(), screen.Bounds().Dy()

	if err := c.sync(); err != nil {
		log.Error("Failed to sync canvas objects: %v", err)
		return
	}

	if c.opts.Background != nil {
		c.image.Fill(c.opts.Background)
	} else {
		c.image.Clear()
	}
	objects.DrawTree(c.root, c.image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-c.camera.Min.X, -c.camera.Min.Y)
	op.GeoM.Scale(float64(c.screenW)/c.camera.Width(), float64(c.screenH)/c.camera.Height())
	screen.DrawImage(c.image, op)
}

// sync adds a drawable for each new body and drops drawables whose body is
// gone.
func (c *Canvas) sync() error {
	bodies := c.world.Bodies()
	live := make(map[string]struct{}, len(bodies))

	for _, b := range bodies {
		live[b.ID()] = struct{}{}
		obj := c.root.GetChild(b.ID())
		if obj == nil {
			var err error
			obj, err = c.newObject(b)
			if err != nil {
				return err
			}
			if err := c.root.AddChild(b.ID(), obj); err != nil {
				return fmt.Errorf("failed to add object for body %s: %v", b.ID(), err)
			}
		}
		if ball, ok := obj.(*objects.BallObject); ok {
			ball.SetHighlighted(b.ID() == c.hovered)
		}
	}

	var stale []string
	for _, obj := range c.root.GetChildren() {
		if _, ok := live[obj.GetID()]; !ok {
			stale = append(stale, obj.GetID())
		}
	}
	for _, id := range stale {
		if err := c.root.RemoveChild(id); err != nil {
			return fmt.Errorf("failed to remove object %s: %v", id, err)
		}
	}
	return nil
}

func (c *Canvas) newObject(b *physics.Body) (objects.GameObject, error) {
	if b.IsStatic() || b.Kind() != physics.ShapeCircle {
		return objects.NewWallObject(b.ID(), objects.NewWallObjectOptions{
			Body:   b,
			Color:  c.opts.WallColor,
			ZIndex: wallZIndex,
		}), nil
	}

	texture, radius := c.texture(b.Radius(), b.FillStyle())
	return objects.NewBallObject(b.ID(), objects.NewBallObjectOptions{
		Body:          b,
		Texture:       texture,
		TextureRadius: radius,
		ZIndex:        ballZIndex,
	}), nil
}

// texture returns a cached filled circle at least r pixels in radius and the
// radius it was rendered at.
func (c *Canvas) texture(r float64, clr color.Color) (*ebiten.Image, float64) {
	if clr == nil {
		clr = color.White
	}
	key := textureKey{
		radius: int(math.Ceil(r)),
		clr:    color.RGBAModel.Convert(clr).(color.RGBA),
	}
	if key.radius <= 0 {
		key.radius = 1
	}
	if t, ok := c.textures[key]; ok {
		return t, float64(key.radius)
	}

	size := 2 * (key.radius + objects.TexturePadding)
	t := ebiten.NewImage(size, size)
	center := float32(key.radius + objects.TexturePadding)
	vector.DrawFilledCircle(t, center, center, float32(key.radius), key.clr, true)
	c.textures[key] = t
	return t, float64(key.radius)
}

// TextureCount returns the number of cached circle textures.
func (c *Canvas) TextureCount() int {
	return len(c.textures)
}
