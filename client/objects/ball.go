package objects

import (
	"image/color"
	"math"

	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TexturePadding is the transparent border around circle textures.
const TexturePadding = 1

// BallObject draws a circle body from a pre-rendered texture.
type BallObject struct {
	*BaseObject

	body *physics.Body
	// texture is a circle of textureRadius pixels, padded by TexturePadding.
	texture       *ebiten.Image
	textureRadius float64
	highlighted   bool
}

type NewBallObjectOptions struct {
	// Body is the circle body to draw.
	Body *physics.Body
	// Texture is the circle texture shared by balls of the same size and color.
	Texture *ebiten.Image
	// TextureRadius is the radius the texture was rendered at.
	TextureRadius float64
	// ZIndex is the z-index of the ball.
	ZIndex int
}

func NewBallObject(id string, opts NewBallObjectOptions) *BallObject {
	return &BallObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		body:          opts.Body,
		texture:       opts.Texture,
		textureRadius: opts.TextureRadius,
	}
}

// SetHighlighted toggles the hover outline.
func (o *BallObject) SetHighlighted(highlighted bool) {
	o.highlighted = highlighted
}

func (o *BallObject) Draw(screen *ebiten.Image) {
	p := o.body.Position()
	r := o.body.Radius()
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}

	if o.texture != nil && o.textureRadius > 0 {
		s := r / o.textureRadius
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-(o.textureRadius + TexturePadding), -(o.textureRadius + TexturePadding))
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(p.X, p.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(o.texture, op)
	} else {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(r), o.body.FillStyle(), true)
	}

	if o.highlighted {
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(r)+1, 2, color.RGBA{0xff, 0x00, 0x66, 0xff}, true)
	}
}
