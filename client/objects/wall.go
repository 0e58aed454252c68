package objects

import (
	"image/color"

	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WallObject draws a static body as a filled rectangle.
type WallObject struct {
	*BaseObject

	body *physics.Body
	clr  color.Color
}

type NewWallObjectOptions struct {
	// Body is the static body to draw.
	Body *physics.Body
	// Color overrides the body's fill style.
	Color color.Color
	// ZIndex is the z-index of the wall.
	ZIndex int
}

func NewWallObject(id string, opts NewWallObjectOptions) *WallObject {
	clr := opts.Color
	if clr == nil {
		clr = opts.Body.FillStyle()
	}
	if clr == nil {
		clr = color.RGBA{0x80, 0x80, 0x80, 0xff} // Gray
	}
	return &WallObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		body: opts.Body,
		clr:  clr,
	}
}

func (o *WallObject) Draw(screen *ebiten.Image) {
	b := o.body.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Width()), float32(b.Height()), o.clr, false)
}
