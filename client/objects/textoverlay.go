package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/ballpit/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a centred headline with an optional hint below it.
type TextOverlayObject struct {
	*BaseObject

	text string
	hint string
}

func NewTextOverlayObject(id string, text string, hint string) GameObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		text:       text,
		hint:       hint,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	cx, cy := float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2

	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(bounds.Max.X>>6)/2, cy-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)

	if o.hint == "" {
		return
	}
	hf := fonts.TTFSmallFont
	hb, _ := font.BoundString(hf, o.hint)
	hop := &ebiten.DrawImageOptions{}
	hop.GeoM.Translate(cx-float64(hb.Max.X>>6)/2, cy+float64(hf.Metrics().Height.Ceil())*2)
	hop.ColorScale.ScaleWithColor(color.Gray{Y: 0xc0})
	text.DrawWithOptions(screen, o.hint, hf, hop)
}
