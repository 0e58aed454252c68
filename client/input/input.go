package input

import (
	"github.com/cbodonnell/ballpit/client/pointer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	return len(touchIDs) > 0
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsResetJustPressed returns a boolean value indicating whether the scene should be remounted.
func IsResetJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Pointer reads the mouse, or the first active touch when there is one.
type Pointer struct {
	touchIDs []ebiten.TouchID
}

var _ pointer.Source = &Pointer{}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) Position() (int, int) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		return ebiten.TouchPosition(p.touchIDs[0])
	}
	return ebiten.CursorPosition()
}

func (p *Pointer) Pressed() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	return len(p.touchIDs) > 0
}
