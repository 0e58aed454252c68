package scenes

import "github.com/cbodonnell/ballpit/client/objects"

// OverlayScene shows a single headline and hint over an empty screen.
type OverlayScene struct {
	*BaseScene
}

var _ Scene = &OverlayScene{}

func NewOverlayScene(id string, msg string, hint string) (Scene, error) {
	return &OverlayScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject(id, msg, hint)),
	}, nil
}

func NewErrorScene(msg string) (Scene, error) {
	return NewOverlayScene("overlay-error", msg, "Press to retry")
}

func NewStoppedScene() (Scene, error) {
	return NewOverlayScene("overlay-stopped", "Stopped", "Press to restart")
}
