package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/ballpit/client/fonts"
	"github.com/cbodonnell/ballpit/client/objects"
	"github.com/cbodonnell/ballpit/client/pointer"
	"github.com/cbodonnell/ballpit/client/render"
	"github.com/cbodonnell/ballpit/client/sandbox"
	"github.com/cbodonnell/ballpit/pkg/config"
	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type SandboxScene struct {
	*BaseScene

	host    *sandbox.Host
	canvas  *render.Canvas
	onReset func()

	ui        *ebitenui.UI
	countText *widget.Text
	stateText *widget.Text
}

type SandboxSceneOptions struct {
	// Element supplies the viewport size when the scene is mounted.
	Element sandbox.Element
	// Pointer is polled for presses, releases and moves.
	Pointer pointer.Source
	Config  *config.Config
	// OnReset is called when the reset button is clicked.
	OnReset func()
}

var _ Scene = &SandboxScene{}

func NewSandboxScene(opts SandboxSceneOptions) (*SandboxScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &SandboxScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("sandbox-root", nil)),
		onReset:   opts.OnReset,
	}

	s.host = sandbox.NewHost(sandbox.Options{
		Element: opts.Element,
		NewSurface: func(world *physics.World, width, height int) (sandbox.Surface, error) {
			canvas, err := render.NewCanvas(world, width, height, render.CanvasOptions{
				Background: color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
				WallColor:  color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff},
			})
			if err != nil {
				return nil, err
			}
			s.canvas = canvas
			return canvas, nil
		},
		Pointer: opts.Pointer,
		Config:  cfg,
	})

	return s, nil
}

// Init mounts the physics scene. A failed mount returns the
// *sandbox.InitializationError unchanged.
func (s *SandboxScene) Init() error {
	if err := s.host.Mount(); err != nil {
		return err
	}
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *SandboxScene) Destroy() error {
	s.host.Unmount()
	s.canvas = nil
	return s.BaseScene.Destroy()
}

func (s *SandboxScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.TTFSmallFont
	textColor := color.NRGBA{R: 40, G: 40, B: 48, A: 255}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(30)),
		)),
	)

	hud := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	rootContainer.AddChild(hud)

	s.countText = widget.NewText(
		widget.TextOpts.Text(s.countLabel(), fontFace, textColor),
	)
	hud.AddChild(s.countText)

	s.stateText = widget.NewText(
		widget.TextOpts.Text(s.stateLabel(), fontFace, textColor),
	)
	hud.AddChild(s.stateText)

	button := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Reset", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   20,
			Right:  20,
			Top:    4,
			Bottom: 4,
		}),
	)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		if s.onReset != nil {
			s.onReset()
		}
	})
	hud.AddChild(button)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *SandboxScene) countLabel() string {
	label := fmt.Sprintf("Balls: %d/%d", min(s.host.SpawnCount(), s.host.SpawnLimit()), s.host.SpawnLimit())
	if s.host.SpawnCount() >= s.host.SpawnLimit() {
		label += " (full)"
	}
	return label
}

func (s *SandboxScene) stateLabel() string {
	if s.host.Pressed() {
		return "Dragging"
	}
	return "Move to spawn, press to drag"
}

func (s *SandboxScene) Update() error {
	if err := s.host.Update(); err != nil {
		return fmt.Errorf("failed to update sandbox: %v", err)
	}
	if s.ui != nil {
		s.countText.Label = s.countLabel()
		s.stateText.Label = s.stateLabel()
		s.ui.Update()
	}
	return s.BaseScene.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	if s.canvas != nil {
		s.canvas.SetHovered(s.host.Hovered())
		s.canvas.Render(screen)
	}
	if s.ui != nil {
		s.ui.Draw(screen)
	}
	s.BaseScene.Draw(screen)
}

// Host returns the scene host.
func (s *SandboxScene) Host() *sandbox.Host {
	return s.host
}

// BodyCount returns the number of bodies in the mounted world.
func (s *SandboxScene) BodyCount() int {
	if w := s.host.World(); w != nil {
		return w.BodyCount()
	}
	return 0
}
