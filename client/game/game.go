package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/ballpit/client/flow"
	"github.com/cbodonnell/ballpit/client/input"
	"github.com/cbodonnell/ballpit/client/pointer"
	"github.com/cbodonnell/ballpit/client/sandbox"
	"github.com/cbodonnell/ballpit/client/scenes"
	"github.com/cbodonnell/ballpit/client/ui"
	"github.com/cbodonnell/ballpit/pkg/config"
	"github.com/cbodonnell/ballpit/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
// It also serves as the element the sandbox scene is mounted into.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// config is passed to every sandbox scene.
	config *config.Config
	// pointer is the input source polled by the sandbox scene.
	pointer pointer.Source
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// sandbox is the current scene when it is a sandbox.
	sandbox *scenes.SandboxScene
	// width and height are the last layout size.
	width, height int
	// reset requests a remount at the start of the next update.
	reset bool
}

type NewGameOptions struct {
	Debug   bool
	Config  *config.Config
	Pointer pointer.Source
}

var (
	_ ebiten.Game     = &Game{}
	_ sandbox.Element = &Game{}
)

func NewGame(opts NewGameOptions) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	src := opts.Pointer
	if src == nil {
		src = input.NewPointer()
	}

	g := &Game{
		debug:   opts.Debug,
		config:  cfg,
		pointer: src,
		mode:    flow.GameModeLoading,
	}

	loading, err := scenes.NewOverlayScene("overlay-loading", "Loading", "")
	if err != nil {
		return nil, fmt.Errorf("failed to create loading scene: %v", err)
	}
	if err := g.SetScene(loading); err != nil {
		return nil, fmt.Errorf("failed to set loading scene: %v", err)
	}

	return g, nil
}

func (g *Game) ClientWidth() int {
	return g.width
}

func (g *Game) ClientHeight() int {
	return g.height
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}
	g.sandbox = nil

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	return nil
}

func (g *Game) loadSandbox() error {
	sandboxScene, err := scenes.NewSandboxScene(scenes.SandboxSceneOptions{
		Element: g,
		Pointer: g.pointer,
		Config:  g.config,
		OnReset: func() {
			g.reset = true
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create sandbox scene: %v", err)
	}

	if err := g.SetScene(sandboxScene); err != nil {
		var initErr *sandbox.InitializationError
		if errors.As(err, &initErr) {
			log.Error("Failed to mount sandbox: %v", initErr)
			// the failed scene is already torn down
			g.scene = nil
			return g.loadError(&ui.ActionableError{
				Message: "Failed to render scene",
				Err:     initErr,
			})
		}
		return fmt.Errorf("failed to set sandbox scene: %v", err)
	}
	g.sandbox = sandboxScene
	g.mode = flow.GameModeSandbox
	return nil
}

func (g *Game) loadStopped() error {
	stopped, err := scenes.NewStoppedScene()
	if err != nil {
		return fmt.Errorf("failed to create stopped scene: %v", err)
	}
	if err := g.SetScene(stopped); err != nil {
		return fmt.Errorf("failed to set stopped scene: %v", err)
	}
	g.mode = flow.GameModeStopped
	return nil
}

func (g *Game) loadError(err *ui.ActionableError) error {
	errorScene, serr := scenes.NewErrorScene(err.Message)
	if serr != nil {
		return fmt.Errorf("failed to create error scene: %v", serr)
	}
	if serr := g.SetScene(errorScene); serr != nil {
		return fmt.Errorf("failed to set error scene: %v", serr)
	}
	g.mode = flow.GameModeError
	return nil
}

func (g *Game) Update() error {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case flow.GameModeLoading:
		if g.width <= 0 || g.height <= 0 {
			break
		}
		if err := g.loadSandbox(); err != nil {
			return fmt.Errorf("failed to load sandbox scene: %v", err)
		}
	case flow.GameModeSandbox:
		if input.IsNegativeJustPressed() {
			if err := g.loadStopped(); err != nil {
				return fmt.Errorf("failed to load stopped scene: %v", err)
			}
			break
		}
		if g.reset || input.IsResetJustPressed() {
			g.reset = false
			log.Info("Resetting sandbox")
			if err := g.loadSandbox(); err != nil {
				return fmt.Errorf("failed to reload sandbox scene: %v", err)
			}
		}
	case flow.GameModeStopped, flow.GameModeError:
		if input.IsPositiveJustPressed() {
			if err := g.loadSandbox(); err != nil {
				return fmt.Errorf("failed to load sandbox scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.sandbox == nil {
		return
	}

	host := g.sandbox.Host()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Scene: %s (%s)", host.ID(), host.State()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Bodies: %d", g.sandbox.BodyCount()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Moves: %d", host.SpawnCount()))
}

// Layout tracks the window size so the sandbox is mounted at the size it is
// shown at.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
