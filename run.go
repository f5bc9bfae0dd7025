package kinetic

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultWheelStep = 60.0

// RunConfig configures the Ebiten window Run opens.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color
	ShowFPS       bool
	// WheelStep is the scroll distance of one wheel notch in pixels.
	WheelStep float64
	// Draw, if set, renders page content under the playground each frame.
	Draw func(screen *ebiten.Image)
}

// scrollBounds is implemented by layouts that know the document height.
type scrollBounds interface {
	MaxScroll() float64
}

// game adapts a Stage to ebiten.Game: the mouse wheel scrolls the page, the
// left button drives the pointer, and every update advances the frame queue
// by one tick.
type game struct {
	stage  *Stage
	frames *FrameQueue
	cfg    RunConfig

	scroll       float64
	lastX, lastY int
	w, h         int
	shape        ebiten.CursorShapeType
}

// Run opens a window and drives stage until the window closes. frames must
// be the Scheduler the stage was created with. The stage is torn down on
// exit.
func Run(stage *Stage, frames *FrameQueue, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("kinetic: run: window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.WheelStep == 0 {
		cfg.WheelStep = defaultWheelStep
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{stage: stage, frames: frames, cfg: cfg, lastX: -1, lastY: -1}
	stage.Start()
	defer stage.Teardown()
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	if g.stage.TornDown() {
		return ebiten.Termination
	}
	g.processInput()
	g.frames.Advance(1 / float64(ebiten.TPS()))
	g.applyCursor()
	return nil
}

func (g *game) processInput() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroll -= dy * g.cfg.WheelStep
		if g.scroll < 0 {
			g.scroll = 0
		}
		if b, ok := g.stage.layout.(scrollBounds); ok && g.scroll > b.MaxScroll() {
			g.scroll = b.MaxScroll()
		}
		g.stage.Scroll(g.scroll)
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.stage.PointerDown(fx, fy)
	}
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.stage.PointerMove(fx, fy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.stage.PointerUp(fx, fy)
	}
}

func (g *game) applyCursor() {
	shape := ebiten.CursorShapeDefault
	switch g.stage.Cursor() {
	case CursorGrab:
		shape = ebiten.CursorShapeMove
	case CursorPointer:
		shape = ebiten.CursorShapePointer
	}
	if shape != g.shape {
		g.shape = shape
		ebiten.SetCursorShape(shape)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.ToRGBA())
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	g.stage.Draw(screen)
	if g.cfg.ShowFPS && !g.stage.DebugMode() {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.stage.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
