package kinetic

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const cursorRadius = 8

var cursorColor = color.RGBA{0x2B, 0x38, 0xF1, 0xFF}

// Draw renders the playground at its scrolled position, the custom cursor
// and, in debug mode, the stats overlay.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.torn {
		return
	}
	if o, ok := s.origin(); ok {
		s.world.Draw(screen, o)
	}
	if s.cursor.placed {
		p := s.cursor.Position()
		r := float32(cursorRadius * s.cursor.Scale())
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r, 1.5, cursorColor, true)
	}
	if s.debug {
		s.overlay.draw(screen, s)
	}
}

// debugOverlay is a small text panel with frame rates and stage state. It
// is redrawn about twice a second.
type debugOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func (o *debugOverlay) update(dt float64) bool {
	o.elapsed += dt
	if o.img != nil && o.elapsed < 0.5 {
		return false
	}
	o.elapsed = 0
	return true
}

func (o *debugOverlay) draw(screen *ebiten.Image, s *Stage) {
	if o.update(1 / float64(ebiten.TPS())) {
		if o.img == nil {
			// 200x96 fits the six lines below.
			o.img = ebiten.NewImage(200, 96)
		}
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, overlayText(s, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}

func overlayText(s *Stage, fps, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f TPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "scroll: %.0f -> %.0f\n", s.state.RawScroll, s.state.SmoothScroll)
	fmt.Fprintf(&b, "world: %s (%d)\n", s.world.State(), s.world.Len())
	fmt.Fprintf(&b, "gate: %t cursor: %s\n", s.gate.Active(), s.state.Cursor)
	fmt.Fprintf(&b, "timelines: %d\n", len(s.tlOrder))
	fmt.Fprintf(&b, "listeners: %d", s.ListenerCount())
	return b.String()
}
