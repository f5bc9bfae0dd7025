package kinetic

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cornerSegments is how many straight edges approximate one rounded corner.
const cornerSegments = 6

var outlineColor = color.RGBA{0, 0, 0, 255}

// whitePixel is the 1x1 source image for solid-color triangles, created on
// first draw so headless users never allocate it.
var whitePixel *ebiten.Image

func solidSource() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Surface returns the world's drawing surface, or nil before the first Draw
// and after Stop. The world owns it; callers must not draw into it.
func (w *World) Surface() *ebiten.Image {
	return w.surface
}

// Draw renders every body onto the world's own surface, then composites the
// surface onto dst with its top-left at origin.
func (w *World) Draw(dst *ebiten.Image, origin Vec2) {
	if w.state != WorldRunning || w.cfg.Width < 1 || w.cfg.Height < 1 {
		return
	}
	if w.surface == nil {
		w.surface = ebiten.NewImage(int(w.cfg.Width), int(w.cfg.Height))
	}
	w.surface.Clear()
	for i := range w.bodies {
		drawBody(w.surface, &w.bodies[i])
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	dst.DrawImage(w.surface, op)
}

func drawBody(dst *ebiten.Image, b *Body) {
	pos := b.Position()
	fill := b.Color.ToRGBA()
	if b.Kind == ShapeRound {
		r := float32(b.Size / 2)
		vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y), r, fill, true)
		vector.StrokeCircle(dst, float32(pos.X), float32(pos.Y), r, 1, outlineColor, true)
		return
	}
	w, h, radius := b.Kind.Extent(b.Size)
	outline := roundedRectOutline(pos, w, h, radius, b.Angle())
	fillConvex(dst, outline, fill)
	for i := range outline {
		a, c := outline[i], outline[(i+1)%len(outline)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), 1, outlineColor, true)
	}
}

// roundedRectOutline returns the outline of a w x h rectangle with rounded
// corners, centered on c and rotated by angle, in clockwise screen order.
func roundedRectOutline(c Vec2, w, h, r, angle float64) []Vec2 {
	hw, hh := w/2-r, h/2-r
	corners := [4]struct{ x, y, start float64 }{
		{hw, -hh, -math.Pi / 2},
		{hw, hh, 0},
		{-hw, hh, math.Pi / 2},
		{-hw, -hh, math.Pi},
	}
	sin, cos := math.Sincos(angle)
	pts := make([]Vec2, 0, 4*(cornerSegments+1))
	for _, k := range corners {
		for s := 0; s <= cornerSegments; s++ {
			a := k.start + (math.Pi/2)*float64(s)/cornerSegments
			lx := k.x + r*math.Cos(a)
			ly := k.y + r*math.Sin(a)
			pts = append(pts, Vec2{
				X: c.X + lx*cos - ly*sin,
				Y: c.Y + lx*sin + ly*cos,
			})
		}
	}
	return pts
}

// fillConvex fills a convex polygon as a triangle fan.
func fillConvex(dst *ebiten.Image, pts []Vec2, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			// Vertex colors are premultiplied.
			ColorR: r * a, ColorG: g * a, ColorB: b * a, ColorA: a,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
