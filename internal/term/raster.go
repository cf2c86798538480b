package term

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"skyrings/internal/scene"
)

// Terminal cells are roughly twice as tall as wide. Pointer positions are
// scaled to pseudo-pixels so drag sensitivity feels like the desktop.
const (
	CellAspect = 0.5
	CellPxW    = 8
	CellPxH    = 16
)

// Ring outline resolution.
const ringSamples = 72

// Cell is one character of the picture.
type Cell struct {
	Ch    rune
	Color scene.RGB
	Depth float32
}

// Canvas is a depth-tested character raster. Row 0 is the top line.
type Canvas struct {
	W, H  int
	Cells []Cell
}

func (cv *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cv.W, cv.H = w, h
	if cap(cv.Cells) < w*h {
		cv.Cells = make([]Cell, w*h)
	}
	cv.Cells = cv.Cells[:w*h]
}

func (cv *Canvas) Clear() {
	for i := range cv.Cells {
		cv.Cells[i] = Cell{Ch: ' ', Depth: math.MaxFloat32}
	}
}

func (cv *Canvas) At(x, y int) Cell {
	return cv.Cells[y*cv.W+x]
}

// Plot writes ch at (x, y) if it is nearer than what is already there.
func (cv *Canvas) Plot(x, y int, depth float32, ch rune, col scene.RGB) {
	if x < 0 || y < 0 || x >= cv.W || y >= cv.H {
		return
	}
	c := &cv.Cells[y*cv.W+x]
	if depth >= c.Depth {
		return
	}
	*c = Cell{Ch: ch, Color: col, Depth: depth}
}

// Text writes s left to right from (x, y), ignoring depth.
func (cv *Canvas) Text(x, y int, s string, col scene.RGB) {
	for _, r := range s {
		if x >= 0 && x < cv.W && y >= 0 && y < cv.H {
			cv.Cells[y*cv.W+x] = Cell{Ch: r, Color: col, Depth: 0}
		}
		x++
	}
}

// Raster draws a Frame as characters: ring outlines, a stick airplane and
// the drag marker.
type Raster struct {
	ringLocal []mgl32.Vec3
	wing      []mgl32.Vec3
	body      []mgl32.Vec3
	tail      []mgl32.Vec3
}

func NewRaster(ringRadius float64) *Raster {
	r := &Raster{}
	for i := 0; i < ringSamples; i++ {
		a := 2 * math.Pi * float64(i) / ringSamples
		r.ringLocal = append(r.ringLocal, mgl32.Vec3{
			float32(ringRadius * math.Cos(a)),
			float32(ringRadius * math.Sin(a)),
			0,
		})
	}
	for x := float32(-2.5); x <= 2.5; x += 0.25 {
		r.wing = append(r.wing, mgl32.Vec3{x, 0.1, 0})
	}
	for z := float32(-1.5); z <= 1.5; z += 0.25 {
		r.body = append(r.body, mgl32.Vec3{0, 0, z})
	}
	for y := float32(0); y <= 1.0; y += 0.25 {
		r.tail = append(r.tail, mgl32.Vec3{0, y, -1.2})
	}
	return r
}

// Aspect is the projection aspect for a w x h cell canvas.
func Aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) * CellAspect / float32(h)
}

// Draw rasterizes f into cv. The frame must have been built with
// Aspect(cv.W, cv.H).
func (r *Raster) Draw(f *scene.Frame, cv *Canvas) {
	vp := f.ViewProj()
	w, h := float32(cv.W), float32(cv.H)
	for i := range f.Instances {
		in := &f.Instances[i]
		mvp := vp.Mul4(in.Model)
		switch in.Mesh {
		case scene.MeshRing:
			r.plotAll(cv, f.View.Mul4(in.Model), mvp, r.ringLocal, w, h, 0, in.Color)
		case scene.MeshWing:
			r.plotAll(cv, f.View.Mul4(in.Model), mvp, r.wing, w, h, '=', in.Color)
		case scene.MeshBody:
			r.plotAll(cv, f.View.Mul4(in.Model), mvp, r.body, w, h, '#', in.Color)
		case scene.MeshTail:
			r.plotAll(cv, f.View.Mul4(in.Model), mvp, r.tail, w, h, '|', in.Color)
		}
	}
	if f.MarkerVisible {
		mx := int(f.MarkerX / CellPxW)
		my := int(f.MarkerY / CellPxH)
		cv.Plot(mx, my, -1, '+', scene.Palette.Marker)
	}
}

// plotAll projects pts and plots each one. ch 0 picks a glyph by distance.
func (r *Raster) plotAll(cv *Canvas, mv, mvp mgl32.Mat4, pts []mgl32.Vec3, w, h float32, ch rune, col scene.RGB) {
	for _, p := range pts {
		x, y, depth, ok := scene.ProjectPoint(mvp, p, w, h)
		if !ok {
			continue
		}
		eye := -mv.Mul4x1(p.Vec4(1))[2]
		glyph := ch
		if glyph == 0 {
			glyph = distanceGlyph(eye)
		}
		cv.Plot(int(x), int(y), depth, glyph, Fog(col, eye))
	}
}

func distanceGlyph(eye float32) rune {
	switch {
	case eye < 60:
		return 'O'
	case eye < 160:
		return 'o'
	default:
		return '.'
	}
}

// Fog blends c toward the sky colour the way the mesh shader does.
func Fog(c scene.RGB, eye float32) scene.RGB {
	t := smoothstep(scene.FogNear, scene.FogFar, eye)
	sky := scene.Palette.Sky
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return scene.RGB{R: mix(c.R, sky.R), G: mix(c.G, sky.G), B: mix(c.B, sky.B)}
}

func smoothstep(e0, e1, x float32) float32 {
	t := (x - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
