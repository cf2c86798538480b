package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"skyrings/internal/flight"
)

// Instance is one mesh drawn with a model matrix and flat colour.
type Instance struct {
	Mesh  MeshID
	Model mgl32.Mat4
	Color RGB
	Ring  int // pool index for ring instances, -1 otherwise
}

// Frame is everything a renderer needs for one picture. It carries no GL
// state, so the desktop, mobile and terminal frontends all draw from it.
type Frame struct {
	View, Proj mgl32.Mat4
	Instances  []Instance
	Score      int
	Paused     bool

	MarkerVisible bool
	MarkerX       float32 // pointer position in surface pixels
	MarkerY       float32
}

// Build fills f from the current game state, reusing its instance buffer.
func (f *Frame) Build(s *flight.State, aspect float32) {
	f.View = View(s.Camera)
	f.Proj = Projection(s.Camera, aspect)
	f.Score = s.Score
	f.Paused = s.Paused
	f.MarkerVisible = s.Input.Dragging
	f.MarkerX = float32(s.Input.MarkerX)
	f.MarkerY = float32(s.Input.MarkerY)

	f.Instances = f.Instances[:0]
	for i := range s.Field.Rings {
		r := &s.Field.Rings[i]
		f.Instances = append(f.Instances, Instance{
			Mesh:  MeshRing,
			Model: RingModel(s.Field.ViewPos(i, s.Offset), r.Rot),
			Color: RingColors[r.Color%len(RingColors)],
			Ring:  i,
		})
	}

	plane := AirplaneModel(s.Airplane)
	f.Instances = append(f.Instances,
		Instance{Mesh: MeshBody, Model: plane, Color: Palette.AirplaneBody, Ring: -1},
		Instance{Mesh: MeshWing, Model: plane, Color: Palette.AirplaneWing, Ring: -1},
		Instance{Mesh: MeshTail, Model: plane, Color: Palette.AirplaneWing, Ring: -1},
	)
}

// ViewProj is Proj * View.
func (f *Frame) ViewProj() mgl32.Mat4 { return f.Proj.Mul4(f.View) }
