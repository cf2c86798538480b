package scene

import "math"

// VertexStride is the number of floats per vertex: position then normal.
const VertexStride = 6

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Verts []float32
}

func (m Mesh) VertexCount() int { return len(m.Verts) / VertexStride }

func (m *Mesh) add(x, y, z, nx, ny, nz float32) {
	m.Verts = append(m.Verts, x, y, z, nx, ny, nz)
}

// Box returns an axis-aligned box of the given size centred on (cx, cy, cz).
func Box(w, h, d, cx, cy, cz float32) Mesh {
	hw, hh, hd := w/2, h/2, d/2
	type face struct {
		n       [3]float32
		corners [4][3]float32
	}
	faces := [6]face{
		{[3]float32{1, 0, 0}, [4][3]float32{{hw, -hh, hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hw, -hh, -hd}, {-hw, -hh, hd}, {-hw, hh, hd}, {-hw, hh, -hd}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hw, hh, hd}, {hw, hh, hd}, {hw, hh, -hd}, {-hw, hh, -hd}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}, {-hw, -hh, hd}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hw, -hh, -hd}, {-hw, -hh, -hd}, {-hw, hh, -hd}, {hw, hh, -hd}}},
	}
	var m Mesh
	m.Verts = make([]float32, 0, 36*VertexStride)
	for _, f := range faces {
		for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.corners[k]
			m.add(c[0]+cx, c[1]+cy, c[2]+cz, f.n[0], f.n[1], f.n[2])
		}
	}
	return m
}

// Torus returns a ring lying in the XY plane around the Z axis. radius is the
// distance from the centre to the middle of the tube.
func Torus(radius, tube float32, radialSegments, tubularSegments int) Mesh {
	vertex := func(j, i int) (x, y, z, nx, ny, nz float32) {
		u := float64(i) / float64(tubularSegments) * 2 * math.Pi
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		r, t := float64(radius), float64(tube)
		px := (r + t*math.Cos(v)) * math.Cos(u)
		py := (r + t*math.Cos(v)) * math.Sin(u)
		pz := t * math.Sin(v)
		// Normal points away from the tube's centre line.
		dx, dy, dz := px-r*math.Cos(u), py-r*math.Sin(u), pz
		l := math.Sqrt(dx*dx + dy*dy + dz*dz)
		return float32(px), float32(py), float32(pz), float32(dx / l), float32(dy / l), float32(dz / l)
	}

	var m Mesh
	m.Verts = make([]float32, 0, radialSegments*tubularSegments*6*VertexStride)
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := [2]int{j, i - 1}
			b := [2]int{j - 1, i - 1}
			c := [2]int{j - 1, i}
			d := [2]int{j, i}
			for _, q := range [6][2]int{a, b, d, b, c, d} {
				m.add(vertex(q[0], q[1]))
			}
		}
	}
	return m
}

// Mesh ids for the fixed set of shapes the game draws.
type MeshID int

const (
	MeshBody MeshID = iota
	MeshWing
	MeshTail
	MeshRing
	MeshCount
)

// Torus resolution.
const (
	RingRadialSegments  = 16
	RingTubularSegments = 100
)

// BuildMeshes creates every mesh the renderers upload once at startup.
func BuildMeshes(ringRadius, ringTube float32) [MeshCount]Mesh {
	var out [MeshCount]Mesh
	out[MeshBody] = Box(1, 0.8, 3, 0, 0, 0)
	out[MeshWing] = Box(5, 0.2, 1, 0, 0.1, 0)
	out[MeshTail] = Box(0.3, 1, 0.8, 0, 0.5, -1.2)
	out[MeshRing] = Torus(ringRadius, ringTube, RingRadialSegments, RingTubularSegments)
	return out
}
