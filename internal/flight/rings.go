package flight

import "math"

// Ring is one obstacle in the pool. Pos is in field coordinates; the ring is
// seen at Pos shifted by the world offset.
type Ring struct {
	Pos    Vec3
	Rot    Vec3
	Radius float64
	Tube   float64
	Color  int
	Passed bool
}

// RingField owns a fixed pool of rings. Rings are never added or removed
// after construction, only moved back in front of the airplane.
type RingField struct {
	Rings []Ring

	rng *Rand
	t   RingTuning

	passed   []int
	recycled []Recycled
}

// Recycled reports a ring moved back to the front of the field. Missed is
// set when it fell behind without being flown through.
type Recycled struct {
	Ring   int
	Missed bool
}

func NewRingField(t RingTuning, rng *Rand) *RingField {
	f := &RingField{
		Rings:    make([]Ring, t.Count),
		rng:      rng,
		t:        t,
		passed:   make([]int, 0, t.Count),
		recycled: make([]Recycled, 0, t.Count),
	}
	for i := range f.Rings {
		r := &f.Rings[i]
		r.Radius = t.Radius
		r.Tube = t.Tube
		r.Color = rng.Intn(RingColorCount)
		f.place(r, -float64(i)*t.Spacing-t.InitialLead)
	}
	return f
}

// place scatters r across the spawn window at field depth z.
func (f *RingField) place(r *Ring, z float64) {
	r.Pos = Vec3{
		X: f.rng.RangeF(f.t.MinX, f.t.MaxX),
		Y: f.rng.RangeF(f.t.MinY, f.t.MaxY),
		Z: z,
	}
	r.Rot = Vec3{
		X: f.rng.RangeF(0, RingTilt),
		Y: f.rng.RangeF(0, RingTilt),
		Z: f.rng.RangeF(0, RingRollTilt),
	}
	r.Passed = false
}

// ViewPos returns where ring i is seen after applying the world offset.
func (f *RingField) ViewPos(i int, offset float64) Vec3 {
	p := f.Rings[i].Pos
	p.Z += offset
	return p
}

// Step runs collision then recycling for every ring. It returns the indices
// that went Unpassed->Passed and the indices that were recycled this tick;
// both slices are reused by the next call.
func (f *RingField) Step(plane Vec3, offset, recycleLine float64) (passed []int, recycled []Recycled) {
	f.passed = f.passed[:0]
	f.recycled = f.recycled[:0]
	for i := range f.Rings {
		r := &f.Rings[i]
		if !r.Passed && f.hits(plane, r, f.ViewPos(i, offset)) {
			r.Passed = true
			f.passed = append(f.passed, i)
		}
		if r.Pos.Z+offset > recycleLine {
			missed := !r.Passed
			f.recycle(i, offset, recycleLine)
			f.recycled = append(f.recycled, Recycled{Ring: i, Missed: missed})
		}
	}
	return f.passed, f.recycled
}

func (f *RingField) hits(plane Vec3, r *Ring, view Vec3) bool {
	switch f.t.Collision {
	case CollisionHole:
		local := plane.Sub(view).InverseEuler(r.Rot)
		if math.Abs(local.Z) >= f.t.NearPlane {
			return false
		}
		return math.Hypot(local.X, local.Y) < r.Radius-r.Tube
	default:
		if math.Abs(plane.Z-view.Z) >= f.t.NearPlane {
			return false
		}
		return plane.Dist(view) < r.Radius
	}
}

// recycle moves ring i ahead of every other ring. The far edge of the field
// sits Count spacings beyond the recycle line; a ring never lands nearer
// than one spacing past the current farthest ring.
func (f *RingField) recycle(i int, offset, recycleLine float64) {
	minZ := math.Inf(1)
	for j := range f.Rings {
		if j == i {
			continue
		}
		if z := f.Rings[j].Pos.Z + offset; z < minZ {
			minZ = z
		}
	}
	viewZ := recycleLine - float64(len(f.Rings))*f.t.Spacing
	if z := minZ - f.t.Spacing; z < viewZ {
		viewZ = z
	}
	f.place(&f.Rings[i], viewZ-offset)
}

// MinViewZ is the view depth of the farthest ring.
func (f *RingField) MinViewZ(offset float64) float64 {
	minZ := math.Inf(1)
	for i := range f.Rings {
		if z := f.Rings[i].Pos.Z + offset; z < minZ {
			minZ = z
		}
	}
	return minZ
}

// Rebase folds offset into every ring's field depth so the accumulator can
// restart at zero. View positions are unchanged.
func (f *RingField) Rebase(offset float64) {
	for i := range f.Rings {
		f.Rings[i].Pos.Z += offset
	}
}
