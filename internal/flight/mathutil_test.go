package flight

import (
	"math"
	"testing"
)

func TestInverseEulerRoundTrip(t *testing.T) {
	rot := Vec3{X: 0.2, Y: -0.7, Z: 1.3}
	v := Vec3{X: 1.5, Y: -2, Z: 3.25}
	back := v.Euler(rot).InverseEuler(rot)
	if back.Dist(v) > 1e-12 {
		t.Fatalf("round trip drifted: got=%+v want=%+v", back, v)
	}
	if l := v.Euler(rot).Len(); math.Abs(l-v.Len()) > 1e-12 {
		t.Fatalf("rotation changed length: got=%f want=%f", l, v.Len())
	}
}

func TestRandRangeAndDeterminism(t *testing.T) {
	a, b := NewRand(77), NewRand(77)
	for i := 0; i < 1000; i++ {
		x := a.RangeF(-10, 10)
		if x < -10 || x >= 10 {
			t.Fatalf("RangeF out of range: %f", x)
		}
		if y := b.RangeF(-10, 10); y != x {
			t.Fatalf("same seed diverged at %d: %f vs %f", i, x, y)
		}
		if n := a.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %d", n)
		}
		b.Intn(5)
	}
	if NewRand(0).NextU64() == 0 {
		t.Fatalf("zero seed produced a stuck generator")
	}
}
