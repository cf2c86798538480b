package flight

import (
	"strings"
	"testing"
)

func TestDefaultTuningValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
		want   string
	}{
		{"inverted x", func(t *Tuning) { t.Input.MinX, t.Input.MaxX = 5, -5 }, "min_x"},
		{"inverted y", func(t *Tuning) { t.Input.MinY = 30 }, "min_y"},
		{"zero smoothing", func(t *Tuning) { t.Motion.Smoothing = 0 }, "smoothing"},
		{"reverse flight", func(t *Tuning) { t.Motion.ForwardSpeed = -1 }, "forward_speed"},
		{"empty pool", func(t *Tuning) { t.Rings.Count = 0 }, "count"},
		{"fat tube", func(t *Tuning) { t.Rings.Tube = 4 }, "tube"},
		{"no spacing", func(t *Tuning) { t.Rings.Spacing = 0 }, "spacing"},
		{"bad window", func(t *Tuning) { t.Rings.MinY = 20 }, "spawn bounds"},
		{"no near plane", func(t *Tuning) { t.Rings.NearPlane = 0 }, "near_plane"},
		{"no rebase", func(t *Tuning) { t.Rings.RebaseDistance = 0 }, "rebase_distance"},
		{"collision", func(t *Tuning) { t.Rings.Collision = "torus" }, "collision"},
	}
	for _, tc := range cases {
		tun := DefaultTuning()
		tc.mutate(&tun)
		err := tun.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}
