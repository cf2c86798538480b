package flight

import (
	"fmt"
	"math"
)

// Tick rate of the fixed-step simulation.
const (
	TickRate           = 60
	MaxStepsPerAdvance = 5
)

// Drag input.
const (
	SensitivityX = 0.03 // per screen pixel
	SensitivityY = 0.04 // per screen pixel, applied inverted
	TargetMinX   = -15.0
	TargetMaxX   = 15.0
	TargetMinY   = -5.0
	TargetMaxY   = 20.0
)

// Airplane motion. All values are per tick.
const (
	MoveSmoothing = 0.05
	BankFactor    = -0.05
	PitchFactor   = 0.02
	ForwardSpeed  = 0.5
)

// Ring field.
const (
	RingCount       = 15
	RingRadius      = 4.0
	RingTube        = 0.5
	RingSpacing     = 40.0
	RingInitialLead = 50.0
	RingMinX        = -10.0
	RingMaxX        = 10.0
	RingMinY        = 2.0
	RingMaxY        = 17.0
	RingTilt        = math.Pi * 0.1
	RingRollTilt    = math.Pi * 0.5
	RingColorCount  = 5

	NearPlane      = 2.0
	RecycleMargin  = 10.0
	RebaseDistance = 10000.0
)

// CollisionMode selects how passing through a ring is detected.
type CollisionMode string

const (
	// CollisionSphere scores when the airplane is within the ring's outer
	// radius of its centre and close to its Z plane.
	CollisionSphere CollisionMode = "sphere"
	// CollisionHole scores only when the airplane is inside the torus hole,
	// measured in the ring's own tilted frame.
	CollisionHole CollisionMode = "hole"
)

type InputTuning struct {
	SensitivityX float64 `yaml:"sensitivity_x"`
	SensitivityY float64 `yaml:"sensitivity_y"`
	MinX         float64 `yaml:"min_x"`
	MaxX         float64 `yaml:"max_x"`
	MinY         float64 `yaml:"min_y"`
	MaxY         float64 `yaml:"max_y"`
}

type MotionTuning struct {
	Smoothing    float64 `yaml:"smoothing"`
	BankFactor   float64 `yaml:"bank_factor"`
	PitchFactor  float64 `yaml:"pitch_factor"`
	ForwardSpeed float64 `yaml:"forward_speed"`
}

type RingTuning struct {
	Count          int           `yaml:"count"`
	Radius         float64       `yaml:"radius"`
	Tube           float64       `yaml:"tube"`
	Spacing        float64       `yaml:"spacing"`
	InitialLead    float64       `yaml:"initial_lead"`
	MinX           float64       `yaml:"min_x"`
	MaxX           float64       `yaml:"max_x"`
	MinY           float64       `yaml:"min_y"`
	MaxY           float64       `yaml:"max_y"`
	NearPlane      float64       `yaml:"near_plane"`
	RecycleMargin  float64       `yaml:"recycle_margin"`
	RebaseDistance float64       `yaml:"rebase_distance"`
	Collision      CollisionMode `yaml:"collision"`
}

// Tuning groups every gameplay constant so a session can be configured
// without touching the rules.
type Tuning struct {
	Input  InputTuning  `yaml:"input"`
	Motion MotionTuning `yaml:"motion"`
	Rings  RingTuning   `yaml:"rings"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Input: InputTuning{
			SensitivityX: SensitivityX,
			SensitivityY: SensitivityY,
			MinX:         TargetMinX,
			MaxX:         TargetMaxX,
			MinY:         TargetMinY,
			MaxY:         TargetMaxY,
		},
		Motion: MotionTuning{
			Smoothing:    MoveSmoothing,
			BankFactor:   BankFactor,
			PitchFactor:  PitchFactor,
			ForwardSpeed: ForwardSpeed,
		},
		Rings: RingTuning{
			Count:          RingCount,
			Radius:         RingRadius,
			Tube:           RingTube,
			Spacing:        RingSpacing,
			InitialLead:    RingInitialLead,
			MinX:           RingMinX,
			MaxX:           RingMaxX,
			MinY:           RingMinY,
			MaxY:           RingMaxY,
			NearPlane:      NearPlane,
			RecycleMargin:  RecycleMargin,
			RebaseDistance: RebaseDistance,
			Collision:      CollisionSphere,
		},
	}
}

// Validate reports the first setting that would break the simulation.
func (t Tuning) Validate() error {
	if t.Input.MinX > t.Input.MaxX {
		return fmt.Errorf("input: min_x %.2f above max_x %.2f", t.Input.MinX, t.Input.MaxX)
	}
	if t.Input.MinY > t.Input.MaxY {
		return fmt.Errorf("input: min_y %.2f above max_y %.2f", t.Input.MinY, t.Input.MaxY)
	}
	if t.Motion.Smoothing <= 0 || t.Motion.Smoothing > 1 {
		return fmt.Errorf("motion: smoothing %.3f outside (0, 1]", t.Motion.Smoothing)
	}
	if t.Motion.ForwardSpeed < 0 {
		return fmt.Errorf("motion: negative forward_speed %.2f", t.Motion.ForwardSpeed)
	}
	r := t.Rings
	if r.Count <= 0 {
		return fmt.Errorf("rings: count must be positive, got %d", r.Count)
	}
	if r.Radius <= 0 || r.Tube < 0 || r.Tube >= r.Radius {
		return fmt.Errorf("rings: need 0 <= tube < radius, got tube=%.2f radius=%.2f", r.Tube, r.Radius)
	}
	if r.Spacing <= 0 {
		return fmt.Errorf("rings: spacing must be positive, got %.2f", r.Spacing)
	}
	if r.MinX > r.MaxX || r.MinY > r.MaxY {
		return fmt.Errorf("rings: inverted spawn bounds x=[%.2f,%.2f] y=[%.2f,%.2f]", r.MinX, r.MaxX, r.MinY, r.MaxY)
	}
	if r.NearPlane <= 0 {
		return fmt.Errorf("rings: near_plane must be positive, got %.2f", r.NearPlane)
	}
	if r.RebaseDistance <= 0 {
		return fmt.Errorf("rings: rebase_distance must be positive, got %.2f", r.RebaseDistance)
	}
	switch r.Collision {
	case CollisionSphere, CollisionHole:
	default:
		return fmt.Errorf("rings: unknown collision mode %q", r.Collision)
	}
	return nil
}
