package flight

// Camera is the fixed viewpoint. It never moves; the world scrolls past it.
type Camera struct {
	Pos    Vec3
	Target Vec3
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
}

func DefaultCamera() Camera {
	return Camera{
		Pos:    Vec3{X: 0, Y: 5, Z: 15},
		Target: Vec3{},
		FOV:    75,
		Near:   0.1,
		Far:    1000,
	}
}

// RecycleLine is the view Z past which a ring is considered behind the player.
func (c Camera) RecycleLine(margin float64) float64 {
	return c.Pos.Z + margin
}
