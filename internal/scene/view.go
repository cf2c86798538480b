package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"skyrings/internal/flight"
)

// AirplaneScale shrinks the airplane parts to their in-game size.
const AirplaneScale = 0.5

func vec3(v flight.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Projection returns the perspective matrix for cam at the given aspect.
func Projection(cam flight.Camera, aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(float32(cam.FOV)), aspect, float32(cam.Near), float32(cam.Far))
}

func View(cam flight.Camera) mgl32.Mat4 {
	return mgl32.LookAtV(vec3(cam.Pos), vec3(cam.Target), mgl32.Vec3{0, 1, 0})
}

// euler builds an XYZ-order rotation, matching flight.Vec3.Euler.
func euler(x, y, z float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(x).Mul4(mgl32.HomogRotate3DY(y)).Mul4(mgl32.HomogRotate3DZ(z))
}

// AirplaneModel places the airplane group: bank rolls about Z, pitch about X.
func AirplaneModel(a flight.Airplane) mgl32.Mat4 {
	p := vec3(a.Pos)
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(euler(float32(a.Pitch), 0, float32(a.Bank))).
		Mul4(mgl32.Scale3D(AirplaneScale, AirplaneScale, AirplaneScale))
}

// RingModel places a ring at its view position with its tilt.
func RingModel(view, rot flight.Vec3) mgl32.Mat4 {
	p := vec3(view)
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(euler(float32(rot.X), float32(rot.Y), float32(rot.Z)))
}

// ProjectPoint maps a world-space point through mvp to pixel coordinates
// with the origin top-left. ok is false when the point is behind the camera
// or outside the depth range.
func ProjectPoint(mvp mgl32.Mat4, p mgl32.Vec3, width, height float32) (x, y, depth float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	if ndc[2] < -1 || ndc[2] > 1 {
		return 0, 0, 0, false
	}
	x = (ndc[0]*0.5 + 0.5) * width
	y = (1 - (ndc[1]*0.5 + 0.5)) * height
	return x, y, ndc[2], true
}
