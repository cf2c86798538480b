package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB literal.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Floats returns the colour as 0..1 components for shader uniforms.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Sky          RGB
	AirplaneBody RGB
	AirplaneWing RGB
	Text         RGB
	TextPaused   RGB
	Marker       RGB
}{
	Sky:          Hex(0x87CEEB),
	AirplaneBody: Hex(0xCCCCCC),
	AirplaneWing: Hex(0xFF0000),
	Text:         Hex(0xFFFFFF),
	TextPaused:   Hex(0xFFFF64),
	Marker:       Hex(0xFFFFFF),
}

// RingColors is indexed by flight.Ring.Color: red, green, blue, yellow, orange.
var RingColors = [...]RGB{
	Hex(0xFF0000),
	Hex(0x00FF00),
	Hex(0x0000FF),
	Hex(0xFFFF00),
	Hex(0xFFA500),
}

// Lighting and fog.
const (
	AmbientLight     = 0.6
	DirectionalLight = 0.8
	FogNear          = 100.0
	FogFar           = 400.0
)

// LightDir points from the scene toward the sun.
var LightDir = [3]float32{5, 10, 7.5}
