package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundChime SoundKind = iota
	SoundWhoosh
	SoundPause
	SoundResume
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat is a gentle tanh-style clipper.
func softSat(x float64) float64 {
	return math.Tanh(x)
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1 - (1-sustain)*(progress-attack)/decay
	case progress < 1-release:
		return sustain
	default:
		return sustain * math.Max(0, (1-progress)/release)
	}
}

// lcg is a tiny noise source.
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(*seed>>33)/float64(1<<31)*2 - 1
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func frames(seconds float64) int { return int(seconds * SampleRate) }

func generateSound(kind SoundKind, step int) []byte {
	switch kind {
	case SoundChime:
		return genChime(step)
	case SoundWhoosh:
		return genWhoosh(uint64(step) + 1)
	case SoundPause:
		return genBlip(660, 440)
	case SoundResume:
		return genBlip(440, 660)
	}
	return nil
}

// pentatonic degrees, in semitones above the root.
var chimeScale = [...]float64{0, 2, 4, 7, 9}

// chimeFreq returns the pitch for the step'th consecutive ring: a major
// pentatonic climbing from A5, wrapping after two octaves.
func chimeFreq(step int) float64 {
	if step < 0 {
		step = 0
	}
	step %= 2 * len(chimeScale)
	semis := chimeScale[step%len(chimeScale)] + 12*float64(step/len(chimeScale))
	return 880 * math.Pow(2, semis/12)
}

func genChime(step int) []byte {
	n := frames(0.45)
	buf := makeBuf(n)
	f := chimeFreq(step)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t*7) * math.Min(1, t*400)
		s := math.Sin(2*math.Pi*f*t) + 0.35*math.Sin(2*math.Pi*f*2.01*t) + 0.12*math.Sin(2*math.Pi*f*3.02*t)
		putStereoF32(buf, i, softSat(s*env*0.5))
	}
	return buf
}

// genWhoosh is filtered noise with a rising then falling envelope.
func genWhoosh(seed uint64) []byte {
	n := frames(0.3)
	buf := makeBuf(n)
	var lp float64
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.4, 0.2, 0.5, 0.4)
		cut := 0.05 + 0.15*math.Sin(math.Pi*p)
		lp += (lcg(&seed) - lp) * cut
		putStereoF32(buf, i, softSat(lp*env*0.6))
	}
	return buf
}

// genBlip glides from f0 to f1.
func genBlip(f0, f1 float64) []byte {
	n := frames(0.12)
	buf := makeBuf(n)
	var phase float64
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		f := f0 + (f1-f0)*p
		phase += 2 * math.Pi * f / SampleRate
		env := adsr(p, 0.05, 0.2, 0.6, 0.4)
		putStereoF32(buf, i, math.Sin(phase)*env*0.4)
	}
	return buf
}

// humReader streams an endless low engine drone.
type humReader struct {
	frame int
	seed  uint64
	lp    float64
}

func (h *humReader) Read(p []byte) (int, error) {
	if h.seed == 0 {
		h.seed = 0x5EED
	}
	n := len(p) / 8
	for i := 0; i < n; i++ {
		t := float64(h.frame) / SampleRate
		wobble := 1 + 0.02*math.Sin(2*math.Pi*0.7*t)
		s := 0.6*math.Sin(2*math.Pi*55*wobble*t) + 0.3*math.Sin(2*math.Pi*110*wobble*t)
		h.lp += (lcg(&h.seed) - h.lp) * 0.02
		putStereoF32(p, i, softSat((s+h.lp*0.8)*0.5))
		h.frame++
	}
	return n * 8, nil
}
