package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func sampleAt(buf []byte, i int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:])))
}

func TestGeneratedSoundsAreBoundedAndAudible(t *testing.T) {
	for _, kind := range []SoundKind{SoundChime, SoundWhoosh, SoundPause, SoundResume} {
		buf := generateSound(kind, 3)
		if len(buf) == 0 || len(buf)%8 != 0 {
			t.Fatalf("kind %d: bad buffer length %d", kind, len(buf))
		}
		peak := 0.0
		for i := 0; i < len(buf)/8; i++ {
			l := sampleAt(buf, i)
			r := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8+4:])))
			if l != r {
				t.Fatalf("kind %d: channels differ at %d", kind, i)
			}
			if math.IsNaN(l) || math.Abs(l) > 1 {
				t.Fatalf("kind %d: sample %d out of range: %f", kind, i, l)
			}
			peak = math.Max(peak, math.Abs(l))
		}
		if peak < 0.05 {
			t.Fatalf("kind %d: nearly silent, peak=%f", kind, peak)
		}
	}
	if generateSound(SoundKind(99), 0) != nil {
		t.Fatalf("unknown kind produced audio")
	}
}

func TestChimeClimbsScale(t *testing.T) {
	prev := chimeFreq(0)
	if prev != 880 {
		t.Fatalf("root: got=%f want=880", prev)
	}
	for step := 1; step < 2*len(chimeScale); step++ {
		f := chimeFreq(step)
		if f <= prev {
			t.Fatalf("step %d: %f not above %f", step, f, prev)
		}
		prev = f
	}
	if chimeFreq(2*len(chimeScale)) != 880 {
		t.Fatalf("scale did not wrap")
	}
	if chimeFreq(-3) != 880 {
		t.Fatalf("negative step not clamped")
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("read %d bytes, want 5", len(got))
	}
	if n, err := r.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Fatalf("after drain: n=%d err=%v", n, err)
	}
}

func TestHumReaderFillsWholeFrames(t *testing.T) {
	h := &humReader{}
	p := make([]byte, 8*100+3)
	n, err := h.Read(p)
	if err != nil || n != 800 {
		t.Fatalf("hum read: n=%d err=%v", n, err)
	}
	if h.frame != 100 {
		t.Fatalf("frame counter: got=%d want=100", h.frame)
	}
}

func TestNilSystemIsSilent(t *testing.T) {
	var a *System
	a.Play(SoundChime, 0)
	a.StartHum()
	a.SetHumPaused(true)
	a.Close()
}
