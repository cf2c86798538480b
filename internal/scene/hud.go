package scene

import (
	"fmt"
	"unicode/utf8"
)

// Rect is a screen-space rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Segment layout of a glyph cell:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var glyphSegments = map[rune]uint8{
	'0': segA | segB | segC | segD | segE | segF,
	'1': segB | segC,
	'2': segA | segB | segD | segE | segG,
	'3': segA | segB | segC | segD | segG,
	'4': segB | segC | segF | segG,
	'5': segA | segC | segD | segF | segG,
	'6': segA | segC | segD | segE | segF | segG,
	'7': segA | segB | segC,
	'8': segA | segB | segC | segD | segE | segF | segG,
	'9': segA | segB | segC | segD | segF | segG,
	'S': segA | segC | segD | segF | segG,
	'C': segA | segD | segE | segF,
	'O': segA | segB | segC | segD | segE | segF,
	'R': segE | segG,
	'E': segA | segD | segE | segF | segG,
	'P': segA | segB | segE | segF | segG,
	'A': segA | segB | segC | segE | segF | segG,
	'U': segB | segC | segD | segE | segF,
	'D': segB | segC | segD | segE | segG,
	'-': segG,
}

// Glyph cell size at scale 1, in pixels.
const (
	GlyphW     = 12
	GlyphH     = 22
	GlyphThick = 3
	GlyphGap   = 6
)

// MarkerSize is the drag marker diameter in surface coordinates.
const MarkerSize = 28

// TextWidth returns the pixel width of text at scale.
func TextWidth(text string, scale float32) float32 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return float32(n)*(GlyphW+GlyphGap)*scale - GlyphGap*scale
}

// TextRects appends the segment rectangles for text drawn at (x, y). Runes
// without a segment pattern render as blanks, except ':' which draws dots.
func TextRects(dst []Rect, text string, x, y, scale float32) []Rect {
	w, h, t := GlyphW*scale, GlyphH*scale, GlyphThick*scale
	half := h / 2
	for _, ch := range text {
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch == ':' {
			dst = append(dst,
				Rect{x + w/2 - t/2, y + half/2, t, t},
				Rect{x + w/2 - t/2, y + half + half/2, t, t},
			)
		}
		s := glyphSegments[ch]
		if s&segA != 0 {
			dst = append(dst, Rect{x, y, w, t})
		}
		if s&segB != 0 {
			dst = append(dst, Rect{x + w - t, y, t, half})
		}
		if s&segC != 0 {
			dst = append(dst, Rect{x + w - t, y + half, t, half})
		}
		if s&segD != 0 {
			dst = append(dst, Rect{x, y + h - t, w, t})
		}
		if s&segE != 0 {
			dst = append(dst, Rect{x, y + half, t, half})
		}
		if s&segF != 0 {
			dst = append(dst, Rect{x, y, t, half})
		}
		if s&segG != 0 {
			dst = append(dst, Rect{x, y + half - t/2, w, t})
		}
		x += (GlyphW + GlyphGap) * scale
	}
	return dst
}

// ScoreText is the readout shown in the corner.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// HUD holds the screen-space overlay for a frame.
type HUD struct {
	Score  []Rect
	Banner []Rect // "PAUSED" while paused
	text   string
	last   int
}

// Build regenerates the overlay. The score rectangles are only rebuilt when
// the score changes.
func (h *HUD) Build(f *Frame, fbW, fbH int, scale float32) {
	if h.text == "" || h.last != f.Score {
		h.last = f.Score
		h.text = ScoreText(f.Score)
		h.Score = TextRects(h.Score[:0], h.text, 10*scale, 10*scale, scale)
	}
	h.Banner = h.Banner[:0]
	if f.Paused {
		const msg = "PAUSED"
		bs := scale * 2
		x := float32(fbW)/2 - TextWidth(msg, bs)/2
		y := float32(fbH)/2 - GlyphH*bs/2
		h.Banner = TextRects(h.Banner, msg, x, y, bs)
	}
}
