package waveform

import (
	"image/color"
	"strconv"
	"strings"
)

type Shape string

const (
	ShapeBar  Shape = "bar"
	ShapeWave Shape = "wave"
)

type Anchor string

const (
	AnchorCenter      Anchor = "center"
	AnchorTopThird    Anchor = "top_third"
	AnchorBottomThird Anchor = "bottom_third"
)

// DefaultColor is used whenever a configured color can't be parsed.
var DefaultColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Style describes how the waveform is drawn onto a frame. Constructed
// once per run and never mutated mid-pass.
type Style struct {
	Shape  Shape
	Anchor Anchor
	Width  int // horizontal extent in pixels, clamped to the frame
	Height int // maximum vertical excursion in pixels
	Color  color.RGBA
}

// ParseColor accepts a comma-separated triplet ("255,0,128"), an optional
// fourth alpha component, or a hex string ("#RRGGBB"). Anything malformed
// falls back to DefaultColor rather than failing.
func ParseColor(s string) color.RGBA {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return DefaultColor
	}
	vals := make([]uint8, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return DefaultColor
		}
		vals[i] = uint8(n)
	}
	c := color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}
	if len(vals) == 4 {
		c.A = vals[3]
	}
	return c
}

func parseHexColor(s string) color.RGBA {
	if len(s) != 7 {
		return DefaultColor
	}
	var vals [3]uint8
	for i := 1; i < 7; i += 2 {
		n, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return DefaultColor
		}
		vals[i/2] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}
}

// anchorLine maps an anchor to its vertical reference line for a frame of
// the given height. Unknown anchors fall back to center.
func anchorLine(a Anchor, height int) int {
	switch a {
	case AnchorTopThird:
		return height / 3
	case AnchorBottomThird:
		return 2 * height / 3
	case AnchorCenter:
		return height / 2
	default:
		return height / 2
	}
}
