package waveform

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

const (
	waveStep      = 2 // pixels between polyline samples
	waveLineWidth = 2
)

// Render draws the waveform overlay for a single normalized amplitude
// onto the frame, in place. The frame keeps its dimensions; only the
// drawing window is touched. Amplitude must already be normalized by the
// sampler. Unrecognized shapes leave the frame unchanged.
func Render(frame *image.RGBA, amplitude float64, style Style) {
	bounds := frame.Bounds()
	frameW := bounds.Dx()
	frameH := bounds.Dy()

	width := style.Width
	if width > frameW {
		width = frameW
	}
	if width <= 0 {
		return
	}

	anchorY := anchorLine(style.Anchor, frameH)
	startX := (frameW - width) / 2
	ampPx := int(math.Round(float64(style.Height) * amplitude))

	switch style.Shape {
	case ShapeBar:
		drawBar(frame, startX, width, anchorY, ampPx, style)
	case ShapeWave:
		drawWave(frame, startX, width, anchorY, ampPx, style)
	}
}

// drawBar fills the rectangle spanning the drawing window from
// anchorY-ampPx to anchorY+ampPx inclusive. An amplitude of zero leaves a
// one pixel line at the anchor.
func drawBar(frame *image.RGBA, startX int, width int, anchorY int, ampPx int, style Style) {
	rect := image.Rect(startX, anchorY-ampPx, startX+width, anchorY+ampPx+1)
	rect = rect.Intersect(frame.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			frame.SetRGBA(x, y, style.Color)
		}
	}
}

// drawWave strokes a polyline tracing exactly one sine period across the
// drawing window. Amplitude scales the vertical excursion only, never the
// frequency.
func drawWave(frame *image.RGBA, startX int, width int, anchorY int, ampPx int, style Style) {
	c := gg.NewContextForRGBA(frame)
	c.SetColor(style.Color)
	c.SetLineWidth(waveLineWidth)
	c.SetLineCap(gg.LineCapButt)

	for x := startX; x < startX+width; x += waveStep {
		progress := float64(x-startX) / float64(width)
		offset := float64(ampPx) * math.Sin(2*math.Pi*progress)
		y := float64(anchorY) - offset
		if x == startX {
			c.MoveTo(float64(x), y)
		} else {
			c.LineTo(float64(x), y)
		}
	}
	c.Stroke()
}
