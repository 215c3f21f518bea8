package audio

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/avtools/soundwaves/waveform"
	"github.com/disintegration/imaging"
)

var previewBg = color.RGBA{A: 255, R: 41, G: 57, B: 92}
var previewFg = color.RGBA{A: 255, R: 240, G: 240, B: 240}

// PreviewPNG renders the whole track as a static amplitude strip and
// encodes it as a PNG. One column per horizontal pixel, drawn above or
// below the vertical center depending on the sample's sign.
func PreviewPNG(track *waveform.Track, width int, height int, out io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	padding := 16
	center := height / 2
	duration := track.Duration().Seconds()

	for x := 0; x < width; x++ {
		s := track.SignedSampleAt(float64(x) / float64(width) * duration)
		distance := int(math.Round(float64((height-padding)/2) * math.Abs(s)))
		above := true
		px := center - distance
		if s < 0 {
			px = center + distance
			above = false
		}
		for y := 0; y < height; y++ {
			col := previewBg
			isWithin := y <= center && y >= px
			if !above {
				isWithin = y >= center && y <= px
			}
			if isWithin {
				col = previewFg
			}
			img.SetRGBA(x, y, col)
		}
	}

	return imaging.Encode(out, img, imaging.PNG)
}
