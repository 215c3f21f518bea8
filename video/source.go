package video

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/avtools/soundwaves/common"
	"github.com/unixpickle/ffmpego"
)

// Source reads decoded frames from a video file, in order. Rewind reopens
// the file so the frame sequence can be replayed when the video is looped
// to cover a longer audio track.
type Source struct {
	path   string
	reader *ffmpego.VideoReader
	info   *ffmpego.VideoInfo
}

func Open(path string) (*Source, error) {
	reader, err := ffmpego.NewVideoReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidVideo, err.Error())
	}
	return &Source{
		path:   path,
		reader: reader,
		info:   reader.VideoInfo(),
	}, nil
}

func (s *Source) Width() int {
	return s.info.Width
}

func (s *Source) Height() int {
	return s.info.Height
}

func (s *Source) FPS() float64 {
	return s.info.FPS
}

// ReadFrame returns the next frame as RGBA, converting if the decoder
// produced something else. io.EOF marks the end of the stream.
func (s *Source) ReadFrame() (*image.RGBA, error) {
	img, err := s.reader.ReadFrame()
	if err != nil {
		return nil, err
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

func (s *Source) Rewind() error {
	if err := s.reader.Close(); err != nil {
		return err
	}
	reader, err := ffmpego.NewVideoReader(s.path)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrInvalidVideo, err.Error())
	}
	s.reader = reader
	return nil
}

func (s *Source) Close() error {
	return s.reader.Close()
}
