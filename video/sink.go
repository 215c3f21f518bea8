package video

import (
	"image"

	"github.com/unixpickle/ffmpego"
)

// Sink encodes finished frames into a video file. When audioPath is set
// the audio track is muxed into the output alongside the frames.
type Sink struct {
	writer *ffmpego.VideoWriter
}

func NewSink(path string, width int, height int, fps float64, audioPath string) (*Sink, error) {
	var writer *ffmpego.VideoWriter
	var err error
	if audioPath != "" {
		writer, err = ffmpego.NewVideoWriterWithAudio(path, width, height, fps, audioPath)
	} else {
		writer, err = ffmpego.NewVideoWriter(path, width, height, fps)
	}
	if err != nil {
		return nil, err
	}
	return &Sink{writer: writer}, nil
}

func (s *Sink) WriteFrame(frame *image.RGBA) error {
	return s.writer.WriteFrame(frame)
}

func (s *Sink) Close() error {
	return s.writer.Close()
}
