package audio

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

type wavDecoder struct {
}

func (d wavDecoder) supportedContentTypes() []string {
	return []string{"audio/wav", "audio/x-wav", "audio/wave"}
}

func (d wavDecoder) matches(contentType string) bool {
	for _, ct := range d.supportedContentTypes() {
		if ct == contentType {
			return true
		}
	}
	return false
}

func (d wavDecoder) decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := wav.Decode(f)
	if err != nil {
		return audio, format, fmt.Errorf("wav: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	decoders = append(decoders, wavDecoder{})
}
