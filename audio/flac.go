package audio

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
)

type flacDecoder struct {
}

func (d flacDecoder) supportedContentTypes() []string {
	return []string{"audio/flac", "audio/x-flac"}
}

func (d flacDecoder) matches(contentType string) bool {
	return contentType == "audio/flac" || contentType == "audio/x-flac"
}

func (d flacDecoder) decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := flac.Decode(f)
	if err != nil {
		return audio, format, fmt.Errorf("flac: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	decoders = append(decoders, flacDecoder{})
}
