package audio

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/vorbis"
)

type oggDecoder struct {
}

func (d oggDecoder) supportedContentTypes() []string {
	return []string{"audio/ogg", "application/ogg"}
}

func (d oggDecoder) matches(contentType string) bool {
	return contentType == "audio/ogg" || contentType == "application/ogg"
}

func (d oggDecoder) decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := vorbis.Decode(f)
	if err != nil {
		return audio, format, fmt.Errorf("ogg: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	decoders = append(decoders, oggDecoder{})
}
