package audio

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
)

type mp3Decoder struct {
}

func (d mp3Decoder) supportedContentTypes() []string {
	return []string{"audio/mpeg", "audio/mp3"}
}

func (d mp3Decoder) matches(contentType string) bool {
	return contentType == "audio/mpeg" || contentType == "audio/mp3"
}

func (d mp3Decoder) decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := mp3.Decode(f)
	if err != nil {
		return audio, format, fmt.Errorf("mp3: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	decoders = append(decoders, mp3Decoder{})
}
