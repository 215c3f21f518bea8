package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/avtools/soundwaves/common"
	"github.com/avtools/soundwaves/common/rcontext"
	"github.com/avtools/soundwaves/waveform"
	"github.com/dhowden/tag"
	"github.com/faiface/beep"
	"github.com/gabriel-vasile/mimetype"
)

type decoder interface {
	supportedContentTypes() []string
	matches(contentType string) bool
	decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
}

var decoders = make([]decoder, 0)

func getDecoder(contentType string) decoder {
	for _, d := range decoders {
		if d.matches(contentType) {
			return d
		}
	}
	return nil
}

func SupportedContentTypes() []string {
	a := make([]string, 0)
	for _, d := range decoders {
		a = append(a, d.supportedContentTypes()...)
	}
	return a
}

// Decode reads the audio file at path into a mono Track. The format is
// sniffed from content, not the file extension. Metadata tags are read
// best-effort and may be nil.
func Decode(ctx rcontext.RunContext, path string) (*waveform.Track, tag.Metadata, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: error sniffing content type: %w", err)
	}

	d := getDecoder(mime.String())
	if d == nil {
		return nil, nil, fmt.Errorf("%w: %s", common.ErrUnsupportedAudio, mime.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: error opening file: %w", err)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	meta := readTags(ctx, f)

	stream, format, err := d.decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", common.ErrInvalidAudio, err.Error())
	}
	//goland:noinspection GoUnhandledErrorResult
	defer stream.Close()

	samples, err := drain(stream, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", common.ErrInvalidAudio, err.Error())
	}

	track, err := waveform.NewTrack(samples, int(format.SampleRate))
	if err != nil {
		return nil, nil, err
	}

	ctx.Log.Infof("Decoded %s as %s: %d samples at %d Hz (%s)", path, mime.String(), track.NumSamples(), track.SampleRate(), track.Duration())
	return track, meta, nil
}

// readTags reads ID3-style metadata without disturbing the decoder's read
// position. Tag errors are not fatal.
func readTags(ctx rcontext.RunContext, f *os.File) tag.Metadata {
	meta, err := tag.ReadFrom(f)
	if err != nil && err != tag.ErrNoTagsFound {
		ctx.Log.Debugf("No readable tags in %s: %s", f.Name(), err.Error())
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		ctx.Log.Warnf("Error rewinding %s after tag read: %s", f.Name(), err.Error())
		return nil
	}
	return meta
}

// drain pulls every sample out of the stream and collapses stereo to mono
// by channel averaging.
func drain(stream beep.StreamSeekCloser, format beep.Format) ([]float64, error) {
	out := make([]float64, 0)

	moreSamples := true
	samples := make([][2]float64, 100000) // a 3 minute mp3 has roughly 7 million samples, so reduce the number of iterations we have to do
	for moreSamples {
		n, ok := stream.Stream(samples)
		if n == 0 && !ok {
			moreSamples = false
		}
		if !ok && stream.Err() != nil && stream.Err() != io.EOF {
			return nil, stream.Err()
		}
		for i, v := range samples {
			if i >= n {
				break
			}
			avg := (v[0] + v[1]) / 2
			if format.NumChannels == 1 {
				avg = v[0]
			}
			out = append(out, avg)
		}
	}

	return out, nil
}
