package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/avtools/soundwaves/common"
	"github.com/avtools/soundwaves/common/config"
	"github.com/avtools/soundwaves/common/rcontext"
)

func testContext() rcontext.RunContext {
	cfg := config.NewDefaultMainConfig()
	return rcontext.Initial(&cfg)
}

func writeWavFile(t *testing.T, path string, samples []int16, sampleRate int) {
	t.Helper()

	var buf bytes.Buffer
	dataLen := len(samples) * 2
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for _, s := range samples {
		_ = binary.Write(&buf, binary.LittleEndian, s)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDecode_Wav(t *testing.T) {
	samples := make([]int16, 48000)
	for i := range samples {
		samples[i] = 16383
	}
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWavFile(t, path, samples, 48000)

	track, _, err := Decode(testContext(), path)
	if err != nil {
		t.Fatal(err)
	}

	if track.SampleRate() != 48000 {
		t.Errorf("expected 48000 Hz, got %d", track.SampleRate())
	}
	if track.NumSamples() != 48000 {
		t.Errorf("expected 48000 samples, got %d", track.NumSamples())
	}
	if d := track.Duration().Seconds(); d != 1 {
		t.Errorf("expected 1s duration, got %f", d)
	}
	if v := track.SampleAt(0.5); math.Abs(v-0.5) > 0.001 {
		t.Errorf("expected roughly half amplitude, got %f", v)
	}
}

func TestDecode_EmptyWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	writeWavFile(t, path, []int16{}, 48000)

	_, _, err := Decode(testContext(), path)
	if !errors.Is(err, common.ErrInvalidAudio) {
		t.Errorf("expected ErrInvalidAudio, got %v", err)
	}
}

func TestDecode_UnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("this is not audio"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Decode(testContext(), path)
	if !errors.Is(err, common.ErrUnsupportedAudio) {
		t.Errorf("expected ErrUnsupportedAudio, got %v", err)
	}
}

func TestDecode_MissingFile(t *testing.T) {
	_, _, err := Decode(testContext(), filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSupportedContentTypes(t *testing.T) {
	types := SupportedContentTypes()
	for _, want := range []string{"audio/wav", "audio/mpeg", "audio/flac", "audio/ogg"} {
		found := false
		for _, ct := range types {
			if ct == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %s to be supported", want)
		}
	}
}
