package pipeline

import (
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/avtools/soundwaves/common"
	"github.com/avtools/soundwaves/common/config"
	"github.com/avtools/soundwaves/common/rcontext"
	"github.com/avtools/soundwaves/waveform"
)

var fg = color.RGBA{R: 10, G: 200, B: 30, A: 255}

type fakeSource struct {
	width, height int
	frames        int
	read          int
	rewinds       int
}

func (s *fakeSource) ReadFrame() (*image.RGBA, error) {
	if s.read >= s.frames {
		return nil, io.EOF
	}
	s.read++
	return image.NewRGBA(image.Rect(0, 0, s.width, s.height)), nil
}

func (s *fakeSource) Rewind() error {
	s.read = 0
	s.rewinds++
	return nil
}

type fakeSink struct {
	frames []*image.RGBA
	failAt int // 0 disables
}

func (s *fakeSink) WriteFrame(frame *image.RGBA) error {
	if s.failAt > 0 && len(s.frames)+1 >= s.failAt {
		return errors.New("encoder broke")
	}
	s.frames = append(s.frames, frame)
	return nil
}

func testContext() rcontext.RunContext {
	cfg := config.NewDefaultMainConfig()
	return rcontext.Initial(&cfg)
}

func halfAmplitudeTrack(t *testing.T) *waveform.Track {
	t.Helper()
	samples := make([]int16, 96000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 16383
		} else {
			samples[i] = -16383
		}
	}
	track, err := waveform.NewTrackFromPCM16(samples, 48000)
	if err != nil {
		t.Fatal(err)
	}
	return track
}

func barStyle() waveform.Style {
	return waveform.Style{
		Shape:  waveform.ShapeBar,
		Anchor: waveform.AnchorCenter,
		Width:  50,
		Height: 100,
		Color:  fg,
	}
}

func TestRun_FrameForFrame(t *testing.T) {
	track := halfAmplitudeTrack(t)
	src := &fakeSource{width: 200, height: 200, frames: 2}
	sink := &fakeSink{}

	written, err := Run(testContext(), track, src, sink, Options{Style: barStyle(), FPS: 1})
	if err != nil {
		t.Fatal(err)
	}
	if written != 2 || len(sink.frames) != 2 {
		t.Fatalf("expected 2 frames, wrote %d", written)
	}

	for i, frame := range sink.frames {
		if frame.Bounds().Dx() != 200 || frame.Bounds().Dy() != 200 {
			t.Errorf("frame %d changed dimensions: %v", i, frame.Bounds())
		}
		// half amplitude, height 100: bar spans rows 50..150
		if frame.RGBAAt(100, 50) != fg || frame.RGBAAt(100, 150) != fg {
			t.Errorf("frame %d: missing half-height bar", i)
		}
		if frame.RGBAAt(100, 49) == fg || frame.RGBAAt(100, 151) == fg {
			t.Errorf("frame %d: bar too tall", i)
		}
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	track := halfAmplitudeTrack(t)

	seqSink := &fakeSink{}
	_, err := Run(testContext(), track, &fakeSource{width: 120, height: 120, frames: 24}, seqSink, Options{Style: barStyle(), FPS: 12})
	if err != nil {
		t.Fatal(err)
	}

	parSink := &fakeSink{}
	_, err = Run(testContext(), track, &fakeSource{width: 120, height: 120, frames: 24}, parSink, Options{Style: barStyle(), FPS: 12, NumWorkers: 4})
	if err != nil {
		t.Fatal(err)
	}

	if len(seqSink.frames) != len(parSink.frames) {
		t.Fatalf("frame counts differ: %d vs %d", len(seqSink.frames), len(parSink.frames))
	}
	for i := range seqSink.frames {
		a := seqSink.frames[i].Pix
		b := parSink.frames[i].Pix
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("frame %d differs between sequential and parallel render", i)
			}
		}
	}
}

func TestRun_LoopVideoCoversAudio(t *testing.T) {
	track := halfAmplitudeTrack(t) // 2 seconds
	src := &fakeSource{width: 64, height: 64, frames: 1}
	sink := &fakeSink{}

	written, err := Run(testContext(), track, src, sink, Options{Style: barStyle(), FPS: 1, LoopVideo: true})
	if err != nil {
		t.Fatal(err)
	}
	if written != 2 {
		t.Errorf("expected the 1-frame video looped to 2 frames, got %d", written)
	}
	if src.rewinds != 1 {
		t.Errorf("expected 1 rewind, got %d", src.rewinds)
	}
}

func TestRun_NoLoopTrimsToVideo(t *testing.T) {
	track := halfAmplitudeTrack(t) // 2 seconds
	src := &fakeSource{width: 64, height: 64, frames: 1}
	sink := &fakeSink{}

	written, err := Run(testContext(), track, src, sink, Options{Style: barStyle(), FPS: 1})
	if err != nil {
		t.Fatal(err)
	}
	if written != 1 {
		t.Errorf("expected output trimmed to the video's 1 frame, got %d", written)
	}
}

func TestRun_VideoOutlivesAudio(t *testing.T) {
	track := halfAmplitudeTrack(t) // 2 seconds
	src := &fakeSource{width: 200, height: 200, frames: 5}
	sink := &fakeSink{}

	written, err := Run(testContext(), track, src, sink, Options{Style: barStyle(), FPS: 1})
	if err != nil {
		t.Fatal(err)
	}
	if written != 5 {
		t.Fatalf("expected 5 frames, got %d", written)
	}

	// frames past the end of audio clamp to the last sample instead of
	// failing
	last := sink.frames[4]
	if last.RGBAAt(100, 50) != fg {
		t.Error("expected clamped amplitude bar on the final frame")
	}
}

func TestRun_EmptyVideo(t *testing.T) {
	track := halfAmplitudeTrack(t)
	src := &fakeSource{width: 64, height: 64, frames: 0}
	sink := &fakeSink{}

	_, err := Run(testContext(), track, src, sink, Options{Style: barStyle(), FPS: 1})
	if !errors.Is(err, common.ErrInvalidVideo) {
		t.Errorf("expected ErrInvalidVideo, got %v", err)
	}
}

func TestRun_SinkFailureStops(t *testing.T) {
	track := halfAmplitudeTrack(t)
	src := &fakeSource{width: 64, height: 64, frames: 10}
	sink := &fakeSink{failAt: 3}

	written, err := Run(testContext(), track, src, sink, Options{Style: barStyle(), FPS: 5})
	if err == nil {
		t.Fatal("expected the encoder error to surface")
	}
	if written != 2 {
		t.Errorf("expected 2 frames before the failure, got %d", written)
	}
}

func TestRun_BadFPS(t *testing.T) {
	track := halfAmplitudeTrack(t)
	_, err := Run(testContext(), track, &fakeSource{width: 1, height: 1, frames: 1}, &fakeSink{}, Options{Style: barStyle()})
	if !errors.Is(err, common.ErrInvalidVideo) {
		t.Errorf("expected ErrInvalidVideo for fps=0, got %v", err)
	}
}
