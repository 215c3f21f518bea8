package pipeline

import (
	"image"
	"io"

	"github.com/Jeffail/tunny"
	"github.com/avtools/soundwaves/common"
	"github.com/avtools/soundwaves/common/rcontext"
	"github.com/avtools/soundwaves/waveform"
)

// FrameSource yields decoded frames in playback order. Rewind restarts
// the sequence from the first frame.
type FrameSource interface {
	ReadFrame() (*image.RGBA, error)
	Rewind() error
}

// FrameSink consumes finished frames in playback order.
type FrameSink interface {
	WriteFrame(frame *image.RGBA) error
}

type Options struct {
	Style waveform.Style
	FPS   float64

	// NumWorkers above 1 renders frames on a worker pool. Frames are
	// still encoded in index order.
	NumWorkers int

	// LoopVideo restarts the frame source until the audio runs out.
	// Off, the output ends with the video even if audio remains.
	LoopVideo bool

	// ProgressFrames logs every N written frames; 0 disables.
	ProgressFrames int
}

type renderJob struct {
	frame *image.RGBA
	amp   float64
}

// Run drives the per-frame loop: for output frame i at t = i/fps, sample
// the track's amplitude, draw the overlay, and hand the frame to the
// sink. Returns the number of frames written.
func Run(ctx rcontext.RunContext, track *waveform.Track, src FrameSource, sink FrameSink, opts Options) (int, error) {
	if opts.FPS <= 0 {
		return 0, common.ErrInvalidVideo
	}
	if opts.NumWorkers < 1 {
		opts.NumWorkers = 1
	}

	var pool *tunny.Pool
	if opts.NumWorkers > 1 {
		pool = tunny.NewFunc(opts.NumWorkers, func(i interface{}) interface{} {
			job := i.(*renderJob)
			waveform.Render(job.frame, job.amp, opts.Style)
			return job.frame
		})
		defer pool.Close()
	}

	audioEnd := track.Duration().Seconds()

	// The producer reads and renders; results are delivered through
	// per-frame slots so parallel renders still encode in order.
	queue := make(chan chan *image.RGBA, opts.NumWorkers)
	readErr := make(chan error, 1)

	go func() {
		defer close(queue)
		i := 0
		for {
			frame, err := src.ReadFrame()
			if err == io.EOF {
				if i == 0 {
					readErr <- common.ErrInvalidVideo
					return
				}
				if opts.LoopVideo && float64(i)/opts.FPS < audioEnd {
					if err = src.Rewind(); err != nil {
						readErr <- err
						return
					}
					continue
				}
				return
			}
			if err != nil {
				readErr <- err
				return
			}

			amp := track.SampleAt(float64(i) / opts.FPS)
			slot := make(chan *image.RGBA, 1)
			queue <- slot
			if pool != nil {
				go func(job *renderJob) {
					slot <- pool.Process(job).(*image.RGBA)
				}(&renderJob{frame: frame, amp: amp})
			} else {
				waveform.Render(frame, amp, opts.Style)
				slot <- frame
			}
			i++
		}
	}()

	written := 0
	for slot := range queue {
		if err := sink.WriteFrame(<-slot); err != nil {
			// unblock the producer so its goroutine can finish
			go func() {
				for s := range queue {
					<-s
				}
			}()
			return written, err
		}
		written++
		if opts.ProgressFrames > 0 && written%opts.ProgressFrames == 0 {
			ctx.Log.Infof("Rendered %d frames (t=%.2fs)", written, float64(written)/opts.FPS)
		}
	}

	select {
	case err := <-readErr:
		return written, err
	default:
	}
	return written, nil
}
