package main

import (
	"flag"
	"os"
	"time"

	"github.com/avtools/soundwaves/audio"
	"github.com/avtools/soundwaves/common/config"
	"github.com/avtools/soundwaves/common/logging"
	"github.com/avtools/soundwaves/common/rcontext"
	"github.com/avtools/soundwaves/common/version"
	"github.com/avtools/soundwaves/datastores"
	"github.com/avtools/soundwaves/pipeline"
	"github.com/avtools/soundwaves/video"
	"github.com/avtools/soundwaves/waveform"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "The path to the configuration (optional)")
	audioPath := flag.String("audio", "", "The path to the audio file")
	videoPath := flag.String("video", "", "The path to the video file")
	outPath := flag.String("out", "", "The output path (defaults to <video>_soundwaves.<ext>)")
	shape := flag.String("shape", "", "Waveform shape: bar or wave")
	anchor := flag.String("anchor", "", "Waveform anchor: center, top_third or bottom_third")
	waveWidth := flag.Int("width", 0, "Waveform width in pixels")
	waveHeight := flag.Int("height", 0, "Waveform max height in pixels")
	waveColor := flag.String("color", "", "Waveform color: 'r,g,b' or '#RRGGBB'")
	versionFlag := flag.Bool("version", false, "Prints the version and exits")
	flag.Parse()

	if *versionFlag {
		version.Print()
		return // exit 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	applyFlagOverrides(cfg, *audioPath, *videoPath, *outPath, *shape, *anchor, *waveWidth, *waveHeight, *waveColor)

	err = logging.Setup(cfg.Logging.Directory, cfg.Logging.Colors, cfg.Logging.JsonLogs, cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	logrus.Info("Starting up...")
	version.SetDefaults()
	logrus.Info("Version: " + version.Version)

	if cfg.Sentry.Enabled && cfg.Sentry.Dsn != "" {
		logrus.Info("Setting up Sentry for error reporting...")
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.Dsn,
			Environment: cfg.Sentry.Environment,
			Debug:       cfg.Sentry.Debug,
			Release:     version.Version,
		})
		if err != nil {
			logrus.Fatal(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.AudioPath == "" || cfg.VideoPath == "" {
		logrus.Fatal("Both an audio file (-audio) and a video file (-video) are required")
	}

	ctx := rcontext.Initial(cfg)

	track, meta, err := audio.Decode(ctx, cfg.AudioPath)
	if err != nil {
		fatal(err)
	}
	if meta != nil && (meta.Artist() != "" || meta.Title() != "") {
		logrus.Infof("Audio tags: %s - %s", meta.Artist(), meta.Title())
	}

	src, err := video.Open(cfg.VideoPath)
	if err != nil {
		fatal(err)
	}
	logrus.Infof("Video source: %dx%d at %.2f fps", src.Width(), src.Height(), src.FPS())

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = video.DerivedOutputPath(cfg.VideoPath)
	}

	sink, err := video.NewSink(outputPath, src.Width(), src.Height(), src.FPS(), cfg.AudioPath)
	if err != nil {
		fatal(err)
	}

	style := waveform.Style{
		Shape:  waveform.Shape(cfg.Waveform.Shape),
		Anchor: waveform.Anchor(cfg.Waveform.Anchor),
		Width:  cfg.Waveform.Width,
		Height: cfg.Waveform.Height,
		Color:  waveform.ParseColor(cfg.Waveform.Color),
	}

	logrus.Info("Rendering...")
	frames, err := pipeline.Run(ctx, track, src, sink, pipeline.Options{
		Style:          style,
		FPS:            src.FPS(),
		NumWorkers:     cfg.Render.NumWorkers,
		LoopVideo:      cfg.Render.LoopVideo,
		ProgressFrames: cfg.Render.ProgressFrames,
	})
	if err != nil {
		fatal(err)
	}
	if err = src.Close(); err != nil {
		logrus.Warn("Error closing video source: ", err)
	}
	if err = sink.Close(); err != nil {
		fatal(err)
	}
	logrus.Infof("Wrote %d frames to %s", frames, outputPath)

	if cfg.Preview.Enabled {
		previewPath := cfg.Preview.Path
		if previewPath == "" {
			previewPath = outputPath + ".preview.png"
		}
		if err = writePreview(track, cfg, previewPath); err != nil {
			fatal(err)
		}
		logrus.Info("Wrote preview strip to ", previewPath)
	}

	if cfg.Upload.Enabled {
		persister, err := datastores.Pick(cfg.Upload)
		if err != nil {
			fatal(err)
		}
		ref, err := datastores.UploadFile(ctx, persister, outputPath)
		if err != nil {
			fatal(err)
		}
		logrus.Info("Uploaded output: ", ref)
	}

	logrus.Info("Done")
}

func writePreview(track *waveform.Track, cfg *config.MainConfig, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()
	return audio.PreviewPNG(track, cfg.Preview.Width, cfg.Preview.Height, f)
}

func applyFlagOverrides(cfg *config.MainConfig, audioPath string, videoPath string, outPath string, shape string, anchor string, width int, height int, color string) {
	if audioPath != "" {
		cfg.AudioPath = audioPath
	}
	if videoPath != "" {
		cfg.VideoPath = videoPath
	}
	if outPath != "" {
		cfg.OutputPath = outPath
	}
	if shape != "" {
		cfg.Waveform.Shape = shape
	}
	if anchor != "" {
		cfg.Waveform.Anchor = anchor
	}
	if width > 0 {
		cfg.Waveform.Width = width
	}
	if height > 0 {
		cfg.Waveform.Height = height
	}
	if color != "" {
		cfg.Waveform.Color = color
	}
}

func fatal(err error) {
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	logrus.Fatal(err)
}
