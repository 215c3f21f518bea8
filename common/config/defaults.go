package config

func NewDefaultMainConfig() MainConfig {
	return MainConfig{
		Waveform: WaveformConfig{
			Shape:  "bar",
			Anchor: "center",
			Width:  800,
			Height: 100,
			Color:  "255,255,255",
		},
		Render: RenderConfig{
			NumWorkers:     1,
			LoopVideo:      false,
			ProgressFrames: 300,
		},
		Preview: PreviewConfig{
			Enabled: false,
			Width:   800,
			Height:  240,
		},
		Upload: UploadConfig{
			Enabled: false,
			Type:    "file",
			S3: S3Config{
				Ssl:          true,
				StorageClass: "STANDARD",
			},
		},
		Logging: LoggingConfig{
			Directory: "-",
			Colors:    false,
			JsonLogs:  false,
			Level:     "info",
		},
		Sentry: SentryConfig{
			Enabled: false,
		},
	}
}
