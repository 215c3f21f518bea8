package config

type MainConfig struct {
	AudioPath  string         `yaml:"audioPath"`
	VideoPath  string         `yaml:"videoPath"`
	OutputPath string         `yaml:"outputPath"`
	Waveform   WaveformConfig `yaml:"waveform"`
	Render     RenderConfig   `yaml:"render"`
	Preview    PreviewConfig  `yaml:"preview"`
	Upload     UploadConfig   `yaml:"upload"`
	Logging    LoggingConfig  `yaml:"logging"`
	Sentry     SentryConfig   `yaml:"sentry"`
}

type WaveformConfig struct {
	Shape  string `yaml:"shape"`
	Anchor string `yaml:"anchor"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

type RenderConfig struct {
	NumWorkers     int  `yaml:"numWorkers"`
	LoopVideo      bool `yaml:"loopVideo"`
	ProgressFrames int  `yaml:"progressFrames"`
}

type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

type UploadConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Type      string   `yaml:"type"` // s3 or file
	Directory string   `yaml:"directory"`
	S3        S3Config `yaml:"s3"`
}

type S3Config struct {
	Endpoint      string `yaml:"endpoint"`
	Region        string `yaml:"region"`
	BucketName    string `yaml:"bucketName"`
	AccessKeyId   string `yaml:"accessKeyId"`
	AccessSecret  string `yaml:"accessSecret"`
	Ssl           bool   `yaml:"ssl"`
	StorageClass  string `yaml:"storageClass"`
	PublicBaseUrl string `yaml:"publicBaseUrl"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	Colors    bool   `yaml:"colors"`
	JsonLogs  bool   `yaml:"json"`
	Level     string `yaml:"level"`
}

type SentryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dsn         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}
