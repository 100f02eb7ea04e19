package config

import (
	"freecast-workers/src/lib/cerr"
	"freecast-workers/src/lib/env"

	"github.com/kelseyhightower/envconfig"
)

const DefaultMaxChunkBytes int64 = 24 * 1024 * 1024

// Some hosts reject default or bot user agents, so fetches look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

type Config struct {
	Environment   env.Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel      string          `envconfig:"LOG_LEVEL" default:"info"`
	MaxChunkBytes int64           `envconfig:"MAX_CHUNK_BYTES" default:"25165824"`
	FFmpegBinPath string          `envconfig:"FFMPEG_BIN_PATH" default:"ffmpeg"`
	WorkingDir    string          `envconfig:"WORKING_DIR_PATH"`
	UserAgent     string          `envconfig:"FETCH_USER_AGENT"`
}

type QueueConfig struct {
	RabbitMQURL string `envconfig:"RABBITMQ_URL" required:"true"`
	QueueName   string `envconfig:"RABBITMQ_QUEUE_NAME" required:"true"`
}

type WorkerConfig struct {
	Config
	QueueConfig

	NumWorkers int `envconfig:"NUM_WORKERS" default:"1"`

	GoogleCloudKey string `envconfig:"GOOGLE_CLOUD_KEY" required:"true"`
	BucketName     string `envconfig:"GOOGLE_CLOUD_STORAGE_BUCKET_NAME" required:"true"`

	ChunkTableName string `envconfig:"DYNAMODB_CHUNK_TABLE" default:"EpisodeChunks"`
	AWSRegion      string `envconfig:"AWS_REGION" default:"us-east-2"`

	// empty disables the metrics endpoint
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, cerr.Wrap(err).Error("Failed to process environment config")
	}

	cfg.applyDefaults()
	return cfg, nil
}

func LoadQueue() (QueueConfig, error) {
	var cfg QueueConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return QueueConfig{}, cerr.Wrap(err).Error("Failed to process queue environment config")
	}

	return cfg, nil
}

func LoadWorker() (WorkerConfig, error) {
	var cfg WorkerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return WorkerConfig{}, cerr.Wrap(err).Error("Failed to process worker environment config")
	}

	if cfg.NumWorkers < 1 {
		return WorkerConfig{}, cerr.Field("num_workers", cfg.NumWorkers).Error("At least one worker is required")
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
}
