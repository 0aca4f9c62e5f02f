package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	// An empty key is allowed at startup; generation calls fail at runtime
	// until one is supplied.
	GeminiAPIKey string `env:"GEMINI_API_KEY" env-default:""`

	ChatModel  string `env:"PRISM_CHAT_MODEL" env-default:"gemini-2.5-flash"`
	ImageModel string `env:"PRISM_IMAGE_MODEL" env-default:"gemini-2.5-flash-image-preview"`
	VideoModel string `env:"PRISM_VIDEO_MODEL" env-default:"veo-2.0-generate-001"`

	ImageAspectRatio string `env:"PRISM_IMAGE_ASPECT_RATIO" env-default:"1:1"`
	VideoAspectRatio string `env:"PRISM_VIDEO_ASPECT_RATIO" env-default:"16:9"`
	VideoResolution  string `env:"PRISM_VIDEO_RESOLUTION" env-default:"720p"`

	PollInterval    time.Duration `env:"PRISM_POLL_INTERVAL" env-default:"5s"`
	MaxPollAttempts int           `env:"PRISM_MAX_POLL_ATTEMPTS" env-default:"120"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
